package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/cosmo-health/internal/domain"
)

func TestWriteDoctorReport(t *testing.T) {
	var out bytes.Buffer
	writeDoctorReport(&out, sampleReport())

	assert.Equal(t, "[OK] Config file - loaded format 1\n[ERROR] API key - DEEPSEEK_API_KEY missing\n1 ok, 0 warn, 1 error\n", out.String())
}

func TestDoctorReportJSON(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, writeDoctorJSON(&out, sampleReport()))

	assert.JSONEq(t, `{
		"ok": false,
		"checks": [
			{"name": "Config file", "status": "ok", "details": "loaded format 1"},
			{"name": "API key", "status": "error", "details": "DEEPSEEK_API_KEY missing"}
		]
	}`, out.String())
}

func sampleReport() domain.HealthReport {
	return domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "Config file", Status: domain.HealthOK, Details: "loaded format 1"},
		{Name: "API key", Status: domain.HealthError, Details: "DEEPSEEK_API_KEY missing"},
	}}
}

func TestRedactHidesAPIKey(t *testing.T) {
	cfg := domain.Config{Model: domain.ModelDefinition{APIKey: "sk-secret", ModelID: "deepseek-chat"}}

	got := redact(cfg)

	assert.Equal(t, redactedValue, got.Model.APIKey)
	assert.Equal(t, "deepseek-chat", got.Model.ModelID)
	assert.Equal(t, "sk-secret", cfg.Model.APIKey)
	assert.Empty(t, redact(domain.Config{}).Model.APIKey)
}

func TestVersionInformation(t *testing.T) {
	var out bytes.Buffer
	writeVersion(&out)
	assert.True(t, strings.HasPrefix(out.String(), "cosmo dev\n"))
	assert.Contains(t, out.String(), "model:   deepseek-chat (default)")
}
