package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cosmo-health/internal/domain"
)

type staticConfig struct {
	cfg domain.Config
	err error
}

func (s staticConfig) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type staticReference struct {
	text string
	err  error
}

func (s staticReference) Load(context.Context, string) (string, error) {
	return s.text, s.err
}

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Reference:           domain.ReferenceSettings{Path: "protocols.pdf"},
		Model: domain.ModelDefinition{
			Provider:    domain.ProviderKindHTTP,
			Endpoint:    domain.DefaultEndpoint,
			BaseURL:     domain.DefaultBaseURL,
			ModelID:     domain.DefaultModelID,
			Temperature: domain.DefaultTemperature,
			AuthEnvVar:  domain.DefaultAuthEnvVar,
		},
		Server: domain.ServerSettings{Addr: domain.DefaultServerAddr},
		Log:    domain.LogSettings{Level: "info", Format: "text"},
	}
}

func statuses(report domain.HealthReport) map[string]domain.HealthStatus {
	out := make(map[string]domain.HealthStatus, len(report.Checks))
	for _, c := range report.Checks {
		out[c.Name] = c.Status
	}
	return out
}

func TestRunAllHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider:  staticConfig{cfg: validConfig()},
		ReferenceLoader: staticReference{text: "Протокол 1. Гипоксия"},
		APIKeyPresent:   func(domain.ModelDefinition) bool { return true },
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, map[string]domain.HealthStatus{
		"Config file":   domain.HealthOK,
		"Config values": domain.HealthOK,
		"Reference":     domain.HealthOK,
		"API key":       domain.HealthOK,
	}, statuses(report))
}

func TestRunReportsProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Model.Temperature = 5

	svc := &Service{
		ConfigProvider:  staticConfig{cfg: cfg},
		ReferenceLoader: staticReference{err: errors.New("no such file")},
		APIKeyPresent:   func(domain.ModelDefinition) bool { return false },
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Failed())

	got := statuses(report)
	assert.Equal(t, domain.HealthError, got["Config values"])
	assert.Equal(t, domain.HealthError, got["Reference"])
	assert.Equal(t, domain.HealthError, got["API key"])

	for _, c := range report.Checks {
		if c.Name == "Reference" {
			assert.Equal(t, "Ошибка загрузки протоколов: no such file", c.Details)
		}
		if c.Name == "API key" {
			assert.Equal(t, "DEEPSEEK_API_KEY missing", c.Details)
		}
	}
}

func TestRunWarnsOnEmptyReference(t *testing.T) {
	svc := &Service{
		ConfigProvider:  staticConfig{cfg: validConfig()},
		ReferenceLoader: staticReference{text: "  \n"},
		APIKeyPresent:   func(domain.ModelDefinition) bool { return true },
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HealthWarn, statuses(report)["Reference"])
	assert.False(t, report.Failed())
}

func TestRunStopsWhenConfigFails(t *testing.T) {
	cause := errors.New("parse error")
	svc := &Service{ConfigProvider: staticConfig{err: cause}}

	report, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, cause)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, domain.HealthError, report.Checks[0].Status)
}
