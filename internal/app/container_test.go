package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	for _, key := range []string{config.EnvReferencePath, config.EnvEndpoint, config.EnvModel, config.EnvTemperature, config.EnvLogLevel, config.EnvAddr} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuildContainerLoadsConfig(t *testing.T) {
	path := writeConfig(t, "reference:\n  path: /nonexistent/protocols.pdf\nmodel:\n  model_id: custom-model\n")

	c, err := BuildContainer(context.Background(), Options{ConfigPath: path, LogOutput: io.Discard})
	require.NoError(t, err)

	assert.Equal(t, "custom-model", c.Config.Model.ModelID)
	assert.Equal(t, domain.DefaultEndpoint, c.Config.Model.Endpoint)
	assert.NotNil(t, c.DoctorService)
	assert.NotNil(t, c.ProviderFactory)
}

func TestBuildContainerRejectsMissingExplicitConfig(t *testing.T) {
	_, err := BuildContainer(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		LogOutput:  io.Discard,
	})
	assert.Error(t, err)
}

func TestAnalysisServiceFailsOnUnreadableReference(t *testing.T) {
	path := writeConfig(t, "reference:\n  path: /nonexistent/protocols.pdf\n")

	c, err := BuildContainer(context.Background(), Options{ConfigPath: path, LogOutput: io.Discard})
	require.NoError(t, err)

	_, err = c.AnalysisService(context.Background())
	var loadErr *domain.ReferenceLoadError
	require.True(t, errors.As(err, &loadErr), "got %v", err)
	assert.Equal(t, "/nonexistent/protocols.pdf", loadErr.Path)
}

func TestAnalysisServiceRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "model:\n  temperature: 3\n")

	c, err := BuildContainer(context.Background(), Options{ConfigPath: path, LogOutput: io.Discard})
	require.NoError(t, err)

	_, err = c.AnalysisService(context.Background())
	require.Error(t, err)
	var loadErr *domain.ReferenceLoadError
	assert.False(t, errors.As(err, &loadErr))
}
