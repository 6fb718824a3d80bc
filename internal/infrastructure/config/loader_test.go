package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cosmo-health/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigPath, EnvReferencePath, EnvEndpoint, EnvModel, EnvTemperature, EnvLogLevel, EnvAddr} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want := domain.ModelDefinition{
		Provider:    domain.ProviderKindHTTP,
		Endpoint:    "https://api.deepseek.com/v1/chat/completions",
		BaseURL:     "https://api.deepseek.com/v1",
		ModelID:     "deepseek-chat",
		Temperature: 0.3,
		AuthEnvVar:  "DEEPSEEK_API_KEY",
	}
	if diff := cmp.Diff(want, cfg.Model); diff != "" {
		t.Errorf("default model mismatch (-want +got):\n%s", diff)
	}
	if cfg.Reference.Path != "протокола пдф.pdf" {
		t.Errorf("Reference.Path = %q", cfg.Reference.Path)
	}
	if cfg.Server.Addr != ":8080" || cfg.Log.Level != "info" {
		t.Errorf("unexpected server/log defaults: %+v %+v", cfg.Server, cfg.Log)
	}
}

func TestFileLoaderMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewFileLoader("").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model.ModelID != domain.DefaultModelID {
		t.Errorf("ModelID = %q", cfg.Model.ModelID)
	}
	if _, err := os.Stat(filepath.Join(os.Getenv("HOME"), ".cosmo")); !os.IsNotExist(err) {
		t.Errorf("loader must not create the config directory, stat err = %v", err)
	}
}

func TestFileLoaderExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestFileLoaderMergesFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
reference:
  path: /srv/protocols.pdf
model:
  model_id: deepseek-reasoner
  temperature: 0
  timeout: 90s
log:
  format: json
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvEndpoint, "http://localhost:9000/v1/chat/completions")
	t.Setenv(EnvAddr, "127.0.0.1:9090")

	cfg, err := NewFileLoader("").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Reference.Path != "/srv/protocols.pdf" {
		t.Errorf("Reference.Path = %q", cfg.Reference.Path)
	}
	if cfg.Model.ModelID != "deepseek-reasoner" {
		t.Errorf("ModelID = %q", cfg.Model.ModelID)
	}
	if cfg.Model.Temperature != 0 {
		t.Errorf("explicit zero temperature overwritten: %v", cfg.Model.Temperature)
	}
	if cfg.Model.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Model.Timeout)
	}
	if cfg.Model.Endpoint != "http://localhost:9000/v1/chat/completions" {
		t.Errorf("Endpoint = %q", cfg.Model.Endpoint)
	}
	if cfg.Model.AuthEnvVar != domain.DefaultAuthEnvVar {
		t.Errorf("AuthEnvVar = %q", cfg.Model.AuthEnvVar)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" || cfg.Log.Format != "json" {
		t.Errorf("unexpected server/log: %+v %+v", cfg.Server, cfg.Log)
	}
}

func TestFileLoaderRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}
