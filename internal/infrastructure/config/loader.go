package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/cosmo-health/assets"
	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/pkg/filesystem"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// Environment variables consulted by the loader.
const (
	EnvConfigPath    = "COSMO_CONFIG"
	EnvReferencePath = "COSMO_REFERENCE_PATH"
	EnvEndpoint      = "COSMO_ENDPOINT"
	EnvModel         = "COSMO_MODEL"
	EnvTemperature   = "COSMO_TEMPERATURE"
	EnvLogLevel      = "COSMO_LOG_LEVEL"
	EnvAddr          = "COSMO_ADDR"
)

// FileLoader loads YAML configuration from ~/.cosmo/config.yaml (overridable via COSMO_CONFIG).
// A missing file falls back to the embedded defaults; nothing is written to disk.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := Default()
	if err != nil {
		return domain.Config{}, err
	}

	path := l.Path()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && l.overridePath == "":
		// defaults only
	default:
		return domain.Config{}, err
	}

	applyEnv(&cfg)
	return hydrateDefaults(cfg), nil
}

// Path returns the config file location the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".cosmo", "config.yaml")
}

// Default returns the embedded default configuration.
func Default() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func applyEnv(cfg *domain.Config) {
	envOverride(&cfg.Reference.Path, EnvReferencePath)
	envOverride(&cfg.Model.Endpoint, EnvEndpoint)
	envOverride(&cfg.Model.ModelID, EnvModel)
	envOverride(&cfg.Log.Level, EnvLogLevel)
	envOverride(&cfg.Server.Addr, EnvAddr)
	if v := os.Getenv(EnvTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Model.Temperature = t
		}
	}
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Reference.Path == "" {
		cfg.Reference.Path = domain.DefaultReferencePath
	}
	cfg.Reference.Path = filesystem.ExpandPath(cfg.Reference.Path)
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = domain.DefaultProvider
	}
	if cfg.Model.Endpoint == "" {
		cfg.Model.Endpoint = domain.DefaultEndpoint
	}
	if cfg.Model.BaseURL == "" {
		cfg.Model.BaseURL = domain.DefaultBaseURL
	}
	if cfg.Model.ModelID == "" {
		cfg.Model.ModelID = domain.DefaultModelID
	}
	if cfg.Model.AuthEnvVar == "" {
		cfg.Model.AuthEnvVar = domain.DefaultAuthEnvVar
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = domain.DefaultServerAddr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = domain.DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = domain.DefaultLogFormat
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
