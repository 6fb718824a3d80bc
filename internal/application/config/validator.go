package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/cosmo-health/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if strings.TrimSpace(cfg.Reference.Path) == "" {
		return errors.New("reference.path must be set")
	}
	if err := validateModel(cfg.Model); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	return validateLog(cfg.Log)
}

func validateModel(model domain.ModelDefinition) error {
	switch model.Provider {
	case domain.ProviderKindHTTP:
		if err := validateURL("model.endpoint", model.Endpoint); err != nil {
			return err
		}
	case domain.ProviderKindOpenAISDK:
		if err := validateURL("model.base_url", model.BaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("model.provider must be %s|%s, got %q", domain.ProviderKindHTTP, domain.ProviderKindOpenAISDK, model.Provider)
	}
	if model.ModelID == "" {
		return errors.New("model.model_id must be set")
	}
	if model.Temperature < 0 || model.Temperature > 2 {
		return fmt.Errorf("model.temperature must be within [0, 2], got %v", model.Temperature)
	}
	if model.Timeout < 0 {
		return fmt.Errorf("model.timeout must be >= 0, got %s", model.Timeout)
	}
	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s invalid: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	return nil
}

func validateLog(log domain.LogSettings) error {
	switch strings.ToLower(log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug|info|warn|error, got %q", log.Level)
	}
	switch strings.ToLower(log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text|json, got %q", log.Format)
	}
	return nil
}
