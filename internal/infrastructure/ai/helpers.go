package ai

import (
	"fmt"
	"os"

	"github.com/doeshing/cosmo-health/internal/domain"
)

// resolveAPIKey prefers the configured environment variable and falls back
// to the key stored in the config file.
func resolveAPIKey(model domain.ModelDefinition) (string, error) {
	if model.AuthEnvVar != "" {
		if value := os.Getenv(model.AuthEnvVar); value != "" {
			return value, nil
		}
	}
	if model.APIKey != "" {
		return model.APIKey, nil
	}
	return "", fmt.Errorf("%w: set %s", domain.ErrMissingAPIKey, valueOrDefault(model.AuthEnvVar, domain.DefaultAuthEnvVar))
}

// HasAPIKey reports whether a key can be resolved for model.
func HasAPIKey(model domain.ModelDefinition) bool {
	_, err := resolveAPIKey(model)
	return err == nil
}

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}
