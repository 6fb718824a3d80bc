package doctor

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	appconfig "github.com/doeshing/cosmo-health/internal/application/config"
	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	ReferenceLoader ports.ReferenceLoader
	// APIKeyPresent reports whether a key resolves for the model.
	APIKeyPresent func(domain.ModelDefinition) bool
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	} else {
		checks = append(checks, ok("Config values", fmt.Sprintf("%s via %s", cfg.Model.ModelID, cfg.Model.Provider)))
	}

	checks = append(checks, s.referenceCheck(ctx, cfg.Reference.Path))
	checks = append(checks, s.apiKeyCheck(cfg.Model))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) referenceCheck(ctx context.Context, path string) domain.HealthCheck {
	if s.ReferenceLoader == nil {
		return warn("Reference", "reference loader not initialized")
	}
	text, err := s.ReferenceLoader.Load(ctx, path)
	if err != nil {
		return fail("Reference", fmt.Sprintf(domain.MsgReferenceFailed, err))
	}
	if strings.TrimSpace(text) == "" {
		return warn("Reference", fmt.Sprintf("%s has no extractable text", path))
	}
	return ok("Reference", fmt.Sprintf("%s: %d characters", path, utf8.RuneCountInString(text)))
}

func (s *Service) apiKeyCheck(model domain.ModelDefinition) domain.HealthCheck {
	if s.APIKeyPresent == nil {
		return warn("API key", "key check not initialized")
	}
	if !s.APIKeyPresent(model) {
		name := model.AuthEnvVar
		if name == "" {
			name = domain.DefaultAuthEnvVar
		}
		return fail("API key", fmt.Sprintf("%s missing", name))
	}
	return ok("API key", "detected")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
