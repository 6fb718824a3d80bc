package app

import (
	"context"
	"fmt"
	"io"

	"github.com/doeshing/cosmo-health/internal/application/analysis"
	appconfig "github.com/doeshing/cosmo-health/internal/application/config"
	"github.com/doeshing/cosmo-health/internal/application/doctor"
	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/infrastructure/ai"
	"github.com/doeshing/cosmo-health/internal/infrastructure/config"
	"github.com/doeshing/cosmo-health/internal/infrastructure/reference"
	"github.com/doeshing/cosmo-health/internal/pkg/logger"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// Options tunes container construction.
type Options struct {
	Verbose bool
	// ConfigPath overrides ~/.cosmo/config.yaml when set.
	ConfigPath string
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config          domain.Config
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	ReferenceLoader ports.ReferenceLoader
	ProviderFactory ports.ProviderFactory
	DoctorService   *doctor.Service
	Logger          *logger.Logger
}

// BuildContainer constructs the dependency graph. The reference document is
// not read here so that doctor and config commands work without it.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Log, opts.Verbose, opts.LogOutput)
	refLoader := reference.NewPDFLoader()

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		ReferenceLoader: refLoader,
		APIKeyPresent:   ai.HasAPIKey,
	}

	return &Container{
		Config:          cfg,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		ReferenceLoader: refLoader,
		ProviderFactory: ai.NewFactory(),
		DoctorService:   doctorService,
		Logger:          log,
	}, nil
}

// AnalysisService validates the config, extracts the reference document and
// returns a ready service. A *domain.ReferenceLoadError means the form must
// not start.
func (c *Container) AnalysisService(ctx context.Context) (*analysis.Service, error) {
	if err := appconfig.Validate(c.Config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ref, err := analysis.LoadReference(ctx, c.ReferenceLoader, c.Config.Reference.Path)
	if err != nil {
		c.Logger.Error("reference load failed", err, map[string]interface{}{"path": c.Config.Reference.Path})
		return nil, err
	}
	c.Logger.Info("reference loaded", map[string]interface{}{
		"path":  ref.Path(),
		"bytes": len(ref.Text()),
	})

	provider, err := c.ProviderFactory.ForModel(c.Config.Model)
	if err != nil {
		return nil, err
	}

	return &analysis.Service{
		Reference: ref,
		Provider:  provider,
		Messages:  ai.BuildMessages,
		Logger:    c.Logger,
	}, nil
}
