// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The analysis core depends only on these
// abstractions, so the form front-ends, the PDF reader and the chat endpoint
// can each be replaced independently.
package ports

import (
	"context"

	"github.com/doeshing/cosmo-health/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read from ~/.cosmo/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ReferenceLoader extracts the full text of the reference document.
type ReferenceLoader interface {
	Load(ctx context.Context, path string) (string, error)
}

// ProviderFactory builds a chat provider for a model definition.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider sends one chat-completion request.
// Non-200 responses are returned as an API-error Reply with a nil error;
// only transport and decoding failures produce an error.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Complete(ctx context.Context, messages []domain.PromptMessage) (domain.Reply, error)
}

// Analyzer is the single operation exposed to the form front-ends.
type Analyzer interface {
	Analyze(ctx context.Context, vitals domain.VitalSigns) (domain.ParsedResult, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
