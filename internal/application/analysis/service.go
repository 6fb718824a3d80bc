// Package analysis turns a set of vital signs into a parsed model reply.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// Reference is the protocol text extracted once at startup.
// The zero value is an empty document.
type Reference struct {
	path string
	text string
}

// NewReference wraps already extracted text.
func NewReference(path, text string) Reference {
	return Reference{path: path, text: text}
}

// LoadReference extracts the document at path through loader.
func LoadReference(ctx context.Context, loader ports.ReferenceLoader, path string) (Reference, error) {
	text, err := loader.Load(ctx, path)
	if err != nil {
		var loadErr *domain.ReferenceLoadError
		if errors.As(err, &loadErr) {
			return Reference{}, err
		}
		return Reference{}, &domain.ReferenceLoadError{Path: path, Err: err}
	}
	return Reference{path: path, text: text}, nil
}

// Path returns the document the text came from.
func (r Reference) Path() string { return r.path }

// Text returns the extracted document text.
func (r Reference) Text() string { return r.text }

// MessageBuilder renders the system and user messages for one request.
type MessageBuilder func(reference string, vitals domain.VitalSigns) []domain.PromptMessage

// Service runs one analysis: build prompt, call the provider, parse the reply.
type Service struct {
	Reference Reference
	Provider  ports.Provider
	Messages  MessageBuilder
	Logger    ports.Logger
}

// Analyze validates vitals, queries the model and parses its reply.
// Incomplete input is rejected before any remote call. API errors are
// rendered as text and parsed like any other reply.
func (s *Service) Analyze(ctx context.Context, vitals domain.VitalSigns) (domain.ParsedResult, error) {
	if s.Provider == nil || s.Messages == nil || s.Logger == nil {
		return domain.ParsedResult{}, errors.New("analysis.Service dependencies not satisfied")
	}
	if err := vitals.Validate(); err != nil {
		return domain.ParsedResult{}, err
	}

	requestID := uuid.NewString()
	model := s.Provider.Model()
	s.Logger.Info("requesting analysis", map[string]interface{}{
		"request_id": requestID,
		"provider":   s.Provider.Name(),
		"model":      model.ModelID,
	})

	reply, err := s.Provider.Complete(ctx, s.Messages(s.Reference.Text(), vitals))
	if err != nil {
		s.Logger.Error("chat completion failed", err, map[string]interface{}{"request_id": requestID})
		return domain.ParsedResult{}, fmt.Errorf("chat completion: %w", err)
	}
	if reply.IsAPIError() {
		s.Logger.Warn("chat endpoint returned an error status", map[string]interface{}{
			"request_id": requestID,
			"status":     reply.Status,
		})
	}

	result := Parse(reply.Text())
	s.Logger.Debug("reply parsed", map[string]interface{}{
		"request_id": requestID,
		"states":     len(result.States),
	})
	return result, nil
}

var _ ports.Analyzer = (*Service)(nil)
