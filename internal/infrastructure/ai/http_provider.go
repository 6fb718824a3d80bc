package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// httpProvider posts chat-completion requests straight to the configured endpoint.
type httpProvider struct {
	model      domain.ModelDefinition
	httpClient *http.Client
}

func newHTTPProvider(model domain.ModelDefinition, client *http.Client) ports.Provider {
	return &httpProvider{
		model:      model,
		httpClient: client,
	}
}

func (p *httpProvider) Name() string {
	return string(domain.ProviderKindHTTP)
}

func (p *httpProvider) Model() domain.ModelDefinition {
	return p.model
}

// Complete sends the messages and returns the first choice on HTTP 200.
// Any other status is returned as an API-error reply carrying the raw body.
func (p *httpProvider) Complete(ctx context.Context, messages []domain.PromptMessage) (domain.Reply, error) {
	apiKey, err := resolveAPIKey(p.model)
	if err != nil {
		return domain.Reply{}, err
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       p.model.ModelID,
		Messages:    toChatMessages(messages),
		Temperature: p.model.Temperature,
	})
	if err != nil {
		return domain.Reply{}, fmt.Errorf("build request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.model.Endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Reply{}, fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return domain.Reply{}, fmt.Errorf("read error body: %w", err)
		}
		return domain.APIErrorReply(resp.StatusCode, string(raw)), nil
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Reply{}, fmt.Errorf("decode response: %w", err)
	}
	return domain.OKReply(decoded.FirstMessage()), nil
}
