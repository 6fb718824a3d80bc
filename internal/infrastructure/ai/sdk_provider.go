package ai

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// sdkProvider calls an OpenAI-compatible API through go-openai.
// BaseURL is used instead of Endpoint; the SDK appends /chat/completions.
type sdkProvider struct {
	model      domain.ModelDefinition
	httpClient *http.Client
}

func newSDKProvider(model domain.ModelDefinition, client *http.Client) ports.Provider {
	return &sdkProvider{
		model:      model,
		httpClient: client,
	}
}

func (p *sdkProvider) Name() string {
	return string(domain.ProviderKindOpenAISDK)
}

func (p *sdkProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *sdkProvider) Complete(ctx context.Context, messages []domain.PromptMessage) (domain.Reply, error) {
	apiKey, err := resolveAPIKey(p.model)
	if err != nil {
		return domain.Reply{}, err
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = p.model.BaseURL
	cfg.HTTPClient = p.httpClient
	client := openai.NewClientWithConfig(cfg)

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model.ModelID,
		Messages:    oaMsgs,
		Temperature: float32(p.model.Temperature),
	})
	if err != nil {
		if reply, ok := apiErrorReply(err); ok {
			return reply, nil
		}
		return domain.Reply{}, err
	}
	if len(resp.Choices) == 0 {
		return domain.OKReply(""), nil
	}
	return domain.OKReply(resp.Choices[0].Message.Content), nil
}

// apiErrorReply maps SDK status errors to the same inline reply the HTTP
// provider produces. The SDK has already decoded the body, so the message
// stands in for it.
func apiErrorReply(err error) (domain.Reply, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return domain.APIErrorReply(apiErr.HTTPStatusCode, apiErr.Message), true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		body := ""
		if reqErr.Err != nil {
			body = reqErr.Err.Error()
		}
		return domain.APIErrorReply(reqErr.HTTPStatusCode, body), true
	}
	return domain.Reply{}, false
}
