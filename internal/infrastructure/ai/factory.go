package ai

import (
	"fmt"
	"net/http"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// Factory builds providers for model definitions.
type Factory struct {
	transport http.RoundTripper
}

// NewFactory returns a factory using the default transport.
func NewFactory() *Factory {
	return &Factory{}
}

// NewFactoryWithTransport lets tests and proxies supply their own transport.
func NewFactoryWithTransport(rt http.RoundTripper) *Factory {
	return &Factory{transport: rt}
}

// ForModel picks the provider implementation named by model.Provider.
// model.Timeout of zero leaves the HTTP client without a timeout.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	client := &http.Client{Timeout: model.Timeout, Transport: f.transport}

	switch model.Provider {
	case domain.ProviderKindHTTP, "":
		return newHTTPProvider(model, client), nil
	case domain.ProviderKindOpenAISDK:
		return newSDKProvider(model, client), nil
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", model.Provider)
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
