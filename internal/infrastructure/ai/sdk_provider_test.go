package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cosmo-health/internal/domain"
)

func sdkModel(baseURL string) domain.ModelDefinition {
	model := testModel("")
	model.Provider = domain.ProviderKindOpenAISDK
	model.BaseURL = baseURL
	return model
}

func TestSDKProviderSuccess(t *testing.T) {
	t.Setenv(testKeyEnv, "sk-sdk")

	var path, auth string
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Рекомендации: сон"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	provider, err := NewFactory().ForModel(sdkModel(srv.URL + "/v1"))
	require.NoError(t, err)
	assert.Equal(t, "openai-sdk", provider.Name())

	reply, err := provider.Complete(context.Background(), testMessages())
	require.NoError(t, err)

	assert.Equal(t, "Рекомендации: сон", reply.Text())
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer sk-sdk", auth)
	assert.Equal(t, "deepseek-chat", body["model"])
}

func TestSDKProviderStatusErrorBecomesReply(t *testing.T) {
	t.Setenv(testKeyEnv, "sk-sdk")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Authentication Fails","type":"authentication_error"}}`)
	}))
	defer srv.Close()

	provider, err := NewFactory().ForModel(sdkModel(srv.URL))
	require.NoError(t, err)

	reply, err := provider.Complete(context.Background(), testMessages())
	require.NoError(t, err)

	assert.True(t, reply.IsAPIError())
	assert.Equal(t, http.StatusUnauthorized, reply.Status)
	assert.Contains(t, reply.Text(), "Authentication Fails")
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	_, err := NewFactory().ForModel(domain.ModelDefinition{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}
