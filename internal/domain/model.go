// Package domain defines the core entities of Cosmo Health.
//
// This file contains the chat model definition used to reach the remote
// completion endpoint. The domain layer is independent of infrastructure
// concerns.
package domain

import "time"

// ProviderKind selects how the chat endpoint is called.
type ProviderKind string

const (
	// ProviderKindHTTP posts the request body directly with net/http.
	ProviderKindHTTP ProviderKind = "http"
	// ProviderKindOpenAISDK goes through the go-openai client.
	ProviderKindOpenAISDK ProviderKind = "openai-sdk"
)

// ModelDefinition describes the chat-completion endpoint and its parameters.
type ModelDefinition struct {
	Provider    ProviderKind `yaml:"provider"`
	Endpoint    string       `yaml:"endpoint"`
	BaseURL     string       `yaml:"base_url"`
	ModelID     string       `yaml:"model_id"`
	Temperature float64      `yaml:"temperature"`
	AuthEnvVar  string       `yaml:"auth_env_var"`
	APIKey      string       `yaml:"api_key,omitempty"`
	// Timeout bounds a single HTTP call. Zero means no client-side timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// PromptMessage follows the role/content pair required by chat APIs.
type PromptMessage struct {
	Role    string `yaml:"role" json:"role"`
	Content string `yaml:"content" json:"content"`
}

// Chat roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)
