package domain

// Config mirrors ~/.cosmo/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Reference           ReferenceSettings `yaml:"reference"`
	Model               ModelDefinition   `yaml:"model"`
	Server              ServerSettings    `yaml:"server"`
	Log                 LogSettings       `yaml:"log"`
}

// ReferenceSettings points at the protocol document embedded in every prompt.
type ReferenceSettings struct {
	Path string `yaml:"path"`
}

// ServerSettings configures the web form.
type ServerSettings struct {
	Addr string `yaml:"addr"`
	// AllowedOrigins enables CORS on the JSON API. Empty disables it.
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// LogSettings configures the structured logger.
type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
