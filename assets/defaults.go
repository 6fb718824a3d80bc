package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// FormTemplate is the HTML page served by the web form.
//
//go:embed defaults/form.html
var FormTemplate string
