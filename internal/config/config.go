package config

import (
	env "github.com/caarlos0/env/v11"
)

// Config holds the tool configuration. Command-line flags take precedence
// over these values; see cmd/schemactl.
type Config struct {
	SchemasDir string `env:"DIR" envDefault:"schemas"`
	ModelsDir  string `env:"MODELS_DIR" envDefault:"models/generated"`
	Version    string `env:"VERSION" envDefault:"dev"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "ZBST_SCHEMAS_",
	})
	if err != nil {
		panic(err)
	}
	return &cfg
}
