package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bitop-dev/ai-mixedbread/mixedbread"
)

// fileConfig is the YAML profile passed with --config.
type fileConfig struct {
	APIKey               string            `yaml:"api_key,omitempty"`
	BaseURL              string            `yaml:"base_url,omitempty"`
	Headers              map[string]string `yaml:"headers,omitempty"`
	MaxEmbeddingsPerCall int               `yaml:"max_embeddings_per_call,omitempty"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.MaxEmbeddingsPerCall < 0 {
		return cfg, fmt.Errorf("parsing config %s: max_embeddings_per_call must not be negative", path)
	}
	return cfg, nil
}

type rootOptions struct {
	configPath string
	apiKey     string
	baseURL    string
}

// client builds a Mixedbread client from the config file, with flags taking
// precedence. An empty API key falls back to $MIXEDBREAD_API_KEY at request
// time.
func (o *rootOptions) client() (*mixedbread.Client, error) {
	cfg, err := loadConfigFile(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.apiKey != "" {
		cfg.APIKey = o.apiKey
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	return mixedbread.NewClient(mixedbread.Config{
		APIKey:               cfg.APIKey,
		BaseURL:              cfg.BaseURL,
		Headers:              cfg.Headers,
		MaxEmbeddingsPerCall: cfg.MaxEmbeddingsPerCall,
	}), nil
}
