package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/gqlgo/dyngql/dynclient"
)

// Config represents the client config file.
type Config struct {
	Endpoint        *EndpointConfig `yaml:"endpoint"`
	ResetStoreEvery int             `yaml:"reset_store_every,omitempty"`
}

// EndpointConfig are the allowed options for the 'endpoint' config.
type EndpointConfig struct {
	Headers http.Header `yaml:"headers,omitempty"`
	URL     string      `yaml:"url"`
}

// Load loads and parses a config file. Environment variables in the file are
// expanded before parsing.
func Load(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if c.Endpoint == nil || c.Endpoint.URL == "" {
		return nil, errors.New("'endpoint' with a url must be specified. The client loads its schema from a remote server (using introspection)")
	}

	if c.ResetStoreEvery < 0 {
		return nil, errors.New("'reset_store_every' must be a positive integer")
	}

	return &c, nil
}

// FindConfigFile returns the first of names that exists under dir.
func FindConfigFile(dir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no config file found in %s", dir)
}

// ClientOptions converts the file configuration into client options.
func (c *Config) ClientOptions() dynclient.Options {
	return dynclient.Options{
		HTTPOptions: dynclient.HTTPOptions{
			Endpoint: c.Endpoint.URL,
			Header:   c.Endpoint.Headers,
		},
		ResetStoreEvery: c.ResetStoreEvery,
	}
}
