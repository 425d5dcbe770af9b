// Package config declares the star registry configuration and its defaults
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Configuration is the exportable type of the registry configuration
type Configuration struct {
	Logger struct {
		Format string `yaml:"format"`
		Debug  bool   `yaml:"debug"`
	} `yaml:"logger"`
	Global struct {
		SSLCert string `yaml:"sslcert"`
		SSLKey  string `yaml:"sslkey"`
	} `yaml:"global"`
	Chain struct {
		Network string `yaml:"network"`
	} `yaml:"chain"`
	Web struct {
		API struct {
			Port      int    `yaml:"port"`
			Interface string `yaml:"interface"`
		} `yaml:"api"`
	} `yaml:"web"`
}

// Default returns the configuration used when no overrides are given
func Default() Configuration {
	c := Configuration{}
	c.Logger.Format = "default"
	c.Chain.Network = "mainnet"
	c.Web.API.Port = 8000
	c.Web.API.Interface = "0.0.0.0"
	return c
}

// Load reads the YAML file at path over the defaults and then applies the
// environment overrides API_PORT and LOG_DEBUG. An empty path skips the file
// entirely.
func Load(path string) (Configuration, error) {
	c := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return c, err
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&c); err != nil {
			return c, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if p := os.Getenv("API_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return c, fmt.Errorf("invalid API_PORT %q: %w", p, err)
		}
		c.Web.API.Port = port
	}
	if d := os.Getenv("LOG_DEBUG"); d != "" {
		c.Logger.Debug = d == "1" || d == "true"
	}
	return c, nil
}
