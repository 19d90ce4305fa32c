// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the console configuration.
type Config struct {
	// BaseURL is the backend's base URL (e.g., "http://localhost:8080").
	BaseURL string `yaml:"base_url"`

	// API configures the backend path prefixes per controller.
	API APIConfig `yaml:"api"`

	// SessionFile overrides the session file location. Empty means the
	// well-known path (see the session package).
	SessionFile string `yaml:"session_file"`

	// PageSize is the default list page size. Must be one of PageSizes.
	PageSize int `yaml:"page_size"`
}

// APIConfig holds the backend path prefixes. These mirror the
// controller layout of the Tessera backend and rarely change.
type APIConfig struct {
	// Auth is the authentication controller prefix.
	Auth string `yaml:"auth"`

	// TenantAdmin is the tenant administration controller prefix.
	TenantAdmin string `yaml:"tenant_admin"`

	// Customer is the customer controller prefix.
	Customer string `yaml:"customer"`

	// User is the user controller prefix.
	User string `yaml:"user"`
}

// PageSizes are the page size options offered by the list screens.
var PageSizes = []int{5, 10, 25, 100}

// Default returns the built-in configuration: a local backend with the
// standard controller prefixes.
func Default() *Config {
	return &Config{
		BaseURL: "http://localhost:8080",
		API: APIConfig{
			Auth:        "/api/auth",
			TenantAdmin: "/api/admin/tenant",
			Customer:    "/api/customer",
			User:        "/api/user",
		},
		PageSize: 10,
	}
}

// Load loads configuration from the TESSERA_CONFIG environment
// variable, or returns the defaults when it is not set.
func Load() (*Config, error) {
	configPath := os.Getenv("TESSERA_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.BaseURL == "" {
		errs = append(errs, fmt.Errorf("base_url is required"))
	} else if _, err := url.Parse(c.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err))
	}

	for _, prefix := range []struct {
		name  string
		value string
	}{
		{"api.auth", c.API.Auth},
		{"api.tenant_admin", c.API.TenantAdmin},
		{"api.customer", c.API.Customer},
		{"api.user", c.API.User},
	} {
		if prefix.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", prefix.name))
		}
	}

	if !slices.Contains(PageSizes, c.PageSize) {
		errs = append(errs, fmt.Errorf("page_size must be one of %v", PageSizes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
