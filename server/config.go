package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the server: listen address plus the template store
// backend. The flow document itself is always in-memory.
type Config struct {
	Addr          string `yaml:"addr"`
	TemplateStore string `yaml:"template_store"` // "file" or "postgres"
	TemplatesPath string `yaml:"templates_path"`
	DatabaseURL   string `yaml:"database_url"`
}

// loadConfig reads the YAML file at path when it exists, then applies
// environment overrides (FLOW_ADDR, FLOW_TEMPLATE_STORE,
// FLOW_TEMPLATES_PATH, DATABASE_URL) on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		Addr:          ":3000",
		TemplateStore: "file",
		TemplatesPath: "templates.json",
	}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("FLOW_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FLOW_TEMPLATE_STORE"); v != "" {
		cfg.TemplateStore = v
	}
	if v := os.Getenv("FLOW_TEMPLATES_PATH"); v != "" {
		cfg.TemplatesPath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}

	switch cfg.TemplateStore {
	case "file", "postgres":
	default:
		return Config{}, fmt.Errorf("unknown template store %q", cfg.TemplateStore)
	}
	if cfg.TemplateStore == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("template store is postgres but DATABASE_URL is not set")
	}

	return cfg, nil
}
