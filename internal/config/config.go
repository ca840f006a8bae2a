// Package config holds the process-wide intake configuration. It is loaded
// once at startup from defaults, an optional YAML file, and an environment
// overlay, then injected read-only into the components that need it.
package config

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// BackendGenerate selects the native generate-API client; BackendOpenAI an
// OpenAI-compatible chat server.
const (
	BackendGenerate = "generate"
	BackendOpenAI   = "openai"
)

// DefaultModels is the fixed-priority candidate list tried in order. The
// order is policy: small fast models first.
var DefaultModels = []string{"phi3:mini", "llama3.2", "llama3.1", "llama3", "llama2"}

// Config is the immutable process configuration.
type Config struct {
	// StorePath locates the JSON record store.
	StorePath string `yaml:"storePath"`
	Verbose   bool   `yaml:"verbose"`

	LLM struct {
		// Backend is "generate" or "openai".
		Backend string `yaml:"backend"`
		BaseURL string `yaml:"base"`
		APIKey  string `yaml:"key"`
		// Models overrides the default candidate list. Priority order.
		Models []string `yaml:"models"`
	} `yaml:"llm"`
}

// ApplyDefaults fills whatever flags, file, and env left unset. Call last.
func ApplyDefaults(cfg *Config) {
	if cfg.StorePath == "" {
		cfg.StorePath = "jobs.json"
	}
	if cfg.LLM.Backend == "" {
		cfg.LLM.Backend = BackendGenerate
	}
	if len(cfg.LLM.Models) == 0 {
		cfg.LLM.Models = append([]string(nil), DefaultModels...)
	}
}

// LoadFile reads YAML into cfg, overriding only the fields the file sets.
func LoadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnv populates unset fields from JOBSIFT_* environment variables.
// Explicit values take precedence over env.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := os.Getenv("JOBSIFT_STORE"); v != "" && cfg.StorePath == "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("JOBSIFT_LLM_BACKEND"); v != "" && cfg.LLM.Backend == "" {
		cfg.LLM.Backend = v
	}
	if v := os.Getenv("JOBSIFT_LLM_BASE"); v != "" && cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("JOBSIFT_LLM_KEY"); v != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("JOBSIFT_MODELS"); v != "" && len(cfg.LLM.Models) == 0 {
		cfg.LLM.Models = SplitList(v)
	}
}

// SplitList parses a comma-separated list, dropping empty entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
