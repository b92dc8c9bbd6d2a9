// Persona files define an optional system prompt and generation parameters.
package geminichat

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Persona mirrors the YAML persona file format.
type Persona struct {
	Name            string   `yaml:"name"`
	SystemPrompt    string   `yaml:"system_prompt"`
	Temperature     *float64 `yaml:"temperature"`
	MaxOutputTokens int      `yaml:"max_output_tokens"`
}

// LoadPersona reads and validates a persona file.
func LoadPersona(path string) (*Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona: %w", err)
	}
	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse persona %s: %w", path, err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("persona %s: missing name", path)
	}
	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 2) {
		return nil, fmt.Errorf("persona %s: temperature %v out of range [0, 2]", path, *p.Temperature)
	}
	return &p, nil
}

// Apply merges the persona into cfg. Values already set on cfg win; the
// persona only fills what the flags and environment left unset.
func (p *Persona) Apply(cfg Config) Config {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = strings.TrimSpace(p.SystemPrompt)
	}
	if cfg.Temperature == nil {
		cfg.Temperature = p.Temperature
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = p.MaxOutputTokens
	}
	return cfg
}
