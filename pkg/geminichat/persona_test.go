package geminichat

import (
	"os"
	"path/filepath"
	"testing"
)

func writePersona(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "persona.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write persona: %v", err)
	}
	return path
}

func TestLoadPersona(t *testing.T) {
	path := writePersona(t, `
name: tutor
system_prompt: You are a patient tutor.
temperature: 0.7
max_output_tokens: 512
`)

	p, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("LoadPersona returned error: %v", err)
	}
	if p.Name != "tutor" {
		t.Fatalf("unexpected name: %q", p.Name)
	}
	if p.Temperature == nil || *p.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", p.Temperature)
	}
	if p.MaxOutputTokens != 512 {
		t.Fatalf("unexpected max_output_tokens: %d", p.MaxOutputTokens)
	}
}

func TestLoadPersonaRequiresName(t *testing.T) {
	path := writePersona(t, "system_prompt: hi\n")
	if _, err := LoadPersona(path); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestLoadPersonaRejectsTemperatureOutOfRange(t *testing.T) {
	path := writePersona(t, "name: hot\ntemperature: 3.5\n")
	if _, err := LoadPersona(path); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}

func TestPersonaApplyDoesNotOverrideSetValues(t *testing.T) {
	temp := 1.2
	p := &Persona{
		Name:            "tutor",
		SystemPrompt:    "persona prompt",
		Temperature:     &temp,
		MaxOutputTokens: 512,
	}

	existing := 0.1
	cfg := p.Apply(Config{
		SystemPrompt: "explicit prompt",
		Temperature:  &existing,
	})
	if cfg.SystemPrompt != "explicit prompt" {
		t.Fatalf("expected explicit prompt to win, got %q", cfg.SystemPrompt)
	}
	if *cfg.Temperature != 0.1 {
		t.Fatalf("expected explicit temperature to win, got %v", *cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 512 {
		t.Fatalf("expected persona max_output_tokens to fill, got %d", cfg.MaxOutputTokens)
	}
}
