package geminichat

import "strings"

// Provider names accepted by Config.Provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default models per provider.
const (
	defaultGeminiModel = "gemini-2.0-flash-lite"
	defaultOpenAIModel = "gpt-4o-mini"
)

// Config holds all runtime configuration for a chat session.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string

	SystemPrompt    string
	Temperature     *float64
	MaxOutputTokens int

	Stream      bool
	Verbose     bool
	HistoryFile string
	Logger      Logger

	// Client overrides the provider constructed from Provider/APIKey.
	// Intended for tests and custom providers.
	Client Client
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Provider:    ProviderGemini,
		Stream:      false,
		Verbose:     false,
		HistoryFile: "chat_history.json",
		Logger:      NopLogger{},
	}
}

func normalizeConfig(cfg Config) Config {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		switch cfg.Provider {
		case ProviderGemini:
			cfg.Model = defaultGeminiModel
		case ProviderOpenAI:
			cfg.Model = defaultOpenAIModel
		}
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.SystemPrompt = strings.TrimSpace(cfg.SystemPrompt)
	cfg.HistoryFile = strings.TrimSpace(cfg.HistoryFile)
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	return cfg
}
