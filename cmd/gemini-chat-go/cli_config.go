package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/minhyannv/gemini-chat-go/pkg/geminichat"
)

// parseCLIConfig loads env + flags into runtime config. The credential is
// read here once and passed explicitly; the library never touches the
// environment.
func parseCLIConfig() (geminichat.Config, error) {
	_ = godotenv.Load()

	defaults := geminichat.DefaultConfig()

	provider := flag.String("provider", defaults.Provider, "LLM provider: gemini or openai")
	model := flag.String("model", "", "Model name (defaults to the provider's default model)")
	stream := flag.Bool("stream", defaults.Stream, "Stream assistant output when the provider supports it")
	verbose := flag.Bool("verbose", defaults.Verbose, "Verbose request logging to stderr")
	persona := flag.String("persona", "", "Path to a YAML persona file")
	historyFile := flag.String("history_file", defaults.HistoryFile, "Default path for /save and /load")
	flag.Parse()

	cfg := defaults
	cfg.Provider = strings.ToLower(strings.TrimSpace(*provider))
	cfg.Model = strings.TrimSpace(*model)
	cfg.Stream = *stream
	cfg.Verbose = *verbose
	cfg.HistoryFile = strings.TrimSpace(*historyFile)
	cfg.Logger = geminichat.NewWriterLogger(os.Stderr)

	switch cfg.Provider {
	case geminichat.ProviderGemini:
		cfg.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if cfg.Model == "" {
			cfg.Model = strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
		}
	case geminichat.ProviderOpenAI:
		cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		cfg.BaseURL = strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
		if cfg.Model == "" {
			cfg.Model = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
		}
	default:
		return geminichat.Config{}, fmt.Errorf("unknown provider %q (expected gemini or openai)", cfg.Provider)
	}

	if *persona != "" {
		p, err := geminichat.LoadPersona(*persona)
		if err != nil {
			return geminichat.Config{}, err
		}
		cfg = p.Apply(cfg)
	}

	return cfg, nil
}
