// Package geminichat implements a multi-turn chat session against a hosted
// LLM API. The CLI in cmd/gemini-chat-go is a thin REPL over this package.
package geminichat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TurnOptions controls one conversational turn.
type TurnOptions struct {
	Stream       bool
	StreamWriter io.Writer
}

// TurnResult describes the model reply for one turn.
type TurnResult struct {
	Content  string
	Streamed bool
}

// Session owns the message history and the provider client for the process
// lifetime. It is not safe for concurrent use; the REPL is strictly
// sequential.
type Session struct {
	config  Config
	client  Client
	id      string
	ctx     context.Context
	logger  Logger
	verbose bool

	messages []Message
	turns    []TurnRecord
}

// New validates the configuration and constructs the provider client.
// The credential is checked before any client is built, so a missing key
// never reaches the network.
func New(ctx context.Context, cfg Config) (*Session, error) {
	cfg = normalizeConfig(cfg)
	debugf(cfg.Verbose, cfg.Logger, "[verbose] session init: provider=%s model=%s stream=%v base_url=%s", cfg.Provider, cfg.Model, cfg.Stream, cfg.BaseURL)
	if ctx == nil {
		ctx = context.Background()
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = newProviderClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("no model configured for provider %q", cfg.Provider)
	}

	return &Session{
		config:  cfg,
		client:  client,
		id:      uuid.NewString(),
		ctx:     ctx,
		logger:  cfg.Logger,
		verbose: cfg.Verbose,
	}, nil
}

func newProviderClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is not set; create a key at https://aistudio.google.com/app/apikey")
		}
		return newGeminiClient(ctx, cfg)
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
		return newOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (expected %q or %q)", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}
}

// ID returns the session identifier recorded in saved history files.
func (s *Session) ID() string {
	return s.id
}

// SendTurn submits input as the next conversational turn and returns the
// model reply. A failed turn leaves history exactly as before the turn; the
// session stays usable.
func (s *Session) SendTurn(input string, opts TurnOptions) (TurnResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return TurnResult{}, errors.New("empty input")
	}

	request := s.requestMessages(input)
	s.debugf("[verbose] turn: sending %d message(s), stream=%v", len(request), opts.Stream)

	var (
		content  string
		streamed bool
		err      error
	)
	if opts.Stream {
		if sc, ok := s.client.(StreamingClient); ok {
			content, err = sc.CompleteStream(s.ctx, request, opts.StreamWriter)
			streamed = err == nil
		} else {
			s.debugf("[verbose] turn: provider has no streaming support, falling back to buffered")
			content, err = s.client.Complete(s.ctx, request)
		}
	} else {
		content, err = s.client.Complete(s.ctx, request)
	}
	if err != nil {
		return TurnResult{}, err
	}

	now := time.Now()
	s.messages = append(s.messages,
		Message{Role: RoleUser, Content: input},
		Message{Role: RoleAssistant, Content: content},
	)
	s.turns = append(s.turns,
		TurnRecord{Role: RoleUser, Content: input, Timestamp: now},
		TurnRecord{Role: RoleAssistant, Content: content, Timestamp: now},
	)
	s.debugf("[verbose] turn: reply bytes=%d history=%d", len(content), len(s.turns))
	return TurnResult{Content: content, Streamed: streamed}, nil
}

// requestMessages builds the outgoing message slice: optional system prompt,
// prior history, then the new user input.
func (s *Session) requestMessages(input string) []Message {
	out := make([]Message, 0, len(s.messages)+2)
	if s.config.SystemPrompt != "" {
		out = append(out, Message{Role: RoleSystem, Content: s.config.SystemPrompt})
	}
	out = append(out, s.messages...)
	out = append(out, Message{Role: RoleUser, Content: input})
	return out
}

// Reset clears the conversation, keeping the system prompt.
func (s *Session) Reset() {
	s.messages = nil
	s.turns = nil
	s.debugf("[verbose] session reset")
}

// History returns a copy of the recorded turns.
func (s *Session) History() []TurnRecord {
	out := make([]TurnRecord, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) debugf(format string, args ...any) {
	debugf(s.verbose, s.logger, format, args...)
}
