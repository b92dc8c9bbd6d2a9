// JSON persistence for conversation history.
package geminichat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// historyFile is the on-disk history format.
type historyFile struct {
	SessionID string       `json:"session_id"`
	SavedAt   time.Time    `json:"saved_at"`
	Turns     []TurnRecord `json:"turns"`
}

// SaveHistory writes the recorded turns to path as indented JSON.
func (s *Session) SaveHistory(path string) error {
	if path == "" {
		return errors.New("history path is empty")
	}
	data, err := json.MarshalIndent(historyFile{
		SessionID: s.id,
		SavedAt:   time.Now(),
		Turns:     s.turns,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	s.debugf("[verbose] history saved: path=%s turns=%d", path, len(s.turns))
	return nil
}

// LoadHistory replaces the current conversation with the turns stored at
// path. The in-memory message history is rebuilt from the loaded turns so the
// conversation resumes where it left off.
func (s *Session) LoadHistory(path string) error {
	if path == "" {
		return errors.New("history path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	var hf historyFile
	if err := json.Unmarshal(data, &hf); err != nil {
		return fmt.Errorf("decode history: %w", err)
	}

	messages := make([]Message, 0, len(hf.Turns))
	for i, turn := range hf.Turns {
		switch turn.Role {
		case RoleUser, RoleAssistant:
			messages = append(messages, Message{Role: turn.Role, Content: turn.Content})
		default:
			return fmt.Errorf("invalid history role at index %d: %q", i, turn.Role)
		}
	}

	s.turns = hf.Turns
	s.messages = messages
	s.debugf("[verbose] history loaded: path=%s turns=%d", path, len(s.turns))
	return nil
}
