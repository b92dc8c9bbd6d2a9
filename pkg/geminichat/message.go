package geminichat

import "time"

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is the provider-agnostic chat message DTO.
type Message struct {
	Role    Role
	Content string
}

// TurnRecord is one persisted history entry.
type TurnRecord struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
