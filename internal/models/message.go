package models

import "github.com/google/uuid"

// Sender identifies which side of the conversation produced a message.
type Sender string

// Message senders
const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// Message represents a single chat message. Messages are immutable once
// created; the ID only matters as a list-rendering key.
type Message struct {
	ID     string
	Sender Sender
	Text   string
}

// NewUserMessage creates a user message with a fresh unique ID.
func NewUserMessage(text string) Message {
	return Message{
		ID:     uuid.NewString(),
		Sender: SenderUser,
		Text:   text,
	}
}

// NewAgentMessage creates an agent message with a fresh unique ID.
func NewAgentMessage(text string) Message {
	return Message{
		ID:     uuid.NewString(),
		Sender: SenderAgent,
		Text:   text,
	}
}
