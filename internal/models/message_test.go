package models

import "testing"

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.Sender != SenderUser {
		t.Errorf("Expected sender %q, got %q", SenderUser, msg.Sender)
	}
	if msg.Text != "hello" {
		t.Errorf("Expected text 'hello', got %q", msg.Text)
	}
	if msg.ID == "" {
		t.Error("Expected non-empty ID")
	}
}

func TestNewAgentMessage(t *testing.T) {
	msg := NewAgentMessage("done")

	if msg.Sender != SenderAgent {
		t.Errorf("Expected sender %q, got %q", SenderAgent, msg.Sender)
	}
	if msg.Text != "done" {
		t.Errorf("Expected text 'done', got %q", msg.Text)
	}
	if msg.ID == "" {
		t.Error("Expected non-empty ID")
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("Duplicate message ID generated: %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}
