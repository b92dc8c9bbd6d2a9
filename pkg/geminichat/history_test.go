package geminichat

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	session, err := New(context.Background(), Config{Client: echoStub()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := session.SendTurn("hello", TurnOptions{}); err != nil {
		t.Fatalf("SendTurn returned error: %v", err)
	}
	if err := session.SaveHistory(path); err != nil {
		t.Fatalf("SaveHistory returned error: %v", err)
	}

	fresh, err := New(context.Background(), Config{Client: echoStub()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := fresh.LoadHistory(path); err != nil {
		t.Fatalf("LoadHistory returned error: %v", err)
	}

	turns := fresh.History()
	if len(turns) != 2 {
		t.Fatalf("expected 2 loaded turns, got %d", len(turns))
	}
	if turns[0].Content != "hello" || turns[1].Content != "hello" {
		t.Fatalf("unexpected loaded turns: %+v", turns)
	}
}

func TestLoadHistoryResumesConversation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	session, err := New(context.Background(), Config{Client: echoStub()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := session.SendTurn("hello", TurnOptions{}); err != nil {
		t.Fatalf("SendTurn returned error: %v", err)
	}
	if err := session.SaveHistory(path); err != nil {
		t.Fatalf("SaveHistory returned error: %v", err)
	}

	var requestLen int
	stub := &stubClient{fn: func(messages []Message) (string, error) {
		requestLen = len(messages)
		return "ok", nil
	}}
	fresh, err := New(context.Background(), Config{Client: stub})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := fresh.LoadHistory(path); err != nil {
		t.Fatalf("LoadHistory returned error: %v", err)
	}
	if _, err := fresh.SendTurn("again", TurnOptions{}); err != nil {
		t.Fatalf("SendTurn returned error: %v", err)
	}

	// Two loaded messages plus the new user input.
	if requestLen != 3 {
		t.Fatalf("expected 3 outgoing messages after load, got %d", requestLen)
	}
}

func TestLoadHistoryMissingFile(t *testing.T) {
	session, err := New(context.Background(), Config{Client: echoStub()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := session.LoadHistory(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing history file")
	}
}

func TestSaveHistoryRejectsEmptyPath(t *testing.T) {
	session, err := New(context.Background(), Config{Client: echoStub()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := session.SaveHistory(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
