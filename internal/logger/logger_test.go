package logger

import (
	"testing"
)

func TestNew_Development(t *testing.T) {
	log, err := New("development")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	if log == nil {
		t.Fatal("expected non-nil logger")
	}

	// Should not panic
	log.Info("test message")
}

func TestNew_Production(t *testing.T) {
	log, err := New("production")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	if log == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_UnknownModeFallsBackToProduction(t *testing.T) {
	log, err := New("")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Error("debug should be disabled outside development")
	}
}

func TestMust(t *testing.T) {
	// Should not panic
	log := Must("development")
	if log == nil {
		t.Fatal("expected non-nil logger")
	}
}
