package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	logger, err := New("production", "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
}

func TestNewLocalEnvironment(t *testing.T) {
	if _, err := New("local", "debug"); err != nil {
		t.Fatalf("New(local) error = %v", err)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("production", "verbose"); err == nil {
		t.Error("New() should reject unknown levels")
	}
}
