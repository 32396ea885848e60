package speech

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sahayakai/sahayak/internal/observe"
)

func TestUnavailableSynthesizer(t *testing.T) {
	s := &Synthesizer{obs: observe.New(io.Discard, observe.Console, false)}

	if s.Available() {
		t.Error("expected unavailable without a detected binary")
	}
	if s.Tool() != "" {
		t.Errorf("expected empty tool name, got %q", s.Tool())
	}
	if err := s.Speak(context.Background(), "hello"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestDetectNeverReturnsNil(t *testing.T) {
	s := Detect(observe.New(io.Discard, observe.Console, false))
	if s == nil {
		t.Fatal("expected a synthesizer even when no tool is installed")
	}
	if s.Available() && s.Tool() == "" {
		t.Error("available synthesizer must name its tool")
	}
}
