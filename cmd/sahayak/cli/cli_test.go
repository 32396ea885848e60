package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sahayakai/sahayak/internal/history"
	"github.com/sahayakai/sahayak/internal/image"
	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/provider"
	"github.com/sahayakai/sahayak/internal/store"
	"github.com/sahayakai/sahayak/internal/video"
)

func TestRunner(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := store.NewSQLiteStore(filepath.Join(tmpDir, "sahayak.db"))
	if err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	defer s.Close()

	streamer := provider.NewStubStreamer("Sun heats water. ", "It evaporates.")
	images := &image.StubGenerator{URI: "data:image/jpeg;base64,IMG"}
	videos := &video.StubSearcher{Suggestions: []video.Suggestion{
		{Title: "Water Cycle", URL: "https://www.youtube.com/watch?v=wc"},
	}}
	obs := observe.New(io.Discard, observe.Console, false)

	inputText = "the water cycle"
	defer func() { inputText = "" }()

	r := NewRunner(obs, s, streamer, images, videos, nil)
	r.TemplateID = 3

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	hist := history.NewStore(s, obs)
	entries := hist.List(3)
	if len(entries) != 1 {
		t.Fatalf("expected one history entry, got %d", len(entries))
	}
	if entries[0].Response != "Sun heats water. It evaporates." {
		t.Errorf("unexpected response: %q", entries[0].Response)
	}

	// Field state persists for the next run.
	payload, err := s.LoadFieldState(3)
	if err != nil || len(payload) == 0 {
		t.Fatalf("expected saved field state, got %q (err %v)", payload, err)
	}
}

func TestRunner_UnknownTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := store.NewSQLiteStore(filepath.Join(tmpDir, "sahayak.db"))
	if err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	defer s.Close()

	r := NewRunner(observe.New(io.Discard, observe.Console, false), s, provider.NewStubStreamer(), nil, nil, nil)
	r.TemplateID = 999

	if err := r.Run(context.Background()); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestLoadAttachment(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("None", func(t *testing.T) {
		att, err := loadAttachment("")
		if err != nil || att != nil {
			t.Errorf("expected nil attachment, got %v (err %v)", att, err)
		}
	})

	t.Run("By Extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "board.png")
		os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0600)

		att, err := loadAttachment(path)
		if err != nil {
			t.Fatalf("loadAttachment failed: %v", err)
		}
		if att.MediaType != "image/png" {
			t.Errorf("expected image/png, got %q", att.MediaType)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := loadAttachment(filepath.Join(tmpDir, "nope.jpg")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Short Strings Pass Through", func(t *testing.T) {
		if got := truncate("water cycle", 60); got != "water cycle" {
			t.Errorf("expected unchanged string, got %q", got)
		}
	})

	t.Run("Counts Runes Not Bytes", func(t *testing.T) {
		// Devanagari input: each character is three bytes in UTF-8.
		in := "जल चक्र क्या है और यह कैसे काम करता है"
		got := truncate(in, 7)
		want := "जल चक्र..."
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestCLI_Root(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range RootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"run", "config", "history", "templates", "account"} {
		if !names[want] {
			t.Errorf("expected %q command registered", want)
		}
	}
}

func TestCLI_Config(t *testing.T) {
	for _, cmd := range RootCmd.Commands() {
		if cmd.Name() == "config" {
			if len(cmd.Commands()) < 2 {
				t.Errorf("Expected set and get subcommands for config, got %d", len(cmd.Commands()))
			}
			return
		}
	}
	t.Error("config command not found")
}

func TestCLI_Account(t *testing.T) {
	for _, cmd := range RootCmd.Commands() {
		if cmd.Name() == "account" {
			if len(cmd.Commands()) < 5 {
				t.Errorf("Expected login, register, logout, whoami, reset-password, got %d", len(cmd.Commands()))
			}
			return
		}
	}
	t.Error("account command not found")
}
