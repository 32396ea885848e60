// Package speech reads generated text aloud through whatever synthesizer
// the host provides. Availability is detected at construction; absence
// degrades to a clear message rather than an error path the caller has to
// handle specially.
package speech

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/sahayakai/sahayak/internal/observe"
)

// ErrUnavailable is returned when no speech synthesizer was found on the
// host.
var ErrUnavailable = errors.New("no speech synthesizer found (tried say, espeak, spd-say)")

const speakTimeout = 2 * time.Minute

// Synthesizer speaks text aloud via a host tool.
type Synthesizer struct {
	binaryPath string
	tool       string
	obs        *observe.Observer
}

// Detect probes the host for a known synthesizer binary. It returns a
// Synthesizer even when none is found; Available and Speak report the
// degraded state.
func Detect(obs *observe.Observer) *Synthesizer {
	tools := []string{"say", "espeak", "spd-say"}
	for _, t := range tools {
		path, err := exec.LookPath(t)
		if err == nil {
			obs.Log().Info().Str("tool", t).Msg("speech synthesizer detected")
			return &Synthesizer{binaryPath: path, tool: t, obs: obs}
		}
	}
	return &Synthesizer{obs: obs}
}

// Available reports whether a synthesizer was detected.
func (s *Synthesizer) Available() bool {
	return s.binaryPath != ""
}

// Tool names the detected synthesizer binary, or "" when unavailable.
func (s *Synthesizer) Tool() string {
	return s.tool
}

// Speak reads the text aloud, blocking until playback finishes or the
// context is cancelled.
func (s *Synthesizer) Speak(ctx context.Context, text string) error {
	if s.binaryPath == "" {
		return ErrUnavailable
	}

	execCtx, cancel := context.WithTimeout(ctx, speakTimeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, s.binaryPath, text)
	if out, err := cmd.CombinedOutput(); err != nil {
		s.obs.Log().Warn().Str("tool", s.tool).Err(err).Msg("speech playback failed")
		return errors.New("speech playback failed: " + string(out))
	}
	return nil
}
