// Package provider adapts the text-generation services behind a common
// streaming interface. Fragments are delivered in arrival order; the
// accumulated text is always the concatenation of the fragments emitted
// so far.
package provider

import (
	"context"
	"fmt"
)

// Attachment is inline media sent alongside the instruction text.
type Attachment struct {
	Data      []byte
	MediaType string
}

// Request is one resolved generation request. It is built per invocation and
// never reused.
type Request struct {
	Text       string
	Image      *Attachment
	Audio      *Attachment
	LowLatency bool
}

// FragmentFunc receives one incremental text fragment. Returning an error
// stops the stream; the error is propagated to the Stream caller.
type FragmentFunc func(fragment string) error

// Streamer opens a generation stream and delivers fragments until the
// upstream signals completion or fails.
//
// A missing credential is not an error: the streamer emits a single
// configuration-error fragment and returns nil. A failure after the stream
// has started returns a *GenerationFailedError; fragments already delivered
// remain the authoritative partial result.
type Streamer interface {
	Stream(ctx context.Context, req Request, emit FragmentFunc) error
	Name() string
}

// GenerationFailedError wraps an upstream text-service failure.
type GenerationFailedError struct {
	Err error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("an error occurred while communicating with the AI: %v", e.Err)
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}

// ConfigurationErrorMessage is streamed in place of generated content when
// the API credential is absent.
const ConfigurationErrorMessage = "### Configuration Error\n\n" +
	"The **Gemini API key** has not been configured.\n\n" +
	"Set the `GEMINI_API_KEY` environment variable (or `sahayak config set gemini.api_key ...`) to enable this feature."
