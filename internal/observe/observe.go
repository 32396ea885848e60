// Package observe carries the structured logger and trace spans through a
// generation run. Every component that logs takes an *Observer rather than
// reaching for a package-level logger, so tests can point output anywhere.
package observe

import (
	"context"
	"io"

	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Format selects how log lines are rendered.
type Format int

const (
	// Console renders human-readable lines for interactive terminals.
	Console Format = iota
	// JSON renders one JSON object per line for CI and scripted runs.
	JSON
)

// Observer bundles a logger and a tracer for one process lifetime.
type Observer struct {
	log    *bolt.Logger
	tracer trace.Tracer
}

// New builds an Observer writing to out in the given format. Unless verbose
// is set, informational output is suppressed and only warnings and errors
// reach the writer.
func New(out io.Writer, format Format, verbose bool) *Observer {
	l := bolt.New(bolt.NewConsoleHandler(out))
	if format == JSON {
		l = bolt.New(bolt.NewJSONHandler(out))
	}
	if !verbose {
		l.SetLevel(bolt.WARN)
	}
	return &Observer{
		log:    l,
		tracer: otel.Tracer("sahayak"),
	}
}

// Log exposes the logger for event-style records.
func (o *Observer) Log() *bolt.Logger {
	return o.log
}

// Span opens a trace span around one generation phase, such as resolving a
// template or streaming the model response. Callers must End the span.
func (o *Observer) Span(ctx context.Context, phase string) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, phase)
}

// Close flushes anything buffered. The current handlers write synchronously,
// so this exists for callers to defer.
func (o *Observer) Close() error {
	return nil
}
