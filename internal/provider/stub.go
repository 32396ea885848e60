package provider

import "context"

// StubStreamer is a scripted streamer for testing. It emits Fragments in
// order, then returns FinalErr (nil for a normally completed stream).
type StubStreamer struct {
	Fragments []string
	FinalErr  error

	// Requests records every request received, in order.
	Requests []Request
}

func NewStubStreamer(fragments ...string) *StubStreamer {
	return &StubStreamer{Fragments: fragments}
}

func (s *StubStreamer) Name() string {
	return "stub"
}

func (s *StubStreamer) Stream(ctx context.Context, req Request, emit FragmentFunc) error {
	s.Requests = append(s.Requests, req)

	for _, f := range s.Fragments {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := emit(f); err != nil {
			return err
		}
	}
	return s.FinalErr
}
