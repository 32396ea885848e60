package image

import "context"

// StubGenerator is a scripted generator for testing.
type StubGenerator struct {
	URI   string
	Err   error
	Calls int
}

func (s *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.URI, nil
}
