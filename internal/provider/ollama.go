package provider

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"github.com/ollama/ollama/api"
)

// OllamaStreamer streams from a local Ollama instance. Useful when working
// offline or without a cloud credential.
type OllamaStreamer struct {
	client *api.Client
	model  string
}

func NewOllamaStreamer(model string) (*OllamaStreamer, error) {
	if model == "" {
		model = "llama3.2"
	}

	baseURL := "http://localhost:11434"
	if envURL := os.Getenv("OLLAMA_HOST"); envURL != "" {
		baseURL = envURL
	}
	uri, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &OllamaStreamer{
		client: api.NewClient(uri, http.DefaultClient),
		model:  model,
	}, nil
}

func (s *OllamaStreamer) Name() string {
	return "ollama"
}

func (s *OllamaStreamer) Stream(ctx context.Context, req Request, emit FragmentFunc) error {
	msg := api.Message{
		Role:    "user",
		Content: req.Text,
	}
	if req.Image != nil {
		msg.Images = []api.ImageData{req.Image.Data}
	}
	// Local models cannot transcribe inline audio; the request text already
	// carries the transcription hint.

	stream := true
	chatReq := &api.ChatRequest{
		Model:    s.model,
		Messages: []api.Message{msg},
		Stream:   &stream,
	}

	var emitErr error
	err := s.client.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		if resp.Message.Content == "" {
			return nil
		}
		emitErr = emit(resp.Message.Content)
		return emitErr
	})
	if err != nil {
		if emitErr != nil {
			return emitErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &GenerationFailedError{Err: err}
	}
	return nil
}
