package provider

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIStreamer streams chat completions from OpenAI or any
// OpenAI-compatible endpoint (set baseURL for self-hosted gateways).
type OpenAIStreamer struct {
	client *openai.Client
	model  string
}

func NewOpenAIStreamer(apiKey, baseURL, model string) (*OpenAIStreamer, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	if model == "" {
		model = openai.GPT4o
	}

	return &OpenAIStreamer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (s *OpenAIStreamer) Name() string {
	return "openai"
}

func (s *OpenAIStreamer) Stream(ctx context.Context, req Request, emit FragmentFunc) error {
	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}

	if req.Image != nil {
		// Vision-capable models take inline images as data URIs.
		dataURI := fmt.Sprintf("data:%s;base64,%s",
			req.Image.MediaType, base64.StdEncoding.EncodeToString(req.Image.Data))
		msg.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURI}},
			{Type: openai.ChatMessagePartTypeText, Text: req.Text},
		}
	} else {
		msg.Content = req.Text
	}
	// Inline audio has no equivalent in the chat completions API; the
	// request text already carries the transcription hint.

	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: []openai.ChatCompletionMessage{msg},
		Stream:   true,
	})
	if err != nil {
		return &GenerationFailedError{Err: err}
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &GenerationFailedError{Err: err}
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if emitErr := emit(delta); emitErr != nil {
				return emitErr
			}
		}
	}
}
