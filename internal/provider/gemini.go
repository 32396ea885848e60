package provider

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiStreamer streams generated content from the Gemini API.
//
// Constructed without an API key it stays usable: Stream degrades to a
// single configuration-error fragment instead of failing, so the rest of
// the application keeps working without the credential.
type GeminiStreamer struct {
	client *genai.Client
	model  string
}

func NewGeminiStreamer(ctx context.Context, apiKey, model string) (*GeminiStreamer, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	if apiKey == "" {
		return &GeminiStreamer{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiStreamer{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiStreamer) Name() string {
	return "gemini"
}

// Configured reports whether a credential was supplied.
func (s *GeminiStreamer) Configured() bool {
	return s.client != nil
}

func (s *GeminiStreamer) Stream(ctx context.Context, req Request, emit FragmentFunc) error {
	if s.client == nil {
		return emit(ConfigurationErrorMessage)
	}

	var parts []*genai.Part
	if req.Image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.Image.MediaType,
				Data:     req.Image.Data,
			},
		})
	}
	if req.Audio != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.Audio.MediaType,
				Data:     req.Audio.Data,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: req.Text})

	var config *genai.GenerateContentConfig
	if req.LowLatency {
		config = &genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
		}
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	for resp, err := range s.client.Models.GenerateContentStream(ctx, s.model, contents, config) {
		if err != nil {
			return &GenerationFailedError{Err: err}
		}
		if text := resp.Text(); text != "" {
			if emitErr := emit(text); emitErr != nil {
				return emitErr
			}
		}
	}

	return nil
}
