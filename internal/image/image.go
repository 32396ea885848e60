// Package image wraps the image-generation service behind a bounded-retry
// adapter. Successful results come back as directly displayable data URIs.
package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/sahayakai/sahayak/internal/observe"
)

const defaultImagenModel = "imagen-3.0-generate-002"

// defaultAttempts is the total attempt budget: one call plus one immediate
// re-attempt. Both "the call failed" and "the call returned no usable image"
// consume an attempt.
const defaultAttempts = 2

// noImageReason explains a successful call that produced nothing, e.g. a
// safety-filtered prompt.
const noImageReason = "The API returned no image. This might be due to a safety filter on the prompt."

// ErrNotConfigured is returned when the API credential is absent. Unlike the
// text stream, image requests fail loudly without a credential.
var ErrNotConfigured = errors.New("gemini API key has not been configured; image generation is unavailable")

// GenerationFailedError reports retry exhaustion, carrying the last observed
// reason.
type GenerationFailedError struct {
	Reason string
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("failed to generate image after multiple attempts: %s", e.Reason)
}

// Generator requests a single illustrative image for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator generates images through the Imagen API.
type GeminiGenerator struct {
	attempts int
	obs      *observe.Observer

	// generateOnce performs a single attempt; swapped out in tests.
	generateOnce func(ctx context.Context, prompt string) (string, error)
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, obs *observe.Observer) (*GeminiGenerator, error) {
	if model == "" {
		model = defaultImagenModel
	}

	g := &GeminiGenerator{
		attempts: defaultAttempts,
		obs:      obs,
	}

	if apiKey == "" {
		g.generateOnce = func(context.Context, string) (string, error) {
			return "", ErrNotConfigured
		}
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	g.generateOnce = func(ctx context.Context, prompt string) (string, error) {
		return generateImagen(ctx, client, model, prompt)
	}
	return g, nil
}

// Generate runs the attempt budget and returns a data URI, or a
// *GenerationFailedError carrying the last reason once the budget is spent.
// Credential absence short-circuits without consuming network attempts.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	lastReason := "an unknown error occurred while generating the image"

	for attempt := 1; attempt <= g.attempts; attempt++ {
		uri, err := g.generateOnce(ctx, prompt)
		if err == nil {
			return uri, nil
		}
		if errors.Is(err, ErrNotConfigured) || ctx.Err() != nil {
			return "", err
		}

		lastReason = err.Error()
		g.obs.Log().Warn().
			Int("attempt", attempt).
			Str("reason", lastReason).
			Msg("image generation attempt failed")
	}

	return "", &GenerationFailedError{Reason: lastReason}
}

func generateImagen(ctx context.Context, client *genai.Client, model, prompt string) (string, error) {
	resp, err := client.Models.GenerateImages(ctx, model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
	})
	if err != nil {
		return "", err
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return "", errors.New(noImageReason)
	}

	encoded := base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes)
	return "data:image/jpeg;base64," + encoded, nil
}
