package guard

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Policy defines the limits for a generation request: which attachment media
// types are accepted and how large prompts and attachments may get.
type Policy struct {
	MaxPromptChars     int      `json:"max_prompt_chars"`
	MaxAttachmentBytes int      `json:"max_attachment_bytes"`
	AllowedMediaGlobs  []string `json:"allowed_media_globs"`
}

// DefaultPolicy provides safe defaults. Attachment media types mirror what
// the generation backends accept; 10 MiB matches their inline payload cap.
var DefaultPolicy = Policy{
	MaxPromptChars:     32000,
	MaxAttachmentBytes: 10 << 20,
	AllowedMediaGlobs:  []string{"image/*", "audio/*"},
}

// Violation represents a specific breach of policy.
type Violation struct {
	Rule    string
	Message string
	Fatal   bool
}

// Guard enforces the policy.
type Guard struct {
	policy Policy
}

func New(p Policy) *Guard {
	return &Guard{policy: p}
}

// Policy returns the guard's current policy configuration.
func (g *Guard) Policy() Policy {
	return g.policy
}

// CheckPrompt verifies the resolved prompt is within the character budget.
func (g *Guard) CheckPrompt(prompt string) *Violation {
	if g.policy.MaxPromptChars > 0 && len(prompt) > g.policy.MaxPromptChars {
		return &Violation{
			Rule:    "max_prompt_chars",
			Message: fmt.Sprintf("Prompt length %d exceeds limit of %d", len(prompt), g.policy.MaxPromptChars),
			Fatal:   true,
		}
	}
	return nil
}

// CheckAttachment verifies an attachment's media type against the allowed
// globs and its size against the byte budget.
func (g *Guard) CheckAttachment(mediaType string, size int) *Violation {
	allowed := false
	for _, pattern := range g.policy.AllowedMediaGlobs {
		match, err := doublestar.Match(pattern, mediaType)
		if err == nil && match {
			allowed = true
			break
		}
	}
	if !allowed {
		return &Violation{Rule: "allowed_media_globs", Message: "Attachment type not allowed: " + mediaType, Fatal: true}
	}

	if g.policy.MaxAttachmentBytes > 0 && size > g.policy.MaxAttachmentBytes {
		return &Violation{
			Rule:    "max_attachment_bytes",
			Message: fmt.Sprintf("Attachment size %d exceeds limit of %d", size, g.policy.MaxAttachmentBytes),
			Fatal:   true,
		}
	}
	return nil
}
