// Package catalog holds the fixed set of teaching tools offered by the
// application: parameterized instruction templates plus the capability flags
// the rest of the system keys off (image generation, video suggestions,
// attachments, speech playback).
package catalog

import (
	"fmt"
	"sort"
)

// Template is an immutable catalog entry describing one offered AI tool.
// The Pattern contains named placeholders ({{input}}, {{secondary_input}},
// {{question_count}}, {{language}}) bound at dispatch time by Resolve.
type Template struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`

	InputLabel                string `yaml:"input_label"`
	InputPlaceholder          string `yaml:"input_placeholder"`
	SecondaryInputLabel       string `yaml:"secondary_input_label"`
	SecondaryInputPlaceholder string `yaml:"secondary_input_placeholder"`
	QuestionCountLabel        string `yaml:"question_count_label"`
	DefaultQuestionCount      int    `yaml:"default_question_count"`

	LowLatency               bool `yaml:"low_latency"`
	RequestsLanguageSelector bool `yaml:"requests_language_selector"`
	RequestsImage            bool `yaml:"requests_image"`
	RequestsVideo            bool `yaml:"requests_video"`
	AcceptsImageInput        bool `yaml:"accepts_image_input"`
	AcceptsAudioInput        bool `yaml:"accepts_audio_input"`
	SupportsSpeechPlayback   bool `yaml:"supports_speech_playback"`
}

// Catalog is the set of templates available to a session. Defined at process
// start and never mutated afterwards.
type Catalog struct {
	byID map[int]Template
}

// New builds a catalog from the given templates. Duplicate IDs are rejected.
func New(templates []Template) (*Catalog, error) {
	byID := make(map[int]Template, len(templates))
	for _, t := range templates {
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %d (%q)", t.ID, t.Title)
		}
		byID[t.ID] = t
	}
	return &Catalog{byID: byID}, nil
}

// Builtin returns the catalog of built-in teaching tools.
func Builtin() *Catalog {
	c, err := New(builtinTemplates)
	if err != nil {
		// The builtin set is a compile-time constant; a duplicate is a bug.
		panic(err)
	}
	return c
}

// ByID looks up a template.
func (c *Catalog) ByID(id int) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// All returns the templates ordered by ID.
func (c *Catalog) All() []Template {
	out := make([]Template, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}
