package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is a YAML file of additional templates merged over the builtin
// catalog at startup. A pack entry may reuse a builtin ID to replace it.
type Pack struct {
	Templates []Template `yaml:"templates"`
}

// LoadPack reads a template pack from a YAML file and validates it.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read template pack: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template pack: %w", err)
	}

	for i, t := range pack.Templates {
		if errs := validateTemplate(t); len(errs) > 0 {
			return nil, fmt.Errorf("invalid template at index %d (%q): %s", i, t.Title, strings.Join(errs, "; "))
		}
	}

	return &pack, nil
}

// WithPack returns a new catalog with the pack's templates merged in,
// replacing builtin templates with matching IDs.
func (c *Catalog) WithPack(pack *Pack) *Catalog {
	merged := make(map[int]Template, len(c.byID)+len(pack.Templates))
	for id, t := range c.byID {
		merged[id] = t
	}
	for _, t := range pack.Templates {
		merged[t.ID] = t
	}
	return &Catalog{byID: merged}
}

func validateTemplate(t Template) []string {
	var errs []string

	if t.ID < 0 {
		errs = append(errs, "id must be non-negative")
	}
	if t.Title == "" {
		errs = append(errs, "title is required")
	}
	if t.Pattern == "" {
		errs = append(errs, "pattern is required")
	}
	if t.InputLabel == "" && strings.Contains(t.Pattern, "{{input}}") {
		errs = append(errs, "pattern uses {{input}} but no input label is declared")
	}
	if t.SecondaryInputLabel == "" && strings.Contains(t.Pattern, "{{secondary_input}}") {
		errs = append(errs, "pattern uses {{secondary_input}} but no secondary input label is declared")
	}
	if t.QuestionCountLabel != "" && t.DefaultQuestionCount <= 0 {
		errs = append(errs, "default question count must be positive when a question count field is declared")
	}

	return errs
}
