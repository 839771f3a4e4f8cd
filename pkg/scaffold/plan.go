package scaffold

import (
	"regexp"
	"strings"
)

// FieldPlan is the reviewable shape of a single field before keys are issued.
type FieldPlan struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Label       string   `json:"label,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Description string   `json:"description,omitempty"`
	// Choices feeds select fields; each entry becomes a value whose label is
	// the title-cased value.
	Choices []string `json:"choices,omitempty"`
	// DefaultValue seeds the field's default. Rich-text defaults are
	// sanitised before they land in the descriptor.
	DefaultValue string `json:"default_value,omitempty"`
}

// Plan describes the block to scaffold.
type Plan struct {
	// Name is the human input; it is sanitised into the block slug.
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldPlan `json:"fields"`
	// InnerBlocks requests a nested-content container, which switches on the
	// jsx support flag and emits an InnerBlocks placeholder in the template.
	InnerBlocks bool `json:"inner_blocks,omitempty"`
}

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashRuns   = regexp.MustCompile(`-+`)
)

const maxSlugLength = 50

// SanitizeBlockName derives a block slug from free-form input: the first four
// words, lowercased, joined by dashes, restricted to [a-z0-9-], capped at 50
// characters.
func SanitizeBlockName(input string) string {
	words := strings.Fields(strings.ToLower(input))
	if len(words) > 4 {
		words = words[:4]
	}
	slug := strings.Join(words, "-")
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return strings.Trim(slug, "-")
}

// LabelFromName produces a display label from a machine name: underscores
// become spaces and each word is title-cased.
func LabelFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
