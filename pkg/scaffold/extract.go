package scaffold

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-acfgen/pkg/schema"
)

var getFieldPattern = regexp.MustCompile(`get_field\(\s*['"]([^'"]+)['"]`)

// ExtractFields scans PHP template source for get_field() calls and proposes
// a field plan for each distinct name, in order of first appearance. Types
// are inferred from naming conventions and default to text.
func ExtractFields(phpSource string) []FieldPlan {
	matches := getFieldPattern.FindAllStringSubmatch(phpSource, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var plans []FieldPlan
	for _, match := range matches {
		name := match[1]
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		plans = append(plans, FieldPlan{
			Name:  name,
			Type:  inferFieldType(name),
			Label: LabelFromName(name),
		})
	}
	return plans
}

// inferFieldType guesses an ACF type from the field name. Heuristics only;
// the review step exists so a human can correct them.
func inferFieldType(name string) string {
	lowered := strings.ToLower(name)
	switch {
	case containsAny(lowered, "image", "photo", "logo", "thumbnail", "avatar"):
		return schema.TypeImage
	case containsAny(lowered, "gallery", "images", "photos"):
		return schema.TypeGallery
	case containsAny(lowered, "email"):
		return schema.TypeEmail
	case containsAny(lowered, "url", "website"):
		return schema.TypeURL
	case containsAny(lowered, "link", "cta", "button"):
		return schema.TypeLink
	case containsAny(lowered, "color", "colour"):
		return schema.TypeColorPicker
	case containsAny(lowered, "date", "published_at", "starts", "ends"):
		return schema.TypeDatePicker
	case containsAny(lowered, "count", "number", "amount", "quantity", "per_page"):
		return schema.TypeNumber
	case containsAny(lowered, "enabled", "show_", "is_", "has_", "toggle"):
		return schema.TypeTrueFalse
	case containsAny(lowered, "content", "body", "description", "bio"):
		return schema.TypeWYSIWYG
	case containsAny(lowered, "items", "slides", "cards", "rows", "entries"):
		return schema.TypeRepeater
	case containsAny(lowered, "post", "article", "page_ref"):
		return schema.TypePostObject
	default:
		return schema.TypeText
	}
}

func containsAny(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
