package scaffold

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// SanitizeRichText strips markup that has no business inside a wysiwyg
// default value before it is embedded in a descriptor. The policy allows the
// formatting elements the WordPress editor itself produces and nothing else.
func SanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"p", "br", "strong", "em", "b", "i", "u", "s",
			"ul", "ol", "li", "blockquote", "h2", "h3", "h4",
		)
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowElements("a")
		policy.AllowStandardURLs()
		richTextPolicy = policy
	})
	return richTextPolicy
}
