package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. Exported consts so callers can branch without string literals.
const (
	CodeMalformedKey             = "malformed_key"
	CodeUnknownFieldType         = "unknown_field_type"
	CodeMissingRequiredAttribute = "missing_required_attribute"
	CodeInvalidAttributeValue    = "invalid_attribute_value"
	CodeDuplicateKey             = "duplicate_key"
	CodeDuplicateName            = "duplicate_name"
	CodeUnknownAttribute         = "unknown_attribute"
)

// Issue represents a single validation finding.
type Issue struct {
	// Path is a JSON-pointer style location of the offending value, for
	// example /fields/2/sub_fields/0/choices. Empty means the document root.
	Path string
	// Code is one of the Code* constants above.
	Code string
	// Attribute names the attribute the finding concerns, when applicable.
	Attribute string
	// Message is a human-readable reason.
	Message string
	// Params carries structured parameters (e.g. {"type":"selekt"}) for
	// machine consumers.
	Params map[string]any
}

// Issues is an ordered collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, pathOrRoot(it.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func joinPath(parent, child string) string {
	return parent + "/" + child
}

func indexPath(parent, child string, index int) string {
	return fmt.Sprintf("%s/%s/%d", parent, child, index)
}
