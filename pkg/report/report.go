// Package report turns validation findings into consumable output. Renderers
// are pluggable behind a registry so machine (json) and human (text) formats
// share one report model.
package report

import (
	"github.com/goliatone/go-acfgen/pkg/validate"
)

// Finding is a single reported defect.
type Finding struct {
	Path      string `json:"path"`
	Attribute string `json:"attribute,omitempty"`
	Code      string `json:"code"`
	Reason    string `json:"reason"`
}

// Report is the outcome of validating one document.
type Report struct {
	// Source names the validated document, usually its file path or URL.
	Source string `json:"source,omitempty"`
	// Valid is true when no findings were recorded.
	Valid bool `json:"valid"`
	// Checked counts the descriptors visited (field groups, bare fields,
	// blocks).
	Checked int `json:"checked"`
	// Findings lists defects in document order.
	Findings []Finding `json:"findings,omitempty"`
}

// FromIssues converts validator output into a Report.
func FromIssues(source string, checked int, issues validate.Issues) Report {
	rep := Report{
		Source:  source,
		Valid:   len(issues) == 0,
		Checked: checked,
	}
	for _, issue := range issues {
		rep.Findings = append(rep.Findings, Finding{
			Path:      issue.Path,
			Attribute: issue.Attribute,
			Code:      issue.Code,
			Reason:    issue.Message,
		})
	}
	return rep
}
