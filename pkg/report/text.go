package report

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

// TextRenderer emits a human-readable summary, one finding per line.
type TextRenderer struct{}

// Name identifies the renderer inside a Registry.
func (TextRenderer) Name() string {
	return "text"
}

// ContentType returns the MIME type of the rendered payload.
func (TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render produces the plain-text report.
func (TextRenderer) Render(ctx context.Context, rep Report, options Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := rep.Source
	if source == "" {
		source = "(document)"
	}

	b := &strings.Builder{}
	if rep.Valid {
		fmt.Fprintf(b, "%s: valid (%d descriptor(s) checked)\n", source, rep.Checked)
		return []byte(b.String()), nil
	}

	fmt.Fprintf(b, "%s: %d finding(s) in %d descriptor(s)\n", source, len(rep.Findings), rep.Checked)
	w := tabwriter.NewWriter(b, 2, 4, 2, ' ', 0)
	for _, finding := range rep.Findings {
		path := finding.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", path, finding.Code, finding.Reason)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("report: render text: %w", err)
	}
	return []byte(b.String()), nil
}
