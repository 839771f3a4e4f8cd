package report

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONRenderer emits the report as a stable JSON document. It uses the
// standard library encoder so key ordering stays deterministic for golden
// files.
type JSONRenderer struct{}

// Name identifies the renderer inside a Registry.
func (JSONRenderer) Name() string {
	return "json"
}

// ContentType returns the MIME type of the rendered payload.
func (JSONRenderer) ContentType() string {
	return "application/json"
}

// Render serialises the report, indented unless Compact is requested.
func (JSONRenderer) Render(ctx context.Context, rep Report, options Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if options.Compact {
		data, err = json.Marshal(rep)
	} else {
		data, err = json.MarshalIndent(rep, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("report: encode json: %w", err)
	}
	return append(data, '\n'), nil
}
