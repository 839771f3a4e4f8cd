package report

import "context"

// Options carries per-render instructions.
type Options struct {
	// Compact suppresses indentation in machine formats.
	Compact bool
}

// Renderer converts a Report into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rep Report, options Options) ([]byte, error)
}
