package descriptor

import "context"

// Bundle collects every descriptor found in a single document. Most documents
// hold exactly one field group, but a file may also carry a bare field, a
// block manifest, or an array of field groups exported together.
type Bundle struct {
	Groups []FieldGroup
	Fields []Field
	Blocks []Block
}

// Empty reports whether the bundle carries no descriptors at all.
func (b Bundle) Empty() bool {
	return len(b.Groups) == 0 && len(b.Fields) == 0 && len(b.Blocks) == 0
}

// Parser decodes descriptor documents into typed bundles. Implementations
// live under internal/descriptor.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Bundle, error)
}

// ParserOptions exposes decoding toggles shared by the built-in parser.
type ParserOptions struct {
	// AllowYAML accepts YAML payloads in addition to JSON. Defaults to true:
	// YAML is an authoring convenience that converts to the same model.
	AllowYAML bool

	// AllowEmptyGroups accepts field groups whose fields list is empty.
	// Defaults to true since groups are often committed mid-authoring.
	AllowEmptyGroups bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithYAML toggles YAML payload support.
func WithYAML(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowYAML = enabled
	}
}

// WithEmptyGroups toggles acceptance of field groups without fields.
func WithEmptyGroups(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowEmptyGroups = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		AllowYAML:        true,
		AllowEmptyGroups: true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
