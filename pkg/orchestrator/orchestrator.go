// Package orchestrator coordinates the loader → parser → validator → report
// renderer pipeline. It applies sensible defaults (built-in registry, text
// renderer) while remaining open to dependency injection for advanced
// callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-acfgen/internal/descriptor/loader"
	internalParser "github.com/goliatone/go-acfgen/internal/descriptor/parser"
	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/report"
	"github.com/goliatone/go-acfgen/pkg/validate"
)

const defaultRendererName = "text"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom descriptor loader.
func WithLoader(loader descriptor.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom descriptor parser.
func WithParser(parser descriptor.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithValidator injects a pre-configured validator (custom registry, key
// index, strict mode).
func WithValidator(validator *validate.Validator) Option {
	return func(o *Orchestrator) {
		o.validator = validator
	}
}

// WithReportRegistry injects a renderer registry.
func WithReportRegistry(registry *report.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithReportOptions sets render options applied to every request. Request
// options that enable a flag win over the configured baseline.
func WithReportOptions(opts report.Options) Option {
	return func(o *Orchestrator) {
		o.reportOptions = opts
	}
}

// Orchestrator runs the full pipeline from descriptor source to rendered
// validation report.
type Orchestrator struct {
	loader          descriptor.Loader
	parser          descriptor.Parser
	validator       *validate.Validator
	registry        *report.Registry
	defaultRenderer string
	reportOptions   report.Options
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to validate a descriptor document.
type Request struct {
	// Source identifies where the document lives. Optional when Document is
	// supplied.
	Source descriptor.Source

	// Document allows callers to bypass the loader when they already have a
	// payload in hand.
	Document *descriptor.Document

	// Renderer names the report renderer to use. If empty, the orchestrator
	// falls back to the configured default renderer.
	Renderer string

	// Options carries per-request render instructions.
	Options report.Options
}

// Validate executes the loader → parser → validator → renderer sequence. It
// returns the structured report alongside its rendered bytes; a report with
// findings is not an error.
func (o *Orchestrator) Validate(ctx context.Context, req Request) (report.Report, []byte, error) {
	if ctx == nil {
		return report.Report{}, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return report.Report{}, nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return report.Report{}, nil, err
	}

	bundle, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return report.Report{}, nil, fmt.Errorf("orchestrator: parse document: %w", err)
	}

	issues := o.validator.ValidateBundle(bundle)
	checked := len(bundle.Groups) + len(bundle.Fields) + len(bundle.Blocks)
	rep := report.FromIssues(doc.Location(), checked, issues)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return report.Report{}, nil, err
	}

	opts := req.Options
	opts.Compact = opts.Compact || o.reportOptions.Compact

	output, err := renderer.Render(ctx, rep, opts)
	if err != nil {
		return report.Report{}, nil, fmt.Errorf("orchestrator: render report: %w", err)
	}

	return rep, output, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (descriptor.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return descriptor.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return descriptor.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (report.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: report registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err == nil {
		return renderer, nil
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(descriptor.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(descriptor.NewParserOptions())
	}
	if o.validator == nil {
		o.validator = validate.New()
	}
	if o.registry == nil {
		o.registry = report.DefaultRegistry()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
