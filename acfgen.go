package acfgen

import (
	"context"

	internalLoader "github.com/goliatone/go-acfgen/internal/descriptor/loader"
	internalParser "github.com/goliatone/go-acfgen/internal/descriptor/parser"
	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/orchestrator"
	"github.com/goliatone/go-acfgen/pkg/report"
)

// Source aliases descriptor.Source so quick-start callers only need the
// root package.
type Source = descriptor.Source

// Document aliases descriptor.Document.
type Document = descriptor.Document

// Report aliases report.Report.
type Report = report.Report

// SourceFromFile builds a file-backed descriptor source.
func SourceFromFile(path string) Source {
	return descriptor.SourceFromFile(path)
}

// SourceFromURL builds an HTTP-backed descriptor source.
func SourceFromURL(raw string) Source {
	return descriptor.SourceFromURL(raw)
}

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...descriptor.LoaderOption) descriptor.Loader {
	cfg := descriptor.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...descriptor.ParserOption) descriptor.Parser {
	cfg := descriptor.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ValidateSource loads the descriptor source, validates every descriptor
// in it, and renders the report using the named renderer. It is the
// simplest entry point for callers that just want a rendered report.
func ValidateSource(ctx context.Context, source Source, rendererName string, options ...orchestrator.Option) (Report, []byte, error) {
	gen := orchestrator.New(options...)
	return gen.Validate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// ValidateDocument validates a pre-loaded document, bypassing the loader
// stage while still delegating to the orchestrator.
func ValidateDocument(ctx context.Context, doc Document, rendererName string, options ...orchestrator.Option) (Report, []byte, error) {
	gen := orchestrator.New(options...)
	return gen.Validate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}
