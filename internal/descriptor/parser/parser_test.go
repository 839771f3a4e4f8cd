package parser_test

import (
	"context"
	"strings"
	"testing"

	internalparser "github.com/goliatone/go-acfgen/internal/descriptor/parser"
	"github.com/goliatone/go-acfgen/pkg/descriptor"
)

func newParser(t *testing.T, options ...descriptor.ParserOption) descriptor.Parser {
	t.Helper()
	return internalparser.New(descriptor.NewParserOptions(options...))
}

func document(t *testing.T, payload string) descriptor.Document {
	t.Helper()
	doc, err := descriptor.NewDocument(descriptor.SourceFromFile("fixture.json"), []byte(payload))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func TestParseFieldGroup(t *testing.T) {
	doc := document(t, `{
		"key": "group_hero",
		"title": "Hero",
		"fields": [
			{"key": "field_h1", "label": "Heading", "name": "heading", "type": "text"}
		]
	}`)

	bundle, err := newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Groups) != 1 || len(bundle.Fields) != 0 || len(bundle.Blocks) != 0 {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
	group := bundle.Groups[0]
	if group.Key != "group_hero" || group.Title != "Hero" || len(group.Fields) != 1 {
		t.Fatalf("group decoded wrong: %+v", group)
	}
}

func TestParseBareField(t *testing.T) {
	doc := document(t, `{"key": "field_h1", "label": "Heading", "name": "heading", "type": "text"}`)

	bundle, err := newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Fields) != 1 {
		t.Fatalf("expected 1 field, got %+v", bundle)
	}
}

func TestParseBlock(t *testing.T) {
	doc := document(t, `{
		"name": "acf/hero-banner",
		"title": "Hero Banner",
		"acf": {"mode": "preview", "renderTemplate": "hero-banner.php"}
	}`)

	bundle, err := newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %+v", bundle)
	}
	block := bundle.Blocks[0]
	if block.Name != "acf/hero-banner" || block.ACF.RenderTemplate != "hero-banner.php" {
		t.Fatalf("block decoded wrong: %+v", block)
	}
}

func TestParseMixedArray(t *testing.T) {
	doc := document(t, `[
		{"key": "group_a", "title": "A", "fields": []},
		{"key": "field_b", "label": "B", "name": "b", "type": "text"},
		{"name": "acf/c", "title": "C"}
	]`)

	bundle, err := newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Groups) != 1 || len(bundle.Fields) != 1 || len(bundle.Blocks) != 1 {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
}

func TestParseMalformedKeyStillClassifies(t *testing.T) {
	// The parser hands malformed keys to the validator rather than failing,
	// classifying by shape: objects with a fields array are groups.
	doc := document(t, `{"key": "bad", "title": "Broken", "fields": []}`)

	bundle, err := newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Groups) != 1 {
		t.Fatalf("expected malformed group to classify as group, got %+v", bundle)
	}

	doc = document(t, `{"key": "bad", "label": "Broken", "type": "text"}`)
	bundle, err = newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Fields) != 1 {
		t.Fatalf("expected malformed field to classify as field, got %+v", bundle)
	}
}

func TestParseYAML(t *testing.T) {
	doc := document(t, strings.TrimSpace(`
key: group_hero
title: Hero
fields:
  - key: field_h1
    label: Heading
    name: heading
    type: text
`))

	bundle, err := newParser(t).Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Groups) != 1 || len(bundle.Groups[0].Fields) != 1 {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
}

func TestParseYAMLDisabled(t *testing.T) {
	doc := document(t, "key: group_hero\ntitle: Hero\nfields: []\n")

	_, err := newParser(t, descriptor.WithYAML(false)).Parse(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "yaml support disabled") {
		t.Fatalf("expected yaml disabled error, got %v", err)
	}
}

func TestParseEmptyGroupRejectedWhenDisallowed(t *testing.T) {
	doc := document(t, `{"key": "group_a", "title": "A", "fields": []}`)

	_, err := newParser(t, descriptor.WithEmptyGroups(false)).Parse(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "has no fields") {
		t.Fatalf("expected empty group error, got %v", err)
	}
}

func TestParseRejectsUnclassifiable(t *testing.T) {
	doc := document(t, `{"title": "Nothing identifying"}`)

	_, err := newParser(t).Parse(context.Background(), doc)
	if err == nil {
		t.Fatal("expected classification error")
	}
}

func TestParseEmptyPayload(t *testing.T) {
	if _, err := newParser(t).Parse(context.Background(), descriptor.Document{}); err == nil {
		t.Fatal("expected empty payload error")
	}
}
