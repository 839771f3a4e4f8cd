package acfgen_test

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	acfgen "github.com/goliatone/go-acfgen"
	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/testsupport"
)

func heroDocument(t *testing.T) descriptor.Document {
	t.Helper()
	return testsupport.LoadDocument(t, filepath.Join("testdata", "hero.json"))
}

func TestValidateDocument(t *testing.T) {
	doc := heroDocument(t)

	rep, output, err := acfgen.ValidateDocument(context.Background(), doc, "text")
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	if !rep.Valid {
		t.Fatalf("expected valid report: %+v", rep)
	}
	if !strings.Contains(string(output), "hero.json: valid") {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestValidateDocumentFindings(t *testing.T) {
	doc := descriptor.MustNewDocument(
		descriptor.SourceFromFile("bad.json"),
		[]byte(`{"key": "bad", "label": "X", "name": "x", "type": "text"}`),
	)

	rep, _, err := acfgen.ValidateDocument(context.Background(), doc, "json")
	if err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
	if rep.Valid || len(rep.Findings) != 1 {
		t.Fatalf("expected one finding: %+v", rep)
	}
}

func TestNewLoaderAndParser(t *testing.T) {
	loader := acfgen.NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	parser := acfgen.NewParser()
	if parser == nil {
		t.Fatal("NewParser returned nil")
	}

	bundle, err := parser.Parse(context.Background(), heroDocument(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bundle.Groups) != 1 {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
}

func TestScaffoldTemplates(t *testing.T) {
	entries, err := fs.ReadDir(acfgen.ScaffoldTemplates(), ".")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("embedded template set is empty")
	}
}
