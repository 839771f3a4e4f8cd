package report_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acfgen/pkg/report"
	"github.com/goliatone/go-acfgen/pkg/testsupport"
	"github.com/goliatone/go-acfgen/pkg/validate"
)

func sampleIssues() validate.Issues {
	return validate.Issues{
		{
			Path:      "/key",
			Code:      validate.CodeMalformedKey,
			Attribute: "key",
			Message:   `key "bad" must start with "field_" followed by a unique token`,
		},
		{
			Path:      "/choices",
			Code:      validate.CodeMissingRequiredAttribute,
			Attribute: "choices",
			Message:   `select field requires attribute "choices"`,
		},
	}
}

func TestFromIssues(t *testing.T) {
	rep := report.FromIssues("testdata/field.json", 1, sampleIssues())

	want := report.Report{
		Source:  "testdata/field.json",
		Valid:   false,
		Checked: 1,
		Findings: []report.Finding{
			{
				Path:      "/key",
				Attribute: "key",
				Code:      validate.CodeMalformedKey,
				Reason:    `key "bad" must start with "field_" followed by a unique token`,
			},
			{
				Path:      "/choices",
				Attribute: "choices",
				Code:      validate.CodeMissingRequiredAttribute,
				Reason:    `select field requires attribute "choices"`,
			},
		},
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIssuesValid(t *testing.T) {
	rep := report.FromIssues("testdata/group.json", 3, nil)
	if !rep.Valid || len(rep.Findings) != 0 || rep.Checked != 3 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestJSONRenderer(t *testing.T) {
	rep := report.FromIssues("testdata/field.json", 1, sampleIssues())

	payload, err := report.JSONRenderer{}.Render(context.Background(), rep, report.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(string(payload), "\n") {
		t.Fatal("JSON output should end with a newline")
	}

	golden := filepath.Join("testdata", "findings.golden.json")
	if !testsupport.WriteMaybeGolden(t, golden, payload) {
		want := testsupport.MustReadGoldenString(t, golden)
		if diff := testsupport.CompareGolden(want, string(payload)); diff != "" {
			t.Fatalf("golden mismatch (-want +got):\n%s", diff)
		}
	}

	var decoded report.Report
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if diff := cmp.Diff(rep, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	compact, err := report.JSONRenderer{}.Render(context.Background(), rep, report.Options{Compact: true})
	if err != nil {
		t.Fatalf("Render compact: %v", err)
	}
	if strings.Contains(strings.TrimSuffix(string(compact), "\n"), "\n") {
		t.Fatal("compact output should be a single line")
	}
}

func TestTextRendererValid(t *testing.T) {
	rep := report.FromIssues("testdata/group.json", 2, nil)

	payload, err := report.TextRenderer{}.Render(context.Background(), rep, report.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	golden := filepath.Join("testdata", "valid.golden.txt")
	if testsupport.WriteMaybeGolden(t, golden, payload) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if string(payload) != want {
		t.Fatalf("output = %q, want %q", payload, want)
	}
}

func TestTextRendererFindings(t *testing.T) {
	rep := report.FromIssues("testdata/field.json", 1, sampleIssues())

	payload, err := report.TextRenderer{}.Render(context.Background(), rep, report.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(payload)
	if !strings.Contains(out, "2 finding(s) in 1 descriptor(s)") {
		t.Fatalf("missing summary line: %q", out)
	}
	if !strings.Contains(out, validate.CodeMalformedKey) || !strings.Contains(out, "/choices") {
		t.Fatalf("missing finding rows: %q", out)
	}
}

func TestRegistry(t *testing.T) {
	reg := report.DefaultRegistry()

	for _, name := range []string{"text", "json"} {
		renderer, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if renderer.Name() != name {
			t.Fatalf("renderer name = %q, want %q", renderer.Name(), name)
		}
	}

	if _, err := reg.Get("xml"); err == nil {
		t.Fatal("unknown renderer should error")
	}

	want := []string{"json", "text"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}
