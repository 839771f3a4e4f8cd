package schema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acfgen/pkg/schema"
)

func TestDefaultRegistryCoversBuiltinTypes(t *testing.T) {
	reg := schema.Default()

	want := []string{
		"color_picker", "date_picker", "email", "gallery", "group", "image",
		"link", "number", "post_object", "relationship", "repeater", "select",
		"text", "textarea", "true_false", "url", "wysiwyg",
	}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("type list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := schema.Default()

	ts, err := reg.Lookup(schema.TypeSelect)
	if err != nil {
		t.Fatalf("Lookup(select): %v", err)
	}
	required := ts.Required()
	if len(required) != 1 || required[0].Name != "choices" {
		t.Fatalf("select required attributes = %+v, want choices", required)
	}

	_, err = reg.Lookup("selekt")
	if !errors.Is(err, schema.ErrUnknownFieldType) {
		t.Fatalf("Lookup(selekt) error = %v, want ErrUnknownFieldType", err)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := schema.NewRegistry()

	if err := reg.Register(schema.TypeSchema{Type: "custom"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := reg.Register(schema.TypeSchema{Type: "custom"}); err == nil {
		t.Fatal("duplicate Register should fail")
	}
	if err := reg.Register(schema.TypeSchema{}); err == nil {
		t.Fatal("Register without a type name should fail")
	}
}

func TestContainerTypes(t *testing.T) {
	reg := schema.Default()

	for _, name := range []string{schema.TypeRepeater, schema.TypeGroup} {
		ts, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		if !ts.Container {
			t.Fatalf("%s should be a container type", name)
		}
	}

	ts, err := reg.Lookup(schema.TypeText)
	if err != nil {
		t.Fatalf("Lookup(text): %v", err)
	}
	if ts.Container {
		t.Fatal("text should not be a container type")
	}
}

func TestTypeSchemaLookupFallsThroughToCommon(t *testing.T) {
	reg := schema.Default()
	ts, err := reg.Lookup(schema.TypeText)
	if err != nil {
		t.Fatalf("Lookup(text): %v", err)
	}

	if _, ok := ts.Lookup("placeholder"); !ok {
		t.Fatal("placeholder should resolve on text")
	}
	if _, ok := ts.Lookup("instructions"); !ok {
		t.Fatal("instructions should resolve via the common attribute set")
	}
	if _, ok := ts.Lookup("choices"); ok {
		t.Fatal("choices should not resolve on text")
	}
}

func TestDomains(t *testing.T) {
	tests := []struct {
		name   string
		domain schema.Domain
		accept []any
		reject []any
	}{
		{
			name:   "enum",
			domain: schema.Enum("array", "object", "id"),
			accept: []any{"array", "id"},
			reject: []any{"base64", 1, true},
		},
		{
			name:   "bool like",
			domain: schema.BoolLike(),
			accept: []any{true, false, float64(0), float64(1)},
			reject: []any{"true", float64(2)},
		},
		{
			name:   "int like",
			domain: schema.IntLike(),
			accept: []any{float64(3), "42", ""},
			reject: []any{float64(2.5), "ten", "12abc", true},
		},
		{
			name:   "int range",
			domain: schema.IntRange(0, 6),
			accept: []any{float64(0), float64(6)},
			reject: []any{float64(7), float64(-1)},
		},
		{
			name:   "number like",
			domain: schema.NumberLike(),
			accept: []any{float64(2.5), "0.5", ""},
			reject: []any{"ten", "0.5px", true},
		},
		{
			name:   "string list",
			domain: schema.StringList(),
			accept: []any{"post", []any{"post", "page"}},
			reject: []any{[]any{"post", float64(1)}, float64(1)},
		},
		{
			name:   "choices",
			domain: schema.Choices(),
			accept: []any{map[string]any{"a": "A"}, []any{"a", "b"}},
			reject: []any{"a", float64(1)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, value := range tc.accept {
				if !tc.domain.Contains(value) {
					t.Errorf("%s should accept %#v", tc.domain.Describe(), value)
				}
			}
			for _, value := range tc.reject {
				if tc.domain.Contains(value) {
					t.Errorf("%s should reject %#v", tc.domain.Describe(), value)
				}
			}
		})
	}
}
