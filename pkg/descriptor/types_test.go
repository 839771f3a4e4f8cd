package descriptor_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
)

func TestFieldUnmarshalSplitsAttributes(t *testing.T) {
	payload := []byte(`{
		"key": "field_abc123",
		"label": "Layout",
		"name": "layout",
		"type": "select",
		"choices": {"left": "Left", "right": "Right"},
		"allow_null": 0,
		"required": 1
	}`)

	var field descriptor.Field
	if err := json.Unmarshal(payload, &field); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if field.Key != "field_abc123" || field.Name != "layout" || field.Type != "select" {
		t.Fatalf("promoted attributes wrong: %+v", field)
	}

	wantAttrs := map[string]any{
		"choices":    map[string]any{"left": "Left", "right": "Right"},
		"allow_null": float64(0),
		"required":   float64(1),
	}
	if diff := cmp.Diff(wantAttrs, field.Attributes); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}

	if _, present := field.Attribute("choices"); !present {
		t.Fatal("choices should be present")
	}
	if _, present := field.Attribute("placeholder"); present {
		t.Fatal("placeholder should be absent")
	}
}

func TestFieldUnmarshalSubFields(t *testing.T) {
	payload := []byte(`{
		"key": "field_parent",
		"label": "Slides",
		"name": "slides",
		"type": "repeater",
		"sub_fields": [
			{"key": "field_child", "label": "Caption", "name": "caption", "type": "text"}
		]
	}`)

	var field descriptor.Field
	if err := json.Unmarshal(payload, &field); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(field.SubFields) != 1 {
		t.Fatalf("expected 1 sub field, got %d", len(field.SubFields))
	}
	if field.SubFields[0].Key != "field_child" {
		t.Fatalf("sub field key = %q", field.SubFields[0].Key)
	}
	if _, present := field.Attribute("sub_fields"); present {
		t.Fatal("sub_fields must not leak into Attributes")
	}
}

func TestFieldMarshalRoundTrip(t *testing.T) {
	field := descriptor.Field{
		Key:   "field_abc",
		Label: "Heading",
		Name:  "heading",
		Type:  "text",
		Attributes: map[string]any{
			"placeholder": "Enter a heading",
		},
	}

	payload, err := json.Marshal(field)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded descriptor.Field
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(field, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldAttributeNamesSorted(t *testing.T) {
	field := descriptor.Field{
		Attributes: map[string]any{
			"placeholder": "x",
			"append":      "y",
			"maxlength":   float64(10),
		},
	}

	want := []string{"append", "maxlength", "placeholder"}
	if diff := cmp.Diff(want, field.AttributeNames()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestWellFormedKey(t *testing.T) {
	tests := []struct {
		key    string
		prefix string
		want   bool
	}{
		{"field_abc123", descriptor.FieldKeyPrefix, true},
		{"group_67d3f65d", descriptor.GroupKeyPrefix, true},
		{"field_", descriptor.FieldKeyPrefix, false},
		{"bad", descriptor.FieldKeyPrefix, false},
		{"", descriptor.FieldKeyPrefix, false},
		{"group_abc", descriptor.FieldKeyPrefix, false},
	}

	for _, tc := range tests {
		if got := descriptor.WellFormedKey(tc.key, tc.prefix); got != tc.want {
			t.Errorf("WellFormedKey(%q, %q) = %v, want %v", tc.key, tc.prefix, got, tc.want)
		}
	}
}

func TestFieldGroupIsActive(t *testing.T) {
	active := true
	inactive := false

	if !(descriptor.FieldGroup{}).IsActive() {
		t.Fatal("groups default to active")
	}
	if !(descriptor.FieldGroup{Active: &active}).IsActive() {
		t.Fatal("explicitly active group")
	}
	if (descriptor.FieldGroup{Active: &inactive}).IsActive() {
		t.Fatal("explicitly inactive group")
	}
}

func TestBlockSlug(t *testing.T) {
	block := descriptor.Block{Name: "acf/hero-banner"}
	if got := block.Slug(); got != "hero-banner" {
		t.Fatalf("Slug() = %q, want hero-banner", got)
	}
	if got := (descriptor.Block{Name: "hero"}).Slug(); got != "hero" {
		t.Fatalf("Slug() without prefix = %q, want hero", got)
	}
}
