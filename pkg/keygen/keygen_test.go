package keygen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-acfgen/pkg/keygen"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	return func() time.Time { return at }
}

func TestGenerateShape(t *testing.T) {
	gen := keygen.New(
		keygen.WithClock(fixedClock(t)),
		keygen.WithEntropy(func() string { return "abc123" }),
	)

	key, err := gen.NewFieldKey()
	if err != nil {
		t.Fatalf("NewFieldKey: %v", err)
	}

	// 2025-03-14T09:26:53Z is 0x67d3f65d.
	want := "field_67d3f65dabc123"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}

func TestGeneratePrefixes(t *testing.T) {
	gen := keygen.New()

	groupKey, err := gen.NewGroupKey()
	if err != nil {
		t.Fatalf("NewGroupKey: %v", err)
	}
	if !strings.HasPrefix(groupKey, "group_") {
		t.Fatalf("group key %q lacks group_ prefix", groupKey)
	}

	fieldKey, err := gen.NewFieldKey()
	if err != nil {
		t.Fatalf("NewFieldKey: %v", err)
	}
	if !strings.HasPrefix(fieldKey, "field_") {
		t.Fatalf("field key %q lacks field_ prefix", fieldKey)
	}

	if _, err := gen.Generate("block_"); err == nil {
		t.Fatal("Generate should reject prefixes other than group_ and field_")
	}
}

func TestGenerateUniqueUnderCollisions(t *testing.T) {
	// A deterministic entropy source collides on every call within the same
	// second; the generator must still issue distinct keys.
	gen := keygen.New(
		keygen.WithClock(fixedClock(t)),
		keygen.WithEntropy(func() string { return "ffffff" }),
	)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key, err := gen.NewFieldKey()
		if err != nil {
			t.Fatalf("NewFieldKey #%d: %v", i, err)
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key issued: %q", key)
		}
		seen[key] = struct{}{}
	}
}

func TestGenerateDefaultEntropy(t *testing.T) {
	gen := keygen.New()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		key, err := gen.NewFieldKey()
		if err != nil {
			t.Fatalf("NewFieldKey #%d: %v", i, err)
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key issued: %q", key)
		}
		seen[key] = struct{}{}
	}
}
