package validate_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-acfgen/pkg/validate"
)

func TestKeyIndexAdd(t *testing.T) {
	idx := validate.NewKeyIndex("field_a", "field_b")

	if !idx.Has("field_a") || !idx.Has("field_b") {
		t.Fatal("seeded keys missing from index")
	}
	if idx.Has("field_c") {
		t.Fatal("unseeded key reported as present")
	}

	if !idx.Add("field_c") {
		t.Fatal("Add of a fresh key should return true")
	}
	if idx.Add("field_c") {
		t.Fatal("Add of a duplicate key should return false")
	}
	if idx.Add("  ") {
		t.Fatal("Add of a blank key should return false")
	}
	if got := idx.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
}

func TestKeyIndexNilSafe(t *testing.T) {
	var idx *validate.KeyIndex
	if idx.Has("field_a") {
		t.Fatal("nil index should contain nothing")
	}
	if idx.Len() != 0 {
		t.Fatal("nil index should have zero length")
	}
}

func TestReadKeyIndex(t *testing.T) {
	input := strings.NewReader(`# issued keys
field_68a1b2c3d4e5f6
group_68a1b2aabbcc

  field_trailing
`)

	idx, err := validate.ReadKeyIndex(input)
	if err != nil {
		t.Fatalf("ReadKeyIndex: %v", err)
	}
	if got := idx.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for _, key := range []string{"field_68a1b2c3d4e5f6", "group_68a1b2aabbcc", "field_trailing"} {
		if !idx.Has(key) {
			t.Fatalf("key %q missing from index", key)
		}
	}
}
