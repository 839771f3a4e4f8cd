package validate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// KeyIndex records previously issued descriptor keys so the validator can
// flag site-wide duplicates. The tool has no visibility into keys issued
// outside the current run, so populating the index is the caller's job.
type KeyIndex struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewKeyIndex builds an index seeded with the provided keys.
func NewKeyIndex(keys ...string) *KeyIndex {
	idx := &KeyIndex{keys: make(map[string]struct{}, len(keys))}
	for _, key := range keys {
		idx.Add(key)
	}
	return idx
}

// Add records a key. It returns false when the key was already present.
func (idx *KeyIndex) Add(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.keys[key]; exists {
		return false
	}
	idx.keys[key] = struct{}{}
	return true
}

// Has reports whether a key has been recorded.
func (idx *KeyIndex) Has(key string) bool {
	if idx == nil {
		return false
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	_, ok := idx.keys[key]
	return ok
}

// Len returns the number of recorded keys.
func (idx *KeyIndex) Len() int {
	if idx == nil {
		return 0
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.keys)
}

// ReadKeyIndex parses a newline-delimited key listing. Blank lines and lines
// starting with # are skipped.
func ReadKeyIndex(r io.Reader) (*KeyIndex, error) {
	idx := NewKeyIndex()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("validate: read key index: %w", err)
	}
	return idx, nil
}
