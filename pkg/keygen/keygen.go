// Package keygen issues ACF-style descriptor keys: the group_/field_ prefix
// followed by a hex timestamp and a random suffix. Keys are unique within a
// Generator; global uniqueness across a site is the caller's responsibility
// via an external key index.
package keygen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
)

const suffixLength = 6

// Option customises a Generator.
type Option func(*Generator)

// WithClock injects the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithEntropy injects the random-suffix source, used by tests.
func WithEntropy(entropy func() string) Option {
	return func(g *Generator) {
		g.entropy = entropy
	}
}

// Generator issues unique keys for a single authoring session.
type Generator struct {
	mu      sync.Mutex
	issued  map[string]struct{}
	now     func() time.Time
	entropy func() string
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		issued: make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.entropy == nil {
		g.entropy = randomSuffix
	}
	return g
}

// Generate produces a fresh key for the given prefix. Only the documented
// group_ and field_ prefixes are accepted.
func (g *Generator) Generate(prefix string) (string, error) {
	if prefix != descriptor.GroupKeyPrefix && prefix != descriptor.FieldKeyPrefix {
		return "", fmt.Errorf("keygen: unsupported prefix %q", prefix)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := strconv.FormatInt(g.now().Unix(), 16)
	key := prefix + stamp + g.entropy()
	// The suffix is random, but a deterministic entropy source (tests, seeded
	// runs) can collide within one second; disambiguate with a hex counter.
	for seq := 1; ; seq++ {
		if _, taken := g.issued[key]; !taken {
			g.issued[key] = struct{}{}
			return key, nil
		}
		key = prefix + stamp + g.entropy() + strconv.FormatInt(int64(seq), 16)
	}
}

// NewGroupKey issues a group_ key.
func (g *Generator) NewGroupKey() (string, error) {
	return g.Generate(descriptor.GroupKeyPrefix)
}

// NewFieldKey issues a field_ key.
func (g *Generator) NewFieldKey() (string, error) {
	return g.Generate(descriptor.FieldKeyPrefix)
}

// randomSuffix returns a short lowercase hex token derived from a random
// UUID, following the convention ACF tooling uses for hand-issued keys.
func randomSuffix() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:suffixLength]
}
