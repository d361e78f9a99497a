package schemaviz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/schemaviz/schema"
	"github.com/syssam/schemaviz/schema/field"
)

// Cache is the interface for memoizing compiled diagrams. Users can
// implement it with their preferred caching solution (e.g., Redis,
// Memcached, in-memory); [NewMemCache] provides a process-local one.
// Compilation is deterministic, which is what makes the memoization sound:
// a fingerprint hit always yields the exact bytes a fresh compile would.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

// CachedCompile compiles the schema through the cache, keyed by the schema
// fingerprint. A nil cache falls through to a plain Compile.
func CachedCompile(ctx context.Context, c Cache, s *schema.Schema) (string, error) {
	if c == nil {
		return Compile(s)
	}
	key, err := Fingerprint(s)
	if err != nil {
		return "", err
	}
	if v, err := c.Get(ctx, key); err == nil && v != nil {
		return string(v), nil
	}
	text, err := Compile(s)
	if err != nil {
		return "", err
	}
	if err := c.Set(ctx, key, []byte(text), 0); err != nil {
		return "", fmt.Errorf("schemaviz: cache set: %w", err)
	}
	return text, nil
}

// Fingerprint returns a stable hex digest of the schema's structure. Equal
// schemas always fingerprint identically; the tree is flattened into a
// canonical ordered form before encoding, so the digest does not depend on
// pointer identity.
func Fingerprint(s *schema.Schema) (string, error) {
	doc := make([]any, 0, 2*s.Len())
	for _, t := range s.Tables() {
		doc = append(doc, t.Name, canonical(t.Root))
	}
	b, err := msgpack.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("schemaviz: fingerprint: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// canonical flattens a type tree into nested ordered slices. The leading
// tag string per node keeps distinct variants from colliding.
func canonical(t field.Type) []any {
	switch t := t.(type) {
	case *field.Primitive:
		return []any{"primitive", t.Kind.String()}
	case *field.Literal:
		return []any{"literal", fmt.Sprintf("%T:%v", t.Value, t.Value)}
	case *field.Ref:
		return []any{"id", t.Table}
	case *field.Object:
		node := []any{"object"}
		for _, m := range t.Fields {
			node = append(node, m.Name, m.Optional, canonical(m.Type))
		}
		return node
	case *field.Union:
		node := []any{"union"}
		for _, m := range t.Members {
			node = append(node, canonical(m))
		}
		return node
	case *field.Array:
		return []any{"array", canonical(t.Elem)}
	case *field.Record:
		return []any{"record", canonical(t.Key), canonical(t.Value)}
	default:
		return []any{"unknown", fmt.Sprintf("%T", t)}
	}
}

// MemCache is an in-memory Cache safe for concurrent use.
type MemCache struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

type memEntry struct {
	value   []byte
	expires time.Time // zero means no expiry
}

// NewMemCache returns an empty in-memory cache.
func NewMemCache() *MemCache {
	return &MemCache{entries: make(map[string]memEntry)}
}

// Get retrieves a value, honoring expiry.
func (c *MemCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || (!e.expires.IsZero() && time.Now().After(e.expires)) {
		return nil, nil
	}
	return e.value, nil
}

// Set stores a value with an optional TTL.
func (c *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memEntry{value: value}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Delete removes a single key.
func (c *MemCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Clear removes all entries.
func (c *MemCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memEntry)
	c.mu.Unlock()
	return nil
}
