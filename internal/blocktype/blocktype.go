// Package blocktype provides the content-type registry: per-type merge
// and transform behavior looked up by type name.
package blocktype

import (
	"sync"

	"github.com/dshills/blockstorm/internal/document"
)

// MergeFunc combines the attributes of a receiving block with those of
// an absorbed block and returns the merged attributes.
type MergeFunc func(a, b map[string]any) map[string]any

// TransformFunc converts a block into zero or more blocks of the target
// type. An empty result means the conversion is not possible.
type TransformFunc func(b document.Block, target string) []document.Block

// BlockType describes the behavior of one content type. A nil Merge
// means the type cannot absorb a neighbor.
type BlockType struct {
	Name      string
	Merge     MergeFunc
	Transform TransformFunc
}

// Mergeable reports whether the type can absorb a neighboring block.
func (t BlockType) Mergeable() bool {
	return t.Merge != nil
}

// Registry maps type names to block types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]BlockType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]BlockType)}
}

// Register adds a block type, replacing any previous type of the same
// name.
func (r *Registry) Register(t BlockType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.Name] = t
}

// Get returns the block type registered under name.
func (r *Registry) Get(name string) (BlockType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Has reports whether a type is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Transform converts a block into the target type using the block's own
// type behavior. The result is empty when the block's type is unknown,
// defines no transform, or cannot produce the target type.
func (r *Registry) Transform(b document.Block, target string) []document.Block {
	t, ok := r.Get(b.Type)
	if !ok || t.Transform == nil {
		return nil
	}
	return t.Transform(b, target)
}
