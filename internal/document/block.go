// Package document defines the block tree that makes up a document.
package document

import "github.com/google/uuid"

// Block is one element of a document. Identity is the ID: two blocks
// with equal IDs denote the same logical element across state
// snapshots. Children are exclusively owned by their parent.
type Block struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Children   []Block        `json:"blocks,omitempty"`
}

// NewBlock creates a block of the given type with a fresh ID.
func NewBlock(typeName string, attrs map[string]any, children ...Block) Block {
	return Block{
		ID:         uuid.New().String(),
		Type:       typeName,
		Attributes: attrs,
		Children:   children,
	}
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	out := b
	out.Attributes = CloneAttributes(b.Attributes)
	out.Children = CloneAll(b.Children)
	return out
}

// CloneAll returns a deep copy of a block sequence.
func CloneAll(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}

// CloneAttributes deep-copies an attribute map. Nested maps and slices
// are copied; other values are assumed immutable.
func CloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneAttributes(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
