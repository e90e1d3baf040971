// Package store holds document state, applies actions to it, and keeps
// a bounded history of past states.
package store

import "github.com/dshills/blockstorm/internal/document"

// Selection is a caret position inside one block. An empty BlockID
// addresses the document root. Offset may be action.OffsetEnd.
type Selection struct {
	BlockID string
	Offset  int
}

// Range is a contiguous multi-selection of top-level blocks, start and
// end inclusive.
type Range struct {
	Start string
	End   string
}

// DocumentState is one snapshot of the document.
type DocumentState struct {
	// Blocks is the top-level block sequence.
	Blocks []document.Block

	// Selection is the single-block caret, nil when nothing is
	// selected or a multi-selection is active.
	Selection *Selection

	// MultiSelection is the active block range, nil when absent.
	MultiSelection *Range

	// ValidToTemplate caches the conformance check from the last full
	// reset. It is derived state, written only through setValidity
	// actions.
	ValidToTemplate bool
}

// Clone returns a deep copy of the state.
func (s DocumentState) Clone() DocumentState {
	out := DocumentState{
		Blocks:          document.CloneAll(s.Blocks),
		ValidToTemplate: s.ValidToTemplate,
	}
	if s.Selection != nil {
		sel := *s.Selection
		out.Selection = &sel
	}
	if s.MultiSelection != nil {
		ms := *s.MultiSelection
		out.MultiSelection = &ms
	}
	return out
}
