package store

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document"
)

// Apply commits an action to the store: the current state is pushed
// onto history first, then the reducer runs. Kinds the reducer does not
// recognize (mergeBlocks, synchronizeTemplate) leave state untouched;
// their work happens entirely in the effect layer.
//
// History is appended before the reducer applies. Effects that look one
// snapshot back therefore always see the pre-action document.
func (s *Store) Apply(a action.Action) {
	s.pushHistory()

	switch a.Kind {
	case action.KindReset:
		// Clone so a caller holding the action's slice cannot mutate
		// store state behind the reducer's back.
		s.state.Blocks = document.CloneAll(a.Blocks)
		s.state.MultiSelection = nil
		s.dropDanglingSelection()

	case action.KindRemoveBlocks:
		s.state.Blocks = removeByID(s.state.Blocks, idSet(a.IDs))
		s.dropDanglingSelection()
		s.dropDanglingMultiSelection()

	case action.KindReplaceBlocks:
		inserted := false
		s.state.Blocks = replaceByID(s.state.Blocks, idSet(a.IDs), document.CloneAll(a.Blocks), &inserted)
		s.dropDanglingSelection()
		s.dropDanglingMultiSelection()

	case action.KindInsertDefault:
		s.state.Blocks = append(s.state.Blocks, document.NewBlock(s.defaultType, nil))

	case action.KindSelect:
		s.state.Selection = &Selection{BlockID: a.BlockID, Offset: a.Offset}
		s.state.MultiSelection = nil

	case action.KindMultiSelect:
		s.state.MultiSelection = &Range{Start: a.Start, End: a.End}
		s.state.Selection = nil

	case action.KindSetValidity:
		s.state.ValidToTemplate = a.Valid

	case action.KindMergeBlocks, action.KindSynchronizeTemplate:
		// Effect-only kinds.
	}
}

// dropDanglingSelection clears the selection when its block no longer
// exists. A root selection (empty BlockID) always survives.
func (s *Store) dropDanglingSelection() {
	sel := s.state.Selection
	if sel == nil || sel.BlockID == "" {
		return
	}
	if !document.Contains(s.state.Blocks, sel.BlockID) {
		s.state.Selection = nil
	}
}

func (s *Store) dropDanglingMultiSelection() {
	ms := s.state.MultiSelection
	if ms == nil {
		return
	}
	if !document.Contains(s.state.Blocks, ms.Start) || !document.Contains(s.state.Blocks, ms.End) {
		s.state.MultiSelection = nil
	}
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// removeByID drops every block whose ID is in the set, at any depth.
func removeByID(blocks []document.Block, ids map[string]bool) []document.Block {
	out := blocks[:0:0]
	for _, b := range blocks {
		if ids[b.ID] {
			continue
		}
		b.Children = removeByID(b.Children, ids)
		out = append(out, b)
	}
	return out
}

// replaceByID removes every block whose ID is in the set and splices
// the replacement sequence in at the position of the first one found.
// inserted is shared across recursion so the replacement appears
// exactly once.
func replaceByID(blocks []document.Block, ids map[string]bool, with []document.Block, inserted *bool) []document.Block {
	out := blocks[:0:0]
	for _, b := range blocks {
		if ids[b.ID] {
			if !*inserted {
				out = append(out, with...)
				*inserted = true
			}
			continue
		}
		b.Children = replaceByID(b.Children, ids, with, inserted)
		out = append(out, b)
	}
	return out
}
