package store_test

import (
	"testing"

	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document"
	"github.com/dshills/blockstorm/internal/store"
)

func newStore() *store.Store {
	return store.New(store.DefaultOptions())
}

func paragraphs(ids ...string) []document.Block {
	out := make([]document.Block, len(ids))
	for i, id := range ids {
		out[i] = document.Block{ID: id, Type: "paragraph"}
	}
	return out
}

func topIDs(s *store.Store) []string {
	blocks := s.State().Blocks
	ids := make([]string, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids
}

func TestApplyReset(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1", "p2")))

	if got := topIDs(s); len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
		t.Errorf("unexpected blocks after reset: %v", got)
	}
}

func TestResetIsolatesCallerBlocks(t *testing.T) {
	s := newStore()
	input := []document.Block{
		{ID: "p1", Type: "paragraph", Attributes: map[string]any{"text": "orig"}},
	}
	s.Apply(action.Reset(input))

	// Mutating the caller's slice after the fact must not reach store
	// state.
	input[0].Type = "heading"
	input[0].Attributes["text"] = "mutated"

	b, ok := s.Block("p1")
	if !ok {
		t.Fatal("expected p1 in store")
	}
	if b.Type != "paragraph" || b.Attributes["text"] != "orig" {
		t.Errorf("store state aliases caller blocks: %+v", b)
	}
}

func TestReplaceIsolatesCallerBlocks(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1")))

	repl := []document.Block{
		{ID: "n1", Type: "paragraph", Attributes: map[string]any{"text": "new"}},
	}
	s.Apply(action.ReplaceBlocks([]string{"p1"}, repl))

	repl[0].Attributes["text"] = "mutated"

	b, ok := s.Block("n1")
	if !ok {
		t.Fatal("expected n1 in store")
	}
	if b.Attributes["text"] != "new" {
		t.Errorf("store state aliases replacement blocks: %+v", b)
	}
}

func TestApplyRemoveNested(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset([]document.Block{
		{ID: "g", Type: "group", Children: paragraphs("c1", "c2")},
		{ID: "p1", Type: "paragraph"},
	}))

	s.Apply(action.RemoveBlocks([]string{"c1", "p1"}, false))

	if s.BlockCount() != 2 {
		t.Fatalf("expected 2 blocks, got %d", s.BlockCount())
	}
	if _, ok := s.Block("c1"); ok {
		t.Error("expected nested c1 removed")
	}
	if _, ok := s.Block("c2"); !ok {
		t.Error("expected c2 to survive")
	}
}

func TestApplyReplaceSplicesAtFirstMatch(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1", "p2", "p3")))

	s.Apply(action.ReplaceBlocks([]string{"p1", "p2"}, paragraphs("n1", "n2")))

	if got := topIDs(s); len(got) != 3 || got[0] != "n1" || got[1] != "n2" || got[2] != "p3" {
		t.Errorf("unexpected blocks after replace: %v", got)
	}
}

func TestApplyReplaceWithEmpty(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1")))
	s.Apply(action.ReplaceBlocks([]string{"p1"}, nil))

	if s.BlockCount() != 0 {
		t.Errorf("expected empty document, got %d blocks", s.BlockCount())
	}
}

func TestApplyInsertDefault(t *testing.T) {
	s := store.New(store.Options{DefaultBlockType: "note"})
	s.Apply(action.InsertDefault())

	blocks := s.State().Blocks
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Type != "note" {
		t.Errorf("expected default type note, got %s", blocks[0].Type)
	}
	if blocks[0].ID == "" {
		t.Error("expected generated ID")
	}
}

func TestApplySelect(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1")))
	s.Apply(action.Select("p1", action.OffsetEnd))

	sel := s.State().Selection
	if sel == nil || sel.BlockID != "p1" || sel.Offset != action.OffsetEnd {
		t.Errorf("unexpected selection: %+v", sel)
	}
	if s.SelectedBlockID() != "p1" {
		t.Errorf("SelectedBlockID = %q", s.SelectedBlockID())
	}
}

func TestRemovalDropsDanglingSelection(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1", "p2")))
	s.Apply(action.Select("p2", 0))
	s.Apply(action.RemoveBlocks([]string{"p2"}, false))

	if s.State().Selection != nil {
		t.Errorf("expected selection cleared, got %+v", s.State().Selection)
	}
}

func TestMultiSelect(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1", "p2", "p3")))
	s.Apply(action.MultiSelect("p1", "p3"))

	if got := s.SelectedBlockCount(); got != 3 {
		t.Errorf("expected 3 selected, got %d", got)
	}

	// Reversed bounds count the same.
	s.Apply(action.MultiSelect("p3", "p1"))
	if got := s.SelectedBlockCount(); got != 3 {
		t.Errorf("expected 3 selected for reversed range, got %d", got)
	}

	s.Apply(action.Select("p1", 0))
	if got := s.SelectedBlockCount(); got != 1 {
		t.Errorf("expected 1 selected after single select, got %d", got)
	}
}

func TestEffectOnlyKindsLeaveStateUntouched(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset(paragraphs("p1", "p2")))
	before := s.State()

	s.Apply(action.MergeBlocks("p1", "p2"))
	s.Apply(action.SynchronizeTemplate())

	after := s.State()
	if len(after.Blocks) != len(before.Blocks) {
		t.Errorf("expected block list untouched, got %v", topIDs(s))
	}
}

func TestPreviousState(t *testing.T) {
	s := newStore()
	if _, ok := s.PreviousState(); ok {
		t.Error("expected no previous state on a fresh store")
	}

	s.Apply(action.Reset(paragraphs("p1", "p2")))
	s.Apply(action.RemoveBlocks([]string{"p2"}, false))

	prev, ok := s.PreviousState()
	if !ok {
		t.Fatal("expected previous state")
	}
	if len(prev.Blocks) != 2 {
		t.Errorf("expected pre-removal snapshot with 2 blocks, got %d", len(prev.Blocks))
	}
	if len(s.State().Blocks) != 1 {
		t.Errorf("expected current state with 1 block, got %d", len(s.State().Blocks))
	}
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	s := newStore()
	s.Apply(action.Reset([]document.Block{
		{ID: "p1", Type: "paragraph", Attributes: map[string]any{"text": "orig"}},
	}))
	s.Apply(action.ReplaceBlocks([]string{"p1"}, []document.Block{
		{ID: "p1", Type: "paragraph", Attributes: map[string]any{"text": "new"}},
	}))

	prev, _ := s.PreviousState()
	if prev.Blocks[0].Attributes["text"] != "orig" {
		t.Errorf("history snapshot mutated: %v", prev.Blocks[0].Attributes)
	}
}

func TestHistoryTrim(t *testing.T) {
	s := store.New(store.Options{HistoryLimit: 3})
	for i := 0; i < 5; i++ {
		s.Apply(action.InsertDefault())
	}

	if got := s.HistoryLen(); got != 3 {
		t.Errorf("expected history trimmed to 3, got %d", got)
	}
	// The latest entry must still be the immediately preceding state.
	prev, _ := s.PreviousState()
	if len(prev.Blocks) != 4 {
		t.Errorf("expected previous state with 4 blocks, got %d", len(prev.Blocks))
	}
}
