package store

import (
	"github.com/dshills/blockstorm/internal/document"
	"github.com/dshills/blockstorm/internal/document/template"
)

// Options configures a Store.
type Options struct {
	// DefaultBlockType is the type used for blocks synthesized by
	// insertDefault actions. Defaults to "paragraph".
	DefaultBlockType string

	// HistoryLimit bounds the number of retained past states.
	// Defaults to 100.
	HistoryLimit int
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		DefaultBlockType: "paragraph",
		HistoryLimit:     100,
	}
}

// Store owns the current document state, the template it is constrained
// by, and the history of past states. State changes only through Apply;
// everything else is a read.
type Store struct {
	state   DocumentState
	history []DocumentState

	tpl  template.Template
	lock template.Lock

	defaultType  string
	historyLimit int
}

// New creates a store with an empty, valid document.
func New(opts Options) *Store {
	if opts.DefaultBlockType == "" {
		opts.DefaultBlockType = "paragraph"
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 100
	}
	return &Store{
		state:        DocumentState{ValidToTemplate: true},
		defaultType:  opts.DefaultBlockType,
		historyLimit: opts.HistoryLimit,
	}
}

// State returns the current document state. The snapshot shares block
// storage with the store; callers must treat it as read-only.
func (s *Store) State() DocumentState {
	return s.state
}

// PreviousState returns the most recent history entry: the state
// immediately before the last applied action. ok is false when no
// action has been applied yet.
func (s *Store) PreviousState() (DocumentState, bool) {
	if len(s.history) == 0 {
		return DocumentState{}, false
	}
	return s.history[len(s.history)-1], true
}

// HistoryLen returns the number of retained past states.
func (s *Store) HistoryLen() int {
	return len(s.history)
}

// SetTemplate installs the template and lock the document is
// reconciled against.
func (s *Store) SetTemplate(tpl template.Template, lock template.Lock) {
	s.tpl = tpl
	s.lock = lock
}

// Template returns the installed template, nil when unconstrained.
func (s *Store) Template() template.Template {
	return s.tpl
}

// TemplateLock returns the installed lock level.
func (s *Store) TemplateLock() template.Lock {
	return s.lock
}

// DefaultBlockType returns the type used for synthesized blocks.
func (s *Store) DefaultBlockType() string {
	return s.defaultType
}

// Block returns a block by ID from anywhere in the tree.
func (s *Store) Block(id string) (document.Block, bool) {
	return document.Find(s.state.Blocks, id)
}

// BlockCount returns the total number of blocks, nested included.
func (s *Store) BlockCount() int {
	return document.Count(s.state.Blocks)
}

// SelectedBlockID returns the single-selection block ID, or "" when no
// single selection is active.
func (s *Store) SelectedBlockID() string {
	if s.state.Selection == nil {
		return ""
	}
	return s.state.Selection.BlockID
}

// SelectedBlockCount returns the number of selected top-level blocks:
// the span of the multi-selection when one is active, otherwise 1 or 0
// depending on the single selection.
func (s *Store) SelectedBlockCount() int {
	ms := s.state.MultiSelection
	if ms == nil {
		if s.state.Selection != nil {
			return 1
		}
		return 0
	}
	start := document.TopLevelIndex(s.state.Blocks, ms.Start)
	end := document.TopLevelIndex(s.state.Blocks, ms.End)
	if start < 0 || end < 0 {
		return 0
	}
	if start > end {
		start, end = end, start
	}
	return end - start + 1
}

// pushHistory snapshots the current state before an action applies,
// trimming the oldest entries past the limit.
func (s *Store) pushHistory() {
	s.history = append(s.history, s.state.Clone())
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = append(s.history[:0:0], s.history[over:]...)
	}
}
