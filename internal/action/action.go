// Package action defines the actions understood by the document store.
//
// Kind is a closed enumeration: every action the store or an effect can
// produce is listed here, so a switch over Kind can be checked for
// exhaustiveness.
package action

import "github.com/dshills/blockstorm/internal/document"

// Kind identifies the intent of an action.
type Kind uint8

const (
	// KindReset replaces the entire block list.
	KindReset Kind = iota
	// KindRemoveBlocks removes blocks by ID.
	KindRemoveBlocks
	// KindReplaceBlocks substitutes a set of blocks with a new sequence.
	KindReplaceBlocks
	// KindInsertDefault appends one empty block of the default type.
	KindInsertDefault
	// KindMergeBlocks combines two adjacent blocks into one.
	KindMergeBlocks
	// KindSelect places the caret in a single block.
	KindSelect
	// KindMultiSelect selects a contiguous range of top-level blocks.
	KindMultiSelect
	// KindSetValidity updates the cached template-conformance flag.
	KindSetValidity
	// KindSynchronizeTemplate rebuilds the block list against the template.
	KindSynchronizeTemplate
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindReset:
		return "reset"
	case KindRemoveBlocks:
		return "removeBlocks"
	case KindReplaceBlocks:
		return "replaceBlocks"
	case KindInsertDefault:
		return "insertDefault"
	case KindMergeBlocks:
		return "mergeBlocks"
	case KindSelect:
		return "select"
	case KindMultiSelect:
		return "multiSelect"
	case KindSetValidity:
		return "setValidity"
	case KindSynchronizeTemplate:
		return "synchronizeTemplate"
	default:
		return "unknown"
	}
}

// OffsetEnd is the sentinel caret offset meaning "end of content".
const OffsetEnd = -1

// Action is a tagged intent. Kind selects which payload fields are
// meaningful; the rest are zero.
type Action struct {
	// Kind identifies the intent.
	Kind Kind

	// Blocks is the new or replacement block sequence
	// (Reset, ReplaceBlocks).
	Blocks []document.Block

	// IDs identifies target blocks. For RemoveBlocks and ReplaceBlocks
	// it lists the blocks being removed; for MergeBlocks it holds
	// exactly two IDs, receiver first.
	IDs []string

	// SelectPrevious asks the selection-continuity effect to move focus
	// after a removal (RemoveBlocks).
	SelectPrevious bool

	// BlockID and Offset place the caret (Select). An empty BlockID
	// selects the document root. Offset may be OffsetEnd.
	BlockID string
	Offset  int

	// Start and End bound a multi-selection of top-level blocks
	// (MultiSelect).
	Start string
	End   string

	// Valid is the new conformance flag (SetValidity).
	Valid bool
}

// Reset creates an action replacing the whole block list.
func Reset(blocks []document.Block) Action {
	return Action{Kind: KindReset, Blocks: blocks}
}

// RemoveBlocks creates an action removing the identified blocks.
func RemoveBlocks(ids []string, selectPrevious bool) Action {
	return Action{Kind: KindRemoveBlocks, IDs: ids, SelectPrevious: selectPrevious}
}

// ReplaceBlocks creates an action substituting the identified blocks
// with a new sequence.
func ReplaceBlocks(ids []string, blocks []document.Block) Action {
	return Action{Kind: KindReplaceBlocks, IDs: ids, Blocks: blocks}
}

// InsertDefault creates an action appending one empty default block.
func InsertDefault() Action {
	return Action{Kind: KindInsertDefault}
}

// MergeBlocks creates an action merging block b into block a.
func MergeBlocks(a, b string) Action {
	return Action{Kind: KindMergeBlocks, IDs: []string{a, b}}
}

// Select creates an action placing the caret in a block.
func Select(blockID string, offset int) Action {
	return Action{Kind: KindSelect, BlockID: blockID, Offset: offset}
}

// MultiSelect creates an action selecting the top-level range from
// start to end inclusive.
func MultiSelect(start, end string) Action {
	return Action{Kind: KindMultiSelect, Start: start, End: end}
}

// SetValidity creates an action caching the template-conformance flag.
func SetValidity(valid bool) Action {
	return Action{Kind: KindSetValidity, Valid: valid}
}

// SynchronizeTemplate creates an action that rebuilds the block list
// against the configured template.
func SynchronizeTemplate() Action {
	return Action{Kind: KindSynchronizeTemplate}
}
