package effects

import "errors"

// Effect errors. These are reported through the dispatcher's error
// handler; a failing effect never mutates document state.
var (
	// ErrBlockNotFound indicates an effect referenced a block ID that
	// does not exist in the current document.
	ErrBlockNotFound = errors.New("effects: block not found")

	// ErrSameBlock indicates a merge named the same block twice.
	ErrSameBlock = errors.New("effects: cannot merge a block with itself")

	// ErrBadMergePayload indicates a merge action without exactly two
	// block IDs.
	ErrBadMergePayload = errors.New("effects: merge requires exactly two block ids")

	// ErrUnknownType indicates a block's type has no registered
	// descriptor.
	ErrUnknownType = errors.New("effects: unknown block type")
)
