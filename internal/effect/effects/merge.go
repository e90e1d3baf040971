package effects

import (
	"fmt"

	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document"
	"github.com/dshills/blockstorm/internal/effect"
)

// Merge combines block B into block A. Mergeability is decided by the
// receiving type alone: if A's type cannot absorb, the caret simply
// moves onto A and the structure is untouched. When B's type differs
// from A's, B is first transformed into A's type; an empty transform
// result means the types are incompatible and nothing happens.
//
// On success the effect dispatches two actions itself: a selection
// placing the caret at the seam (end of A's original content), then a
// replacement substituting [A, B] with the merged block followed by any
// transform candidates beyond the first.
func Merge() effect.Handler {
	return func(a action.Action, d *effect.Dispatcher) (action.Action, bool) {
		if len(a.IDs) != 2 {
			d.Report(fmt.Errorf("%w: got %d", ErrBadMergePayload, len(a.IDs)))
			return action.Action{}, false
		}
		idA, idB := a.IDs[0], a.IDs[1]
		if idA == idB {
			d.Report(fmt.Errorf("%w: %s", ErrSameBlock, idA))
			return action.Action{}, false
		}

		st := d.Store()
		blockA, ok := st.Block(idA)
		if !ok {
			d.Report(fmt.Errorf("%w: merge receiver %s", ErrBlockNotFound, idA))
			return action.Action{}, false
		}
		typeA, ok := d.Types().Get(blockA.Type)
		if !ok {
			d.Report(fmt.Errorf("%w: %s", ErrUnknownType, blockA.Type))
			return action.Action{}, false
		}
		if !typeA.Mergeable() {
			return action.Select(idA, 0), true
		}

		blockB, ok := st.Block(idB)
		if !ok {
			d.Report(fmt.Errorf("%w: merge source %s", ErrBlockNotFound, idB))
			return action.Action{}, false
		}

		candidates := []document.Block{blockB}
		if blockB.Type != blockA.Type {
			candidates = d.Types().Transform(blockB, blockA.Type)
		}
		if len(candidates) == 0 {
			// Structurally incompatible types: defined as a no-op.
			return action.Action{}, false
		}

		merged := blockA.Clone()
		merged.Attributes = typeA.Merge(blockA.Attributes, candidates[0].Attributes)

		// Caret first, so it lands at the boundary of A's original
		// content before the replacement commits.
		d.Dispatch(action.Select(idA, action.OffsetEnd))

		replacement := append([]document.Block{merged}, candidates[1:]...)
		d.Dispatch(action.ReplaceBlocks([]string{idA, idB}, replacement))
		return action.Action{}, false
	}
}
