package effects

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document"
	"github.com/dshills/blockstorm/internal/effect"
)

// SelectionContinuity moves focus to a sensible neighbor after a
// removal: the sibling before the first removed block, or its parent
// container when the removed block led its siblings.
//
// The removal has already been applied by the time this runs, so the
// sibling and parent lookups read the pre-removal snapshot from
// history. Register this handler before any other removeBlocks handler
// that dispatches, or the snapshot it needs will no longer be the most
// recent history entry.
func SelectionContinuity() effect.Handler {
	return func(a action.Action, d *effect.Dispatcher) (action.Action, bool) {
		if !a.SelectPrevious || len(a.IDs) == 0 {
			return action.Action{}, false
		}

		prev, ok := d.Store().PreviousState()
		if !ok {
			return action.Action{}, false
		}

		first := a.IDs[0]
		parent, found := document.Parent(prev.Blocks, first)
		if !found {
			// Removed ID was not in the document; nothing to restore.
			return action.Action{}, false
		}

		target := parent
		if sibling, ok := document.PrecedingSibling(prev.Blocks, first); ok {
			target = sibling
		}

		// Emit only when focus actually moves. An empty target selects
		// the root container, which is distinct from having no
		// selection at all.
		if sel := d.Store().State().Selection; sel != nil && sel.BlockID == target {
			return action.Action{}, false
		}
		return action.Select(target, action.OffsetEnd), true
	}
}
