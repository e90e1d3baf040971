package effects

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/effect"
)

// RegisterAll wires every effect into the registry in its canonical
// order. SelectionContinuity must precede EnsureDefaultContent for
// removals: it reads the pre-removal snapshot from history, and a
// derived insertDefault dispatched first would bury that snapshot.
func RegisterAll(reg *effect.Registry) {
	reg.Register(action.KindReset, Validity())
	reg.Register(action.KindRemoveBlocks, SelectionContinuity())
	reg.Register(action.KindRemoveBlocks, EnsureDefaultContent())
	reg.Register(action.KindReplaceBlocks, EnsureDefaultContent())
	reg.Register(action.KindMergeBlocks, Merge())
	reg.Register(action.KindSynchronizeTemplate, SynchronizeTemplate())
	reg.Register(action.KindMultiSelect, AnnounceSelection())
}
