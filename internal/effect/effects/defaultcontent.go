package effects

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/effect"
)

// EnsureDefaultContent keeps the document from ending up empty: when a
// removal or replacement leaves zero blocks, it derives an
// insertDefault action appending one empty block of the configured
// default type.
func EnsureDefaultContent() effect.Handler {
	return func(a action.Action, d *effect.Dispatcher) (action.Action, bool) {
		if d.Store().BlockCount() > 0 {
			return action.Action{}, false
		}
		return action.InsertDefault(), true
	}
}
