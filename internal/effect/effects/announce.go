package effects

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/announce"
	"github.com/dshills/blockstorm/internal/effect"
)

// AnnounceSelection speaks the size of a multi-selection through the
// configured announcement sink. Fire-and-forget; never derives an
// action.
func AnnounceSelection() effect.Handler {
	return func(a action.Action, d *effect.Dispatcher) (action.Action, bool) {
		count := d.Store().SelectedBlockCount()
		if count > 0 {
			d.Announcer().Announce(announce.BlocksSelected(count))
		}
		return action.Action{}, false
	}
}
