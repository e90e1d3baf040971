package effects

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document/template"
	"github.com/dshills/blockstorm/internal/effect"
)

// SynchronizeTemplate reconciles the whole block list against the
// installed template and re-enters the pipeline as a full reset, which
// in turn re-derives the validity flag. Without a template the effect
// derives nothing.
func SynchronizeTemplate() effect.Handler {
	return func(a action.Action, d *effect.Dispatcher) (action.Action, bool) {
		st := d.Store()
		tpl := st.Template()
		if tpl == nil {
			return action.Action{}, false
		}
		return action.Reset(template.Synchronize(st.State().Blocks, tpl)), true
	}
}
