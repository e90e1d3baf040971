// Package effects implements the derived-action handlers registered
// against the document store: template validity, selection continuity,
// the non-empty-document guarantee, block merging, template
// synchronization, and selection announcements.
package effects

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document/template"
	"github.com/dshills/blockstorm/internal/effect"
)

// Validity recomputes template conformance after a full document
// reset. It emits a setValidity action only when the computed value
// differs from the cached flag, so an unchanged document derives
// nothing.
func Validity() effect.Handler {
	return func(a action.Action, d *effect.Dispatcher) (action.Action, bool) {
		st := d.Store()
		valid := template.Conforms(st.State().Blocks, st.Template(), st.TemplateLock())
		if valid == st.State().ValidToTemplate {
			return action.Action{}, false
		}
		return action.SetValidity(valid), true
	}
}
