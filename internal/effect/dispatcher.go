package effect

import (
	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/announce"
	"github.com/dshills/blockstorm/internal/blocktype"
	"github.com/dshills/blockstorm/internal/store"
)

// Dispatcher applies actions to the store and runs the registered
// effects for each. It is the store handle handlers receive: they read
// state through it and feed derived actions back into Dispatch.
type Dispatcher struct {
	store    *store.Store
	registry *Registry

	types     *blocktype.Registry
	announcer announce.Announcer
	onError   func(error)
}

// New creates a dispatcher over a store and a handler registry.
func New(st *store.Store, reg *Registry) *Dispatcher {
	return &Dispatcher{
		store:     st,
		registry:  reg,
		types:     blocktype.NewRegistry(),
		announcer: announce.Discard{},
	}
}

// SetTypes installs the content-type registry consulted by effects.
func (d *Dispatcher) SetTypes(types *blocktype.Registry) {
	if types != nil {
		d.types = types
	}
}

// SetAnnouncer installs the announcement sink.
func (d *Dispatcher) SetAnnouncer(a announce.Announcer) {
	if a != nil {
		d.announcer = a
	}
}

// SetErrorHandler installs a sink for effect diagnostics. Effects that
// fail cleanly (missing block IDs, malformed payloads) report here
// instead of touching state.
func (d *Dispatcher) SetErrorHandler(fn func(error)) {
	d.onError = fn
}

// Store returns the underlying store.
func (d *Dispatcher) Store() *store.Store {
	return d.store
}

// State returns the current document state.
func (d *Dispatcher) State() store.DocumentState {
	return d.store.State()
}

// Types returns the content-type registry.
func (d *Dispatcher) Types() *blocktype.Registry {
	return d.types
}

// Announcer returns the announcement sink.
func (d *Dispatcher) Announcer() announce.Announcer {
	return d.announcer
}

// Dispatch commits the action and runs its effects. Each handler for
// the action's kind runs exactly once, in registration order; any
// derived action recursively dispatches before the next handler runs.
func (d *Dispatcher) Dispatch(a action.Action) {
	d.store.Apply(a)
	for _, h := range d.registry.Handlers(a.Kind) {
		if next, ok := h(a, d); ok {
			d.Dispatch(next)
		}
	}
}

// Report surfaces an effect diagnostic without interrupting dispatch.
func (d *Dispatcher) Report(err error) {
	if d.onError != nil && err != nil {
		d.onError(err)
	}
}
