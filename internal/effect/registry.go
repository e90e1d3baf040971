package effect

import (
	"github.com/dshills/blockstorm/internal/action"
)

// Handler computes a derived action from a committed one. The bool
// reports whether an action was produced; handlers that need several
// derived actions dispatch through d directly and return false.
type Handler func(a action.Action, d *Dispatcher) (action.Action, bool)

// Registry maps an action kind to its ordered handler list.
type Registry struct {
	handlers map[action.Kind][]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[action.Kind][]Handler)}
}

// Register appends a handler to the kind's list. Handlers run in
// registration order.
func (r *Registry) Register(kind action.Kind, h Handler) {
	r.handlers[kind] = append(r.handlers[kind], h)
}

// Handlers returns the handler list for a kind. An empty list is valid:
// dispatching such a kind commits the action and derives nothing.
func (r *Registry) Handlers(kind action.Kind) []Handler {
	return r.handlers[kind]
}

// Has reports whether any handler is registered for the kind.
func (r *Registry) Has(kind action.Kind) bool {
	return len(r.handlers[kind]) > 0
}

// Count returns the number of kinds with at least one handler.
func (r *Registry) Count() int {
	return len(r.handlers)
}
