// Package effect dispatches actions and runs derived-action handlers.
//
// Dispatch is a two-phase pipeline. An action is first committed to the
// store through its reducer (which also appends the pre-action state to
// history), then every handler registered for the action's kind runs in
// registration order. A handler either returns no action, returns one
// derived action, or dispatches directly through the store handle it is
// given. Derived actions re-enter the same pipeline, so dispatch nests
// depth-first: a nested chain runs to completion before the remaining
// handlers of the outer action resume.
//
// Handlers never mutate state themselves; they read the store and emit
// actions. Keeping derived-effect chains finite is the registrant's
// responsibility — the registry does not detect cycles.
//
// Everything is single-threaded and synchronous. A Dispatcher must not
// be used from more than one goroutine at a time.
package effect
