// Package template describes the expected shape of a document and
// reconciles a live block list against it.
package template

import "fmt"

// Lock controls how strictly a template constrains the document.
type Lock uint8

const (
	// LockNone treats the template as an initial default only.
	LockNone Lock = iota
	// LockInsert prevents inserting or removing blocks but allows
	// moving them; conformance is not enforced.
	LockInsert
	// LockAll enforces strict structural conformance.
	LockAll
)

// String returns the lock name.
func (l Lock) String() string {
	switch l {
	case LockNone:
		return "none"
	case LockInsert:
		return "insert"
	case LockAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseLock converts a lock name to a Lock. The empty string parses as
// LockNone.
func ParseLock(s string) (Lock, error) {
	switch s {
	case "", "none":
		return LockNone, nil
	case "insert":
		return LockInsert, nil
	case "all":
		return LockAll, nil
	default:
		return LockNone, fmt.Errorf("template: unknown lock %q", s)
	}
}

// Entry is one expected block in a template.
type Entry struct {
	Type       string         `toml:"type"`
	Attributes map[string]any `toml:"attributes"`
	Children   []Entry        `toml:"blocks"`
}

// Template is an ordered sequence of expected blocks. A nil Template
// means the document is unconstrained.
type Template []Entry
