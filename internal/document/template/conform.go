package template

import "github.com/dshills/blockstorm/internal/document"

// Conforms reports whether the block list is valid against the
// template under the given lock. Without a template, or with any lock
// weaker than LockAll, every document is valid: an unlocked template is
// a default, not a constraint.
func Conforms(blocks []document.Block, tpl Template, lock Lock) bool {
	if tpl == nil || lock != LockAll {
		return true
	}
	return matches(blocks, tpl)
}

// matches checks structural conformance: same entry count, equal type
// names position by position, recursively through children. Attribute
// values are not compared.
func matches(blocks []document.Block, entries []Entry) bool {
	if len(blocks) != len(entries) {
		return false
	}
	for i, e := range entries {
		if blocks[i].Type != e.Type {
			return false
		}
		if !matches(blocks[i].Children, e.Children) {
			return false
		}
	}
	return true
}
