package template

import "github.com/dshills/blockstorm/internal/document"

// Synchronize rebuilds a block list to match the template. A cursor
// advances over the existing blocks: when the next unconsumed block's
// type matches the template entry it is reused (and consumed),
// otherwise a fresh block of the template's type is created with the
// template's attributes and the cursor stays put, leaving the block
// available for a later entry. Children are synchronized the same way.
// Unconsumed trailing blocks are dropped. A nil template returns the
// input unchanged.
func Synchronize(blocks []document.Block, tpl Template) []document.Block {
	if tpl == nil {
		return blocks
	}
	out := make([]document.Block, 0, len(tpl))
	cursor := 0
	for _, e := range tpl {
		if cursor < len(blocks) && blocks[cursor].Type == e.Type {
			b := blocks[cursor].Clone()
			b.Children = Synchronize(b.Children, e.Children)
			out = append(out, b)
			cursor++
			continue
		}
		out = append(out, fresh(e))
	}
	return out
}

func fresh(e Entry) document.Block {
	return document.NewBlock(e.Type, document.CloneAttributes(e.Attributes), Synchronize(nil, e.Children)...)
}
