package document

// Find locates a block by ID anywhere in the tree.
func Find(blocks []Block, id string) (Block, bool) {
	for _, b := range blocks {
		if b.ID == id {
			return b, true
		}
		if found, ok := Find(b.Children, id); ok {
			return found, true
		}
	}
	return Block{}, false
}

// Contains reports whether a block with the given ID exists in the tree.
func Contains(blocks []Block, id string) bool {
	_, ok := Find(blocks, id)
	return ok
}

// Count returns the total number of blocks in the tree, nested blocks
// included.
func Count(blocks []Block) int {
	n := len(blocks)
	for _, b := range blocks {
		n += Count(b.Children)
	}
	return n
}

// Parent returns the ID of the block containing id. The empty string
// with ok=true means id sits at the top level, directly under the
// document root.
func Parent(blocks []Block, id string) (string, bool) {
	return parentIn(blocks, "", id)
}

func parentIn(blocks []Block, parentID, id string) (string, bool) {
	for _, b := range blocks {
		if b.ID == id {
			return parentID, true
		}
		if p, ok := parentIn(b.Children, b.ID, id); ok {
			return p, true
		}
	}
	return "", false
}

// PrecedingSibling returns the ID of the block immediately before id
// among its siblings. ok is false when id is first among its siblings
// or absent from the tree.
func PrecedingSibling(blocks []Block, id string) (string, bool) {
	for i, b := range blocks {
		if b.ID == id {
			if i == 0 {
				return "", false
			}
			return blocks[i-1].ID, true
		}
		if s, ok := PrecedingSibling(b.Children, id); ok {
			return s, true
		}
	}
	return "", false
}

// TopLevelIndex returns the position of id among the top-level blocks,
// or -1 if id is not a top-level block.
func TopLevelIndex(blocks []Block, id string) int {
	for i, b := range blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
