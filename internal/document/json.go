package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// DecodeJSON reads a block sequence from JSON. Blocks missing an ID are
// assigned a fresh one so the result is always addressable.
func DecodeJSON(r io.Reader) ([]Block, error) {
	var blocks []Block
	dec := json.NewDecoder(r)
	if err := dec.Decode(&blocks); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	assignIDs(blocks)
	return blocks, nil
}

// DecodeFile reads a block sequence from a JSON file.
func DecodeFile(path string) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeJSON(f)
}

// EncodeJSON writes a block sequence as indented JSON.
func EncodeJSON(w io.Writer, blocks []Block) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(blocks); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	return nil
}

func assignIDs(blocks []Block) {
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.New().String()
		}
		assignIDs(blocks[i].Children)
	}
}
