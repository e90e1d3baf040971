package template

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// file is the on-disk TOML shape of a template.
type file struct {
	Lock   string  `toml:"lock"`
	Blocks []Entry `toml:"blocks"`
}

// Load reads a template and its lock level from a TOML file.
func Load(path string) (Template, Lock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LockNone, fmt.Errorf("template: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a template and its lock level from TOML data.
func Parse(data []byte) (Template, Lock, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, LockNone, fmt.Errorf("template: parse: %w", err)
	}
	lock, err := ParseLock(f.Lock)
	if err != nil {
		return nil, LockNone, err
	}
	return Template(f.Blocks), lock, nil
}
