// Package luatype loads block types defined in Lua scripts.
//
// A script returns a table describing one block type:
//
//	return {
//	    name = "callout",
//	    merge = function(a, b)
//	        return { text = (a.text or "") .. (b.text or "") }
//	    end,
//	    transform = function(block, target)
//	        if target ~= "paragraph" then return {} end
//	        return { { type = "paragraph", attributes = block.attributes } }
//	    end,
//	}
//
// Omitting the merge key produces a non-mergeable type, omitting
// transform a type that cannot be converted.
package luatype

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/blockstorm/internal/blocktype"
	"github.com/dshills/blockstorm/internal/document"
)

// Loader errors.
var (
	// ErrNotTable indicates the script did not return a table.
	ErrNotTable = errors.New("luatype: script must return a table")

	// ErrNoName indicates the returned table has no string "name" field.
	ErrNoName = errors.New("luatype: block type table missing name")
)

// Loader evaluates block-type scripts on a single Lua state.
//
// gopher-lua's LState is not goroutine-safe; the Loader serializes all
// access through a mutex, including calls made later through the
// merge/transform functions of loaded types. Close the Loader only
// after the types it produced are no longer in use.
type Loader struct {
	mu sync.Mutex
	L  *lua.LState
}

// NewLoader creates a Loader with a fresh Lua state.
func NewLoader() *Loader {
	return &Loader{L: lua.NewState()}
}

// Close releases the underlying Lua state.
func (ld *Loader) Close() {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.L.Close()
}

// LoadFile evaluates a script file and returns the block type it
// defines.
func (ld *Loader) LoadFile(path string) (blocktype.BlockType, error) {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	if err := ld.L.DoFile(path); err != nil {
		return blocktype.BlockType{}, fmt.Errorf("luatype: run %s: %w", path, err)
	}
	return ld.fromReturn()
}

// LoadString evaluates script source and returns the block type it
// defines.
func (ld *Loader) LoadString(src string) (blocktype.BlockType, error) {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	if err := ld.L.DoString(src); err != nil {
		return blocktype.BlockType{}, fmt.Errorf("luatype: run script: %w", err)
	}
	return ld.fromReturn()
}

// fromReturn builds a BlockType from the table left on the stack.
// Caller holds the mutex.
func (ld *Loader) fromReturn() (blocktype.BlockType, error) {
	ret := ld.L.Get(-1)
	ld.L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return blocktype.BlockType{}, ErrNotTable
	}

	name, ok := tbl.RawGetString("name").(lua.LString)
	if !ok || name == "" {
		return blocktype.BlockType{}, ErrNoName
	}

	t := blocktype.BlockType{Name: string(name)}
	if fn, ok := tbl.RawGetString("merge").(*lua.LFunction); ok {
		t.Merge = ld.mergeFunc(fn)
	}
	if fn, ok := tbl.RawGetString("transform").(*lua.LFunction); ok {
		t.Transform = ld.transformFunc(fn)
	}
	return t, nil
}

// mergeFunc wraps a Lua merge function. A script error keeps the
// receiver's attributes unchanged rather than corrupting the document.
func (ld *Loader) mergeFunc(fn *lua.LFunction) blocktype.MergeFunc {
	return func(a, b map[string]any) map[string]any {
		ld.mu.Lock()
		defer ld.mu.Unlock()

		err := ld.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
			mapToTable(ld.L, a), mapToTable(ld.L, b))
		if err != nil {
			return document.CloneAttributes(a)
		}
		ret := ld.L.Get(-1)
		ld.L.Pop(1)

		merged, ok := toGoValue(ret).(map[string]any)
		if !ok {
			return document.CloneAttributes(a)
		}
		return merged
	}
}

// transformFunc wraps a Lua transform function. Script errors and
// non-table results read as "no conversion possible".
func (ld *Loader) transformFunc(fn *lua.LFunction) blocktype.TransformFunc {
	return func(b document.Block, target string) []document.Block {
		ld.mu.Lock()
		defer ld.mu.Unlock()

		err := ld.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
			blockToTable(ld.L, b), lua.LString(target))
		if err != nil {
			return nil
		}
		ret := ld.L.Get(-1)
		ld.L.Pop(1)

		tbl, ok := ret.(*lua.LTable)
		if !ok {
			return nil
		}
		return tableToBlocks(tbl)
	}
}
