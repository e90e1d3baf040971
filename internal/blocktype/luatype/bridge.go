package luatype

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/blockstorm/internal/document"
)

// toLuaValue converts a Go value to a Lua value.
func toLuaValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case map[string]any:
		return mapToTable(L, val)
	case []any:
		t := L.NewTable()
		for _, e := range val {
			t.Append(toLuaValue(L, e))
		}
		return t
	default:
		return lua.LNil
	}
}

// mapToTable converts an attribute map to a Lua table.
func mapToTable(L *lua.LState, m map[string]any) *lua.LTable {
	t := L.NewTable()
	for k, v := range m {
		t.RawSetString(k, toLuaValue(L, v))
	}
	return t
}

// blockToTable converts a block to a Lua table with id, type,
// attributes and blocks fields.
func blockToTable(L *lua.LState, b document.Block) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LString(b.ID))
	t.RawSetString("type", lua.LString(b.Type))
	t.RawSetString("attributes", mapToTable(L, b.Attributes))
	children := L.NewTable()
	for _, c := range b.Children {
		children.Append(blockToTable(L, c))
	}
	t.RawSetString("blocks", children)
	return t
}

// toGoValue converts a Lua value to a Go value. Numbers with no
// fractional part become int64. Functions and userdata convert to nil.
func toGoValue(lv lua.LValue) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		return tableToGo(v)
	default:
		return nil
	}
}

// tableToGo converts a Lua table to a []any when it is a sequence
// (consecutive integer keys from 1), otherwise to a map[string]any.
func tableToGo(t *lua.LTable) any {
	if n := t.Len(); n > 0 {
		out := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, toGoValue(t.RawGetInt(i)))
		}
		return out
	}
	out := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		if key, ok := k.(lua.LString); ok {
			out[string(key)] = toGoValue(v)
		}
	})
	return out
}

// tableToBlocks converts a Lua sequence of block tables into blocks.
// Entries that are not tables are skipped; blocks without an id get a
// fresh one.
func tableToBlocks(t *lua.LTable) []document.Block {
	var out []document.Block
	for i := 1; i <= t.Len(); i++ {
		entry, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok {
			continue
		}
		out = append(out, tableToBlock(entry))
	}
	return out
}

func tableToBlock(t *lua.LTable) document.Block {
	var attrs map[string]any
	if at, ok := t.RawGetString("attributes").(*lua.LTable); ok {
		if m, ok := tableToGo(at).(map[string]any); ok {
			attrs = m
		}
	}
	var children []document.Block
	if ct, ok := t.RawGetString("blocks").(*lua.LTable); ok {
		children = tableToBlocks(ct)
	}

	typeName := ""
	if s, ok := t.RawGetString("type").(lua.LString); ok {
		typeName = string(s)
	}

	if id, ok := t.RawGetString("id").(lua.LString); ok && id != "" {
		return document.Block{ID: string(id), Type: typeName, Attributes: attrs, Children: children}
	}
	return document.NewBlock(typeName, attrs, children...)
}
