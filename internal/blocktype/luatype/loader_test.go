package luatype_test

import (
	"errors"
	"testing"

	"github.com/dshills/blockstorm/internal/blocktype/luatype"
	"github.com/dshills/blockstorm/internal/document"
)

const calloutScript = `
return {
    name = "callout",
    merge = function(a, b)
        return { text = (a.text or "") .. (b.text or ""), tone = a.tone }
    end,
    transform = function(block, target)
        if target ~= "paragraph" then return {} end
        return { { type = "paragraph", attributes = { text = block.attributes.text } } }
    end,
}
`

func TestLoadString(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	bt, err := ld.LoadString(calloutScript)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bt.Name != "callout" {
		t.Errorf("expected name callout, got %q", bt.Name)
	}
	if !bt.Mergeable() {
		t.Fatal("expected mergeable type")
	}
	if bt.Transform == nil {
		t.Fatal("expected transform function")
	}
}

func TestLuaMerge(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	bt, err := ld.LoadString(calloutScript)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	merged := bt.Merge(
		map[string]any{"text": "Hello ", "tone": "info"},
		map[string]any{"text": "World"},
	)
	if merged["text"] != "Hello World" {
		t.Errorf("expected concatenated text, got %v", merged["text"])
	}
	if merged["tone"] != "info" {
		t.Errorf("expected receiver tone kept, got %v", merged["tone"])
	}
}

func TestLuaTransform(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	bt, err := ld.LoadString(calloutScript)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	src := document.NewBlock("callout", map[string]any{"text": "note"})

	out := bt.Transform(src, "paragraph")
	if len(out) != 1 {
		t.Fatalf("expected 1 block, got %d", len(out))
	}
	if out[0].Type != "paragraph" || out[0].Attributes["text"] != "note" {
		t.Errorf("unexpected transform result: %+v", out[0])
	}
	if out[0].ID == "" {
		t.Error("expected generated ID for transformed block")
	}

	if out := bt.Transform(src, "heading"); len(out) != 0 {
		t.Errorf("expected empty result for unsupported target, got %+v", out)
	}
}

func TestLoadStringNotATable(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	_, err := ld.LoadString(`return 42`)
	if !errors.Is(err, luatype.ErrNotTable) {
		t.Errorf("expected ErrNotTable, got %v", err)
	}
}

func TestLoadStringMissingName(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	_, err := ld.LoadString(`return { merge = function(a, b) return a end }`)
	if !errors.Is(err, luatype.ErrNoName) {
		t.Errorf("expected ErrNoName, got %v", err)
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	if _, err := ld.LoadString(`return {`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestLuaMergeScriptErrorKeepsReceiver(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	bt, err := ld.LoadString(`
return {
    name = "broken",
    merge = function(a, b) error("boom") end,
}
`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	merged := bt.Merge(map[string]any{"text": "safe"}, map[string]any{"text": "x"})
	if merged["text"] != "safe" {
		t.Errorf("expected receiver attributes preserved on script error, got %v", merged)
	}
}

func TestLoadFileMissing(t *testing.T) {
	ld := luatype.NewLoader()
	defer ld.Close()

	if _, err := ld.LoadFile("does-not-exist.lua"); err == nil {
		t.Error("expected error for missing file")
	}
}
