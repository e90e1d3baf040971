package blocktype_test

import (
	"testing"

	"github.com/dshills/blockstorm/internal/blocktype"
	"github.com/dshills/blockstorm/internal/document"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := blocktype.NewRegistry()
	r.Register(blocktype.BlockType{Name: "custom"})

	if _, ok := r.Get("custom"); !ok {
		t.Error("expected custom type to be registered")
	}
	if r.Has("missing") {
		t.Error("expected missing type to be absent")
	}
}

func TestRegistryReplaceKeepsLatest(t *testing.T) {
	r := blocktype.NewRegistry()
	r.Register(blocktype.BlockType{Name: "custom"})
	r.Register(blocktype.BlockType{Name: "custom", Merge: func(a, b map[string]any) map[string]any { return a }})

	got, _ := r.Get("custom")
	if !got.Mergeable() {
		t.Error("expected later registration to win")
	}
}

func TestParagraphMergeConcatenatesText(t *testing.T) {
	p := blocktype.Paragraph()

	merged := p.Merge(
		map[string]any{"text": "Hello "},
		map[string]any{"text": "World"},
	)
	if merged["text"] != "Hello World" {
		t.Errorf("expected concatenated text, got %v", merged["text"])
	}
}

func TestMergeKeepsReceiverAttributes(t *testing.T) {
	p := blocktype.Paragraph()

	merged := p.Merge(
		map[string]any{"text": "a", "align": "center"},
		map[string]any{"text": "b", "align": "left"},
	)
	if merged["align"] != "center" {
		t.Errorf("expected receiver attributes to win, got %v", merged["align"])
	}
}

func TestQuoteTransformSplitsLines(t *testing.T) {
	r := blocktype.DefaultRegistry()
	quote := document.NewBlock(blocktype.TypeQuote, map[string]any{"text": "one\ntwo"})

	out := r.Transform(quote, blocktype.TypeParagraph)
	if len(out) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(out))
	}
	if out[0].Attributes["text"] != "one" || out[1].Attributes["text"] != "two" {
		t.Errorf("unexpected transform output: %+v", out)
	}
}

func TestTransformIncompatibleTarget(t *testing.T) {
	r := blocktype.DefaultRegistry()
	quote := document.NewBlock(blocktype.TypeQuote, map[string]any{"text": "q"})

	if out := r.Transform(quote, blocktype.TypeHeading); len(out) != 0 {
		t.Errorf("expected no candidates for quote->heading, got %+v", out)
	}
}

func TestTransformUnknownType(t *testing.T) {
	r := blocktype.DefaultRegistry()
	b := document.NewBlock("mystery", nil)

	if out := r.Transform(b, blocktype.TypeParagraph); len(out) != 0 {
		t.Errorf("expected no candidates for unknown type, got %+v", out)
	}
}

func TestSeparatorIsInert(t *testing.T) {
	sep := blocktype.Separator()
	if sep.Mergeable() {
		t.Error("expected separator to be non-mergeable")
	}
}
