package blocktype

import (
	"strings"

	"github.com/dshills/blockstorm/internal/document"
)

// Built-in type names.
const (
	TypeParagraph = "paragraph"
	TypeHeading   = "heading"
	TypeQuote     = "quote"
	TypeSeparator = "separator"
)

// DefaultRegistry returns a registry populated with the built-in types.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Paragraph())
	r.Register(Heading())
	r.Register(Quote())
	r.Register(Separator())
	return r
}

// Paragraph is the default content type. Merging concatenates text;
// transforming produces a heading with the same text.
func Paragraph() BlockType {
	return BlockType{
		Name:  TypeParagraph,
		Merge: mergeText,
		Transform: func(b document.Block, target string) []document.Block {
			if target != TypeHeading {
				return nil
			}
			return []document.Block{document.NewBlock(TypeHeading, map[string]any{
				"text":  textOf(b.Attributes),
				"level": 2,
			})}
		},
	}
}

// Heading merges by concatenating text and transforms to a paragraph,
// dropping the level.
func Heading() BlockType {
	return BlockType{
		Name:  TypeHeading,
		Merge: mergeText,
		Transform: func(b document.Block, target string) []document.Block {
			if target != TypeParagraph {
				return nil
			}
			return []document.Block{document.NewBlock(TypeParagraph, map[string]any{
				"text": textOf(b.Attributes),
			})}
		},
	}
}

// Quote cannot absorb neighbors. Transforming to paragraphs yields one
// paragraph per line of the quote's text.
func Quote() BlockType {
	return BlockType{
		Name: TypeQuote,
		Transform: func(b document.Block, target string) []document.Block {
			if target != TypeParagraph {
				return nil
			}
			var out []document.Block
			for _, line := range strings.Split(textOf(b.Attributes), "\n") {
				out = append(out, document.NewBlock(TypeParagraph, map[string]any{"text": line}))
			}
			return out
		},
	}
}

// Separator is inert: non-mergeable and not convertible.
func Separator() BlockType {
	return BlockType{Name: TypeSeparator}
}

// mergeText concatenates the "text" attribute of both blocks; all other
// attributes come from the receiving block.
func mergeText(a, b map[string]any) map[string]any {
	out := document.CloneAttributes(a)
	if out == nil {
		out = make(map[string]any)
	}
	out["text"] = textOf(a) + textOf(b)
	return out
}

func textOf(attrs map[string]any) string {
	if s, ok := attrs["text"].(string); ok {
		return s
	}
	return ""
}
