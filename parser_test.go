package md2html

import (
	"reflect"
	"testing"
)

// parseSource is a test helper running the first two pipeline stages.
func parseSource(t *testing.T, source string) *Document {
	t.Helper()
	return parse(tokenize(source))
}

func TestParse_ParagraphGrouping(t *testing.T) {
	t.Parallel()

	t.Run("consecutive text lines collapse into one paragraph", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "line one\nline two")
		if len(doc.Children) != 1 {
			t.Fatalf("got %d nodes, want 1", len(doc.Children))
		}
		para, ok := doc.Children[0].(*Paragraph)
		if !ok {
			t.Fatalf("node = %T, want *Paragraph", doc.Children[0])
		}
		want := []Span{{Kind: SpanText, Text: "line one line two"}}
		if !reflect.DeepEqual(para.Spans, want) {
			t.Errorf("spans = %+v, want %+v", para.Spans, want)
		}
	})

	t.Run("blank line separates paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "first\n\nsecond")
		if len(doc.Children) != 2 {
			t.Fatalf("got %d nodes, want 2", len(doc.Children))
		}
		for _, node := range doc.Children {
			if _, ok := node.(*Paragraph); !ok {
				t.Errorf("node = %T, want *Paragraph", node)
			}
		}
	})

	t.Run("runs of blank lines emit no empty paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "first\n\n\n\n\nsecond")
		if len(doc.Children) != 2 {
			t.Fatalf("got %d nodes, want 2", len(doc.Children))
		}
	})
}

func TestParse_HeadingIsOneNode(t *testing.T) {
	t.Parallel()

	doc := parseSource(t, "## Title\n### Subtitle")
	if len(doc.Children) != 2 {
		t.Fatalf("got %d nodes, want 2", len(doc.Children))
	}
	h, ok := doc.Children[0].(*Heading)
	if !ok || h.Level != 2 {
		t.Errorf("first node = %#v, want *Heading level 2", doc.Children[0])
	}
}

func TestParse_ListGrouping(t *testing.T) {
	t.Parallel()

	t.Run("same ordered-ness merges into one list", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "- a\n- b")
		if len(doc.Children) != 1 {
			t.Fatalf("got %d nodes, want 1", len(doc.Children))
		}
		list, ok := doc.Children[0].(*List)
		if !ok {
			t.Fatalf("node = %T, want *List", doc.Children[0])
		}
		if list.Ordered || len(list.Items) != 2 {
			t.Errorf("list = ordered=%v items=%d, want unordered with 2 items", list.Ordered, len(list.Items))
		}
	})

	t.Run("ordered-ness change starts a new list", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "- a\n1. b")
		if len(doc.Children) != 2 {
			t.Fatalf("got %d nodes, want 2", len(doc.Children))
		}
		first, second := doc.Children[0].(*List), doc.Children[1].(*List)
		if first.Ordered || !second.Ordered {
			t.Errorf("ordered-ness = %v,%v, want false,true", first.Ordered, second.Ordered)
		}
	})

	t.Run("intervening block starts a new list", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "- a\n\ntext\n\n- b")
		if len(doc.Children) != 3 {
			t.Fatalf("got %d nodes, want 3", len(doc.Children))
		}
	})

	t.Run("deeper indent nests under the preceding item", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "- a\n  - b\n  - c\n- d")
		list := doc.Children[0].(*List)
		if len(list.Items) != 2 {
			t.Fatalf("top-level items = %d, want 2", len(list.Items))
		}
		nested := list.Items[0].Nested
		if len(nested) != 1 || len(nested[0].Items) != 2 {
			t.Fatalf("nested = %+v, want one list with 2 items", nested)
		}
	})

	t.Run("indent can only deepen one level per item", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "- a\n        - far")
		list := doc.Children[0].(*List)
		if len(list.Items) != 1 {
			t.Fatalf("top-level items = %d, want 1", len(list.Items))
		}
		if len(list.Items[0].Nested) != 1 {
			t.Fatalf("want the over-indented item clamped to one nested level")
		}
	})
}

func TestParse_CodeBlock(t *testing.T) {
	t.Parallel()

	doc := parseSource(t, "```go\nx := 1\n\ny := 2\n```")
	if len(doc.Children) != 1 {
		t.Fatalf("got %d nodes, want 1", len(doc.Children))
	}
	block, ok := doc.Children[0].(*CodeBlock)
	if !ok {
		t.Fatalf("node = %T, want *CodeBlock", doc.Children[0])
	}
	if block.Lang != "go" {
		t.Errorf("lang = %q, want %q", block.Lang, "go")
	}
	want := []string{"x := 1", "", "y := 2"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Errorf("lines = %q, want %q", block.Lines, want)
	}
}

func TestParse_Blockquote(t *testing.T) {
	t.Parallel()

	t.Run("consecutive quote lines merge", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "> a\n> b")
		quote := doc.Children[0].(*Blockquote)
		if len(quote.Children) != 1 {
			t.Fatalf("children = %d, want 1 merged paragraph", len(quote.Children))
		}
		para := quote.Children[0].(*Paragraph)
		want := []Span{{Kind: SpanText, Text: "a b"}}
		if !reflect.DeepEqual(para.Spans, want) {
			t.Errorf("spans = %+v, want %+v", para.Spans, want)
		}
	})

	t.Run("bare marker separates quote paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "> a\n>\n> b")
		quote := doc.Children[0].(*Blockquote)
		if len(quote.Children) != 2 {
			t.Fatalf("children = %d, want 2 paragraphs", len(quote.Children))
		}
	})

	t.Run("deeper markers nest", func(t *testing.T) {
		t.Parallel()

		doc := parseSource(t, "> outer\n> > inner")
		quote := doc.Children[0].(*Blockquote)
		if len(quote.Children) != 2 {
			t.Fatalf("children = %d, want paragraph + nested quote", len(quote.Children))
		}
		if _, ok := quote.Children[1].(*Blockquote); !ok {
			t.Errorf("second child = %T, want *Blockquote", quote.Children[1])
		}
	})
}

func TestParse_HorizontalRule(t *testing.T) {
	t.Parallel()

	doc := parseSource(t, "a\n\n---\n\nb")
	if len(doc.Children) != 3 {
		t.Fatalf("got %d nodes, want 3", len(doc.Children))
	}
	if _, ok := doc.Children[1].(*HorizontalRule); !ok {
		t.Errorf("middle node = %T, want *HorizontalRule", doc.Children[1])
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	doc := parseSource(t, "")
	if len(doc.Children) != 0 {
		t.Errorf("got %d nodes, want 0", len(doc.Children))
	}
}
