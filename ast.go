package md2html

// Node is a block-level element of the document tree. The set of
// implementations is closed; the generator switches exhaustively over it.
type Node interface {
	blockNode()
}

// Document is the parse result: an ordered sequence of top-level block
// nodes. Document order is output order.
type Document struct {
	Children []Node
}

// Heading is an ATX or setext heading with resolved inline content.
type Heading struct {
	Level int // 1-6
	Spans []Span
}

// Paragraph is a run of consecutive text lines collapsed into one block.
type Paragraph struct {
	Spans []Span
}

// List is a run of list items sharing one ordered-ness. Nested lists hang
// off the item that introduced the deeper indent.
type List struct {
	Ordered bool
	Items   []*ListItem
}

// ListItem is one list entry: its own inline content plus any nested
// lists opened by more-indented items that followed it.
type ListItem struct {
	Spans  []Span
	Nested []*List
}

// CodeBlock is a fenced code block. Lines are verbatim source lines with
// no inline resolution; Lang is the fence info string, possibly empty.
type CodeBlock struct {
	Lang  string
	Lines []string
}

// Blockquote holds quoted block content. Children are Paragraphs and,
// for deeper `>` runs, nested Blockquotes.
type Blockquote struct {
	Children []Node
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

func (*Heading) blockNode()        {}
func (*Paragraph) blockNode()      {}
func (*List) blockNode()           {}
func (*CodeBlock) blockNode()      {}
func (*Blockquote) blockNode()     {}
func (*HorizontalRule) blockNode() {}

// SpanKind identifies an inline span variant.
type SpanKind int

// Span kinds produced by the inline resolver.
const (
	SpanText       SpanKind = iota // plain literal text
	SpanBold                       // **x** / __x__
	SpanItalic                     // *x* / _x_
	SpanBoldItalic                 // ***x*** / ___x___
	SpanCode                       // `x`
	SpanLink                       // [text](href)
	SpanImage                      // ![alt](src)
)

// Span is one inline element inside a block node's content. Inline spans
// are single-level: a span never contains other spans.
type Span struct {
	Kind SpanKind
	Text string // literal, emphasis, or code content; link label; image alt
	URL  string // link href or image src
}
