package md2html

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// htmlEscaper escapes user content before it is wrapped in structural
// tags. Tags emitted by the generator itself are never escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeHTML escapes HTML-significant characters in literal text.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// generator walks the document tree and emits HTML fragments in document
// order, concatenated with no added whitespace. Output is deterministic:
// identical trees yield byte-identical HTML.
type generator struct {
	highlight      bool   // highlight fenced code via chroma
	highlightStyle string // chroma style name, empty = chroma fallback
}

func (g *generator) render(doc *Document) string {
	var b strings.Builder
	for _, node := range doc.Children {
		g.renderNode(&b, node)
	}
	return b.String()
}

func (g *generator) renderNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Heading:
		fmt.Fprintf(b, "<h%d>", n.Level)
		renderSpans(b, n.Spans)
		fmt.Fprintf(b, "</h%d>", n.Level)
	case *Paragraph:
		b.WriteString("<p>")
		renderSpans(b, n.Spans)
		b.WriteString("</p>")
	case *List:
		g.renderList(b, n)
	case *CodeBlock:
		g.renderCodeBlock(b, n)
	case *Blockquote:
		b.WriteString("<blockquote>")
		for _, child := range n.Children {
			g.renderNode(b, child)
		}
		b.WriteString("</blockquote>")
	case *HorizontalRule:
		b.WriteString("<hr>")
	}
}

func (g *generator) renderList(b *strings.Builder, list *List) {
	openTag, closeTag := "<ul>", "</ul>"
	if list.Ordered {
		openTag, closeTag = "<ol>", "</ol>"
	}
	b.WriteString(openTag)
	for _, item := range list.Items {
		b.WriteString("<li>")
		renderSpans(b, item.Spans)
		for _, nested := range item.Nested {
			g.renderList(b, nested)
		}
		b.WriteString("</li>")
	}
	b.WriteString(closeTag)
}

// renderCodeBlock emits a fenced code block. Lines are joined by newlines
// and HTML-escaped; Markdown markers inside the block are never
// interpreted. With highlighting enabled and a usable info string, chroma
// renders the block instead; any highlighting failure degrades to the
// plain escaped form so rendering stays total.
func (g *generator) renderCodeBlock(b *strings.Builder, block *CodeBlock) {
	source := strings.Join(block.Lines, "\n")

	if g.highlight && block.Lang != "" && g.highlightCode(b, block.Lang, source) {
		return
	}

	b.WriteString("<pre><code>")
	b.WriteString(escapeHTML(source))
	b.WriteString("</code></pre>")
}

// highlightCode renders source through chroma, reporting success. Chroma
// escapes the source itself.
func (g *generator) highlightCode(b *strings.Builder, lang, source string) bool {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return false
	}

	// CSS classes keep the markup small and the colors in the stylesheet.
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var highlighted strings.Builder
	if err := formatter.Format(&highlighted, styles.Get(g.highlightStyle), iterator); err != nil {
		return false
	}

	b.WriteString(highlighted.String())
	return true
}

// renderSpans emits the inline spans of a block node. Literal text, code
// content, URLs, labels, and alt text are escaped; the wrapping tags are
// not.
func renderSpans(b *strings.Builder, spans []Span) {
	for _, span := range spans {
		switch span.Kind {
		case SpanText:
			b.WriteString(escapeHTML(span.Text))
		case SpanBold:
			b.WriteString("<strong>")
			b.WriteString(escapeHTML(span.Text))
			b.WriteString("</strong>")
		case SpanItalic:
			b.WriteString("<em>")
			b.WriteString(escapeHTML(span.Text))
			b.WriteString("</em>")
		case SpanBoldItalic:
			b.WriteString("<em><strong>")
			b.WriteString(escapeHTML(span.Text))
			b.WriteString("</strong></em>")
		case SpanCode:
			b.WriteString("<code>")
			b.WriteString(escapeHTML(span.Text))
			b.WriteString("</code>")
		case SpanLink:
			fmt.Fprintf(b, `<a href="%s">%s</a>`, escapeHTML(span.URL), escapeHTML(span.Text))
		case SpanImage:
			fmt.Fprintf(b, `<img src="%s" alt="%s">`, escapeHTML(span.URL), escapeHTML(span.Text))
		}
	}
}
