package md2html

import "strings"

// parser consumes a flat token stream and groups it into block nodes.
// All lookahead is local: one token decides the block kind, merge loops
// extend it, and nothing backtracks across block boundaries.
type parser struct {
	tokens []Token
	pos    int
}

// parse builds the document tree from a token sequence.
func parse(tokens []Token) *Document {
	p := &parser{tokens: tokens}
	doc := &Document{}

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Kind {
		case TokenBlank:
			// Separator only: consumed, never a node. Runs of blanks are
			// idempotent since each one is skipped individually.
			p.pos++
		case TokenHeader:
			p.pos++
			doc.Children = append(doc.Children, &Heading{Level: tok.Level, Spans: resolveInline(tok.Text)})
		case TokenRule:
			p.pos++
			doc.Children = append(doc.Children, &HorizontalRule{})
		case TokenCodeFence:
			doc.Children = append(doc.Children, p.parseCodeBlock())
		case TokenListItem:
			doc.Children = append(doc.Children, p.parseList())
		case TokenBlockquote:
			doc.Children = append(doc.Children, p.parseBlockquote())
		case TokenText:
			doc.Children = append(doc.Children, p.parseParagraph())
		case TokenCodeLine:
			// Unreachable outside a fence; skip rather than fail.
			p.pos++
		}
	}

	return doc
}

// parseParagraph collapses a run of consecutive text lines, with no blank
// line between them, into one paragraph joined by single spaces.
func (p *parser) parseParagraph() *Paragraph {
	var lines []string
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind == TokenText {
		lines = append(lines, p.tokens[p.pos].Text)
		p.pos++
	}
	return &Paragraph{Spans: resolveInline(strings.Join(lines, " "))}
}

// parseCodeBlock collects verbatim lines between fence delimiters. The
// closing fence is optional: an unterminated block runs to end of input.
func (p *parser) parseCodeBlock() *CodeBlock {
	fence := p.tokens[p.pos]
	p.pos++

	block := &CodeBlock{Lang: fence.Lang}
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind == TokenCodeLine {
		block.Lines = append(block.Lines, p.tokens[p.pos].Text)
		p.pos++
	}
	if p.pos < len(p.tokens) && p.tokens[p.pos].Kind == TokenCodeFence {
		p.pos++
	}
	return block
}

// listStackEntry tracks one open list per nesting level while merging
// consecutive list item tokens.
type listStackEntry struct {
	list   *List
	indent int
}

// parseList merges consecutive list item tokens into one list. Deeper
// indents open nested lists under the preceding item, at most one extra
// level per step; a change of ordered-ness at the top level ends the list
// so the next item starts a fresh one.
func (p *parser) parseList() *List {
	first := p.tokens[p.pos]
	p.pos++

	root := &List{Ordered: first.Ordered, Items: []*ListItem{{Spans: resolveInline(first.Text)}}}
	stack := []listStackEntry{{list: root, indent: 0}}

	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind == TokenListItem {
		tok := p.tokens[p.pos]
		top := stack[len(stack)-1]

		indent := tok.Indent
		if indent > top.indent+1 {
			indent = top.indent + 1
		}
		if indent == 0 && tok.Ordered != root.Ordered {
			break
		}
		p.pos++

		item := &ListItem{Spans: resolveInline(tok.Text)}
		switch {
		case indent > top.indent:
			nested := &List{Ordered: tok.Ordered, Items: []*ListItem{item}}
			parent := top.list.Items[len(top.list.Items)-1]
			parent.Nested = append(parent.Nested, nested)
			stack = append(stack, listStackEntry{list: nested, indent: indent})
		case indent < top.indent:
			for stack[len(stack)-1].indent > indent {
				stack = stack[:len(stack)-1]
			}
			entry := stack[len(stack)-1]
			entry.list.Items = append(entry.list.Items, item)
		default:
			top.list.Items = append(top.list.Items, item)
		}
	}

	return root
}

// parseBlockquote collects a run of consecutive quote lines and assembles
// them by depth: same-depth lines join into paragraphs, deeper lines form
// nested blockquotes, and a bare ">" separates paragraphs.
func (p *parser) parseBlockquote() *Blockquote {
	start := p.pos
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind == TokenBlockquote {
		p.pos++
	}
	return buildQuote(p.tokens[start:p.pos], 1)
}

// buildQuote assembles quote lines at one depth, recursing for deeper runs.
func buildQuote(lines []Token, depth int) *Blockquote {
	quote := &Blockquote{}
	var para []string

	flush := func() {
		if len(para) > 0 {
			quote.Children = append(quote.Children, &Paragraph{Spans: resolveInline(strings.Join(para, " "))})
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line.Depth > depth {
			flush()
			j := i
			for j < len(lines) && lines[j].Depth > depth {
				j++
			}
			quote.Children = append(quote.Children, buildQuote(lines[i:j], depth+1))
			i = j - 1
			continue
		}
		if line.Text == "" {
			flush()
			continue
		}
		para = append(para, line.Text)
	}
	flush()

	return quote
}
