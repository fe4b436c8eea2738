package md2html

// TokenKind identifies the lexical class of a scanned line.
// The set is closed: every line the lexer sees maps to exactly one kind,
// with TokenText as the guaranteed fallback.
type TokenKind int

// Token kinds produced by the lexer.
const (
	// TokenText is a plain line of paragraph content. It is also the
	// fallback for any line that matches no other rule.
	TokenText TokenKind = iota

	// TokenHeader is an ATX (`# ...`) or setext (underlined) heading.
	TokenHeader

	// TokenListItem is an ordered or unordered list item line.
	TokenListItem

	// TokenBlockquote is a `>`-prefixed quote line.
	TokenBlockquote

	// TokenCodeFence is a triple-backtick fence line (opening or closing).
	TokenCodeFence

	// TokenCodeLine is a verbatim line inside a fenced code block.
	TokenCodeLine

	// TokenRule is a thematic break line (---, ***, ___).
	TokenRule

	// TokenBlank is an empty or whitespace-only line. Blank lines are the
	// paragraph and list separator signal consumed by the parser.
	TokenBlank
)

// String returns the kind name for test failures and debugging.
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "Text"
	case TokenHeader:
		return "Header"
	case TokenListItem:
		return "ListItem"
	case TokenBlockquote:
		return "Blockquote"
	case TokenCodeFence:
		return "CodeFence"
	case TokenCodeLine:
		return "CodeLine"
	case TokenRule:
		return "Rule"
	case TokenBlank:
		return "Blank"
	}
	return "Unknown"
}

// Token is one classified line of input. Tokens are immutable once
// produced; the Text payload of block-level tokens is carried raw and
// resolved into inline spans by the parser, never by the lexer.
type Token struct {
	Kind TokenKind
	Text string // raw line payload (marker prefix stripped)

	Level   int    // heading level 1-6 (TokenHeader)
	Ordered bool   // list ordered-ness (TokenListItem)
	Indent  int    // list nesting level, 2 spaces per level (TokenListItem)
	Depth   int    // quote nesting depth, 1 = outermost (TokenBlockquote)
	Lang    string // fence info string (TokenCodeFence)
}
