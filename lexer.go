package md2html

import (
	"regexp"
	"strings"
)

// listIndentSize is the number of leading spaces per list nesting level.
const listIndentSize = 2

// Precompiled line classification patterns. Each line maps to exactly one
// pattern; tests in lexer_test.go pin the priority order.
var (
	// ATX heading: 1-6 # characters followed by a space. Seven or more
	// fall through to plain text.
	atxHeadingPattern = regexp.MustCompile(`^(#{1,6}) (.*)$`)

	// Setext underline: a line of = (h1) or - (h2) under a text line.
	setextUnderlinePattern = regexp.MustCompile(`^(=+|-+) *$`)

	// List items: optional indent, marker, mandatory space.
	unorderedItemPattern = regexp.MustCompile(`^( *)[-*+] (.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^( *)[0-9]+\. (.*)$`)

	// Fenced code block delimiter with optional info string.
	fencePattern = regexp.MustCompile("^```(.*)$")
)

// tokenize scans raw Markdown into an ordered token sequence. Scanning is
// line-oriented: each line is classified independently by prefix patterns,
// except inside a fenced code block where classification is suspended and
// lines pass through verbatim. An unterminated fence runs to end of input.
//
// tokenize never fails: a line that matches no rule is a plain text line.
func tokenize(input string) []Token {
	lines := strings.Split(input, "\n")
	tokens := make([]Token, 0, len(lines))

	inFence := false
	for _, line := range lines {
		if inFence {
			if strings.TrimSpace(line) == "```" {
				tokens = append(tokens, Token{Kind: TokenCodeFence})
				inFence = false
				continue
			}
			tokens = append(tokens, Token{Kind: TokenCodeLine, Text: line})
			continue
		}

		if m := fencePattern.FindStringSubmatch(line); m != nil {
			tokens = append(tokens, Token{Kind: TokenCodeFence, Lang: strings.TrimSpace(m[1])})
			inFence = true
			continue
		}

		if strings.TrimSpace(line) == "" {
			tokens = append(tokens, Token{Kind: TokenBlank})
			continue
		}

		// Setext underline promotes the preceding text line to a heading.
		// Checked before the rule pattern so "text\n---" is an h2, while a
		// "---" with no text line above remains a thematic break.
		if m := setextUnderlinePattern.FindStringSubmatch(line); m != nil {
			if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenText {
				level := 2
				if m[1][0] == '=' {
					level = 1
				}
				tokens[n-1] = Token{Kind: TokenHeader, Level: level, Text: tokens[n-1].Text}
				continue
			}
		}

		if m := atxHeadingPattern.FindStringSubmatch(line); m != nil {
			tokens = append(tokens, Token{
				Kind:  TokenHeader,
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
			})
			continue
		}

		if depth, rest, ok := scanQuoteMarkers(line); ok {
			tokens = append(tokens, Token{
				Kind:  TokenBlockquote,
				Depth: depth,
				Text:  strings.TrimSpace(rest),
			})
			continue
		}

		// Checked before list items so "---" and "* * *" are breaks, not
		// list lines; a real item always has content after its marker.
		if isRuleLine(line) {
			tokens = append(tokens, Token{Kind: TokenRule})
			continue
		}

		if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
			tokens = append(tokens, Token{
				Kind:   TokenListItem,
				Indent: len(m[1]) / listIndentSize,
				Text:   strings.TrimSpace(m[2]),
			})
			continue
		}

		if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
			tokens = append(tokens, Token{
				Kind:    TokenListItem,
				Ordered: true,
				Indent:  len(m[1]) / listIndentSize,
				Text:    strings.TrimSpace(m[2]),
			})
			continue
		}

		tokens = append(tokens, Token{Kind: TokenText, Text: strings.TrimSpace(line)})
	}

	return tokens
}

// scanQuoteMarkers reads leading blockquote markers and returns the quote
// depth and the remaining payload. Both ">> x" and "> > x" are depth 2.
func scanQuoteMarkers(line string) (depth int, rest string, ok bool) {
	i := 0
scan:
	for i < len(line) {
		switch {
		case line[i] == '>':
			depth++
			i++
		case line[i] == ' ' && i+1 < len(line) && line[i+1] == '>':
			i++
		default:
			break scan
		}
	}
	if depth == 0 {
		return 0, "", false
	}
	return depth, strings.TrimPrefix(line[i:], " "), true
}

// isRuleLine reports whether a line is a thematic break: ignoring spaces,
// three or more repetitions of the same marker from -, *, or _.
func isRuleLine(line string) bool {
	trimmed := strings.ReplaceAll(line, " ", "")
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != marker {
			return false
		}
	}
	return true
}
