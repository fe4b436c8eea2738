package md2html

import "regexp"

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n so the lexer only ever
// splits on \n. Runs before tokenizing; fenced code content is unaffected
// beyond the line endings themselves.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
