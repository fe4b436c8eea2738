package md2html

import (
	"regexp"
	"strings"
)

// Inline marker patterns, all anchored at the scan position. The emphasis
// trio must be tried longest-marker-first (*** before ** before *), and
// image before link, because each earlier syntax is a superset prefix of
// the later one. Content classes exclude the marker character so that a
// lone or unbalanced marker falls through to literal text.
var (
	boldItalicPattern = regexp.MustCompile(`^(?:\*{3}([^*]+?)\*{3}|_{3}([^_]+?)_{3})`)
	boldPattern       = regexp.MustCompile(`^(?:\*{2}([^*]+?)\*{2}|_{2}([^_]+?)_{2})`)
	italicPattern     = regexp.MustCompile(`^(?:\*([^*]+?)\*|_([^_]+?)_)`)
	inlineCodePattern = regexp.MustCompile("^`([^`]+)`")
	imagePattern      = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)`)
	linkPattern       = regexp.MustCompile(`^\[([^\]]*)\]\(([^)]*)\)`)
)

// resolveInline scans a raw block payload left to right and produces its
// inline spans. Markup that does not complete (a lone *, an unclosed
// bracket) is literal text; resolution never fails.
//
// Spans are single-level: emphasis inside emphasis is not resolved, except
// that the combined ***x*** form yields one bold-italic span.
func resolveInline(raw string) []Span {
	var spans []Span
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: literal.String()})
			literal.Reset()
		}
	}

	rest := raw
	for len(rest) > 0 {
		if ok, span, size := matchInlineMarker(rest); ok {
			flush()
			spans = append(spans, span)
			rest = rest[size:]
			continue
		}
		literal.WriteByte(rest[0])
		rest = rest[1:]
	}
	flush()

	return spans
}

// matchInlineMarker tries each inline syntax at the start of rest, in
// precedence order, and returns the resolved span and consumed length.
func matchInlineMarker(rest string) (bool, Span, int) {
	if m := boldItalicPattern.FindStringSubmatch(rest); m != nil {
		return true, Span{Kind: SpanBoldItalic, Text: firstSubmatch(m)}, len(m[0])
	}
	if m := boldPattern.FindStringSubmatch(rest); m != nil {
		return true, Span{Kind: SpanBold, Text: firstSubmatch(m)}, len(m[0])
	}
	if m := italicPattern.FindStringSubmatch(rest); m != nil {
		return true, Span{Kind: SpanItalic, Text: firstSubmatch(m)}, len(m[0])
	}
	if m := inlineCodePattern.FindStringSubmatch(rest); m != nil {
		return true, Span{Kind: SpanCode, Text: m[1]}, len(m[0])
	}
	if m := imagePattern.FindStringSubmatch(rest); m != nil {
		return true, Span{Kind: SpanImage, Text: m[1], URL: m[2]}, len(m[0])
	}
	if m := linkPattern.FindStringSubmatch(rest); m != nil {
		return true, Span{Kind: SpanLink, Text: m[1], URL: m[2]}, len(m[0])
	}
	return false, Span{}, 0
}

// firstSubmatch returns the first non-empty capture group. The emphasis
// patterns alternate between * and _ forms, so exactly one group is set.
func firstSubmatch(m []string) string {
	for _, s := range m[1:] {
		if s != "" {
			return s
		}
	}
	return ""
}
