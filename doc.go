// Package md2html converts Markdown documents to HTML with a small
// hand-written compiler: a line-oriented lexer, a block/inline parser,
// and an HTML generator run in strict sequence.
//
// # Quick Start
//
// Compile a fragment:
//
//	html := md2html.Compile("# Hello\n\nWorld")
//	// "<h1>Hello</h1><p>World</p>"
//
// Compile is total: every input string, including empty or malformed
// Markdown, produces HTML and never an error. Unmatched syntax degrades
// to literal text, and plain text is always HTML-escaped.
//
// # Compilation Pipeline
//
// The pipeline has three stages with no feedback between them:
//
//  1. Lexing: each line is classified by prefix pattern into a typed
//     token (heading, list item, blockquote, fence, rule, blank, text).
//  2. Parsing: tokens merge into a tree of block nodes; raw text payloads
//     are resolved into inline spans (emphasis, code, links, images).
//  3. Generation: the tree is walked in document order, emitting one HTML
//     fragment per node with deterministic, byte-stable output.
//
// # Supported Syntax
//
// ATX and setext headings, paragraphs, ordered/unordered lists with
// nesting, fenced code blocks with optional info strings, blockquotes
// with nesting, thematic breaks, bold/italic/bold-italic emphasis,
// inline code, links, and images. All syntax is always enabled; there
// are no feature flags.
//
// # Standalone Documents
//
// Use Converter to produce a complete HTML5 document with a stylesheet
// and YAML front matter support:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithStyle("default"),
//	    md2html.WithHighlighting("github"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
//
// The result carries the finished document and any metadata decoded from
// a leading "---" front matter block.
package md2html
