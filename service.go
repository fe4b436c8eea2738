package md2html

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
)

// htmlShell wraps the compiled fragment in a complete HTML5 document.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// defaultTitle is used when neither the input nor front matter names one.
const defaultTitle = "Document"

// converterConfig holds resolved Converter settings.
type converterConfig struct {
	styleName       string
	extraCSS        string
	skipFrontMatter bool
	highlight       bool
	highlightStyle  string
}

// Converter produces standalone HTML documents: front matter is stripped
// and decoded, the body is compiled by the Markdown pipeline, and the
// fragment is wrapped in an HTML5 shell with CSS injected into <head>.
// Create with NewConverter and share freely: Convert holds no per-call
// state.
//
// For a bare HTML fragment with no document shell, use Compile instead.
type Converter struct {
	cfg         converterConfig
	assetLoader assets.Loader
	compiler    *Compiler
	resolvedCSS string
}

// Option customizes a Converter.
type Option func(*Converter)

// WithStyle selects a named embedded stylesheet for the document <head>.
// NewConverter returns ErrStyleNotFound if the name is unknown.
func WithStyle(name string) Option {
	return func(c *Converter) { c.cfg.styleName = name }
}

// WithCSS appends raw CSS after the selected style, so it can override it.
func WithCSS(css string) Option {
	return func(c *Converter) { c.cfg.extraCSS = css }
}

// WithHighlighting enables chroma syntax highlighting for fenced code
// blocks that carry a language info string. See WithSyntaxHighlighting
// for the fallback behavior.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithoutFrontMatter disables YAML front matter detection; a leading
// "---" block is then compiled as document content.
func WithoutFrontMatter() Option {
	return func(c *Converter) { c.cfg.skipFrontMatter = true }
}

// withAssetLoader replaces the embedded style loader (used by tests).
func withAssetLoader(loader assets.Loader) Option {
	return func(c *Converter) { c.assetLoader = loader }
}

// NewConverter creates a Converter. Style resolution happens here so that
// an unknown style name fails at construction, not per document.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{assetLoader: assets.NewEmbeddedLoader()}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.styleName != "" {
		css, err := c.assetLoader.LoadStyle(c.cfg.styleName)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, c.cfg.styleName)
		}
		c.resolvedCSS = css
	}
	if c.cfg.extraCSS != "" {
		if c.resolvedCSS != "" {
			c.resolvedCSS += "\n"
		}
		c.resolvedCSS += c.cfg.extraCSS
	}

	var compilerOpts []CompilerOption
	if c.cfg.highlight {
		compilerOpts = append(compilerOpts, WithSyntaxHighlighting(c.cfg.highlightStyle))
	}
	c.compiler = NewCompiler(compilerOpts...)

	return c, nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // document title, overrides front matter (optional)
	CSS      string // per-document CSS appended after converter CSS (optional)
}

// Result contains the finished document and its decoded front matter.
type Result struct {
	HTML string
	Meta Meta
}

// Convert compiles input into a standalone HTML document. The context is
// checked between pipeline stages; the compile stage itself is pure and
// cannot fail. Recovers from internal panics so a bug cannot crash the
// caller.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := normalizeLineEndings(input.Markdown)

	var meta Meta
	body := source
	if !c.cfg.skipFrontMatter {
		meta, body = splitFrontMatter(source)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fragment := c.compiler.Compile(body)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = defaultTitle
	}

	doc := fmt.Sprintf(htmlShell, escapeHTML(title), fragment)

	css := c.resolvedCSS
	if input.CSS != "" {
		if css != "" {
			css += "\n"
		}
		css += input.CSS
	}
	doc = injectStyle(doc, css)

	return &Result{HTML: doc, Meta: meta}, nil
}
