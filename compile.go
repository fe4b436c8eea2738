package md2html

// Compiler turns Markdown source into an HTML fragment through three
// stages run in strict sequence: tokenize, parse, generate. The zero
// value is usable; options only affect code block rendering.
//
// A Compiler holds no per-call state, so one instance may be shared by
// concurrent goroutines.
type Compiler struct {
	highlight      bool
	highlightStyle string
}

// CompilerOption customizes a Compiler.
type CompilerOption func(*Compiler)

// WithSyntaxHighlighting enables chroma-based highlighting of fenced code
// blocks that carry an info string (e.g. ```go). The style names a chroma
// style; unknown styles fall back to chroma's default, unknown languages
// fall back to a plain escaped code block.
func WithSyntaxHighlighting(style string) CompilerOption {
	return func(c *Compiler) {
		c.highlight = true
		c.highlightStyle = style
	}
}

// NewCompiler creates a Compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile converts Markdown source to an HTML fragment.
//
// Compile is total: every input, including empty, whitespace-only, or
// arbitrarily malformed Markdown, produces some HTML and never an error.
// Unresolved syntax degrades to literal text. Output is deterministic:
// identical input yields byte-identical output.
func (c *Compiler) Compile(source string) string {
	tokens := tokenize(normalizeLineEndings(source))
	doc := parse(tokens)
	g := &generator{highlight: c.highlight, highlightStyle: c.highlightStyle}
	return g.render(doc)
}

// Compile converts Markdown source to an HTML fragment using a default
// Compiler. See Compiler.Compile for the contract.
func Compile(source string) string {
	return NewCompiler().Compile(source)
}
