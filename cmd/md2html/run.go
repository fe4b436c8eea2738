package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs      = errors.New("expected at most one input file")
	ErrReadMarkdown     = errors.New("failed to read markdown input")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run parses arguments, reads the input, converts, and writes the result.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "md2html %s\n", Version)
		return nil
	}
	if flags.listStyles {
		fmt.Fprint(stdout, styleList())
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}

	if flags.config != "" {
		cfg, err := config.LoadConfig(flags.config)
		if err != nil {
			return decorateError(fmt.Errorf("loading config: %w", err))
		}
		flags.applyConfig(cfg)
	}

	source, err := readSource(positional, stdin)
	if err != nil {
		return decorateError(err)
	}

	html, err := convert(flags, source)
	if err != nil {
		return decorateError(err)
	}

	if flags.output == "" {
		fmt.Fprintln(stdout, html)
		return nil
	}
	if err := os.WriteFile(flags.output, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(stderr, "Created %s\n", flags.output)
	return nil
}

// readSource reads Markdown from the positional file argument or stdin.
func readSource(positional []string, stdin io.Reader) (string, error) {
	if len(positional) == 0 || positional[0] == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return string(content), nil
	}

	path := positional[0]
	if err := validateMarkdownExtension(path); err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// convert runs either the fragment compiler or the standalone document
// converter, depending on the flags.
func convert(flags *cliFlags, source string) (string, error) {
	if !flags.wantsStandalone() {
		var opts []md2html.CompilerOption
		if flags.highlight != "" {
			opts = append(opts, md2html.WithSyntaxHighlighting(flags.highlight))
		}
		return md2html.NewCompiler(opts...).Compile(source), nil
	}

	var opts []md2html.Option
	if flags.style != "" {
		opts = append(opts, md2html.WithStyle(flags.style))
	}
	if flags.cssFile != "" {
		css, err := os.ReadFile(flags.cssFile)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, md2html.WithCSS(string(css)))
	}
	if flags.highlight != "" {
		opts = append(opts, md2html.WithHighlighting(flags.highlight))
	}

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return "", err
	}

	result, err := conv.Convert(context.Background(), md2html.Input{
		Markdown: source,
		Title:    flags.title,
	})
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// decorateError appends an actionable hint to known failures.
func decorateError(err error) error {
	var hint string
	switch {
	case errors.Is(err, md2html.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound()
	case errors.Is(err, ErrInvalidExtension):
		hint = hints.ForInvalidExtension()
	case errors.Is(err, md2html.ErrEmptyMarkdown):
		hint = hints.ForEmptyInput()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// validateMarkdownExtension checks for a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
