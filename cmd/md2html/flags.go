package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	output     string
	style      string
	cssFile    string
	title      string
	standalone bool
	highlight  string
	config     string
	listStyles bool
	version    bool
}

// parseFlags parses args (not including the program name) and returns the
// flags plus remaining positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&flags.standalone, "standalone", "s", false, "wrap output in a complete HTML5 document")
	fs.StringVar(&flags.style, "style", "", "embedded stylesheet name (implies --standalone); see --list-styles")
	fs.StringVar(&flags.cssFile, "css", "", "CSS file to inject (implies --standalone)")
	fs.StringVar(&flags.title, "title", "", "document title (implies --standalone)")
	fs.StringVar(&flags.highlight, "highlight", "", "chroma style for fenced code highlighting")
	fs.StringVarP(&flags.config, "config", "c", "", "config file path or name (searched in . and ~/.config/md2html/)")
	fs.BoolVar(&flags.listStyles, "list-styles", false, "list embedded stylesheet names and exit")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}

// wantsStandalone reports whether any flag implies full-document output.
func (f *cliFlags) wantsStandalone() bool {
	return f.standalone || f.style != "" || f.cssFile != "" || f.title != ""
}

// applyConfig fills unset flags from config file values. Explicit flags win.
func (f *cliFlags) applyConfig(cfg *config.Config) {
	if f.style == "" {
		f.style = cfg.CSS.Style
	}
	if f.highlight == "" {
		f.highlight = cfg.Highlight.Style
	}
	if f.title == "" {
		f.title = cfg.Document.Title
	}
	if cfg.Output.Standalone {
		f.standalone = true
	}
}

// styleList formats the embedded style names for --list-styles.
func styleList() string {
	return strings.Join(assets.StyleNames(), "\n") + "\n"
}

const usageText = `Usage: md2html [flags] [input.md]

Converts Markdown to HTML. Reads from the given file, or stdin when no
file (or "-") is given, and writes to stdout unless --output is set.

Flags:
`
