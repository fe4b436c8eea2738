// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForStyleNotFound returns a hint listing the available stylesheet names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; see --list-styles")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests an explicit path and creating a named config in the user
// config directory.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or create ~/.config/md2html/<name>.yaml")
}

// ForInvalidExtension returns a hint for rejected input file names.
func ForInvalidExtension() string {
	return format("rename the file to .md or .markdown, or pipe it via stdin")
}

// ForEmptyInput returns a hint for empty markdown input.
func ForEmptyInput() string {
	return format("input was empty or whitespace only; check the file path or the pipe")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
