package md2html

import (
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Meta holds document metadata decoded from YAML front matter.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Date        string `yaml:"date"`
}

// frontMatterClose lines terminate a front matter block.
func isFrontMatterClose(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "---" || trimmed == "..."
}

// splitFrontMatter detects a YAML front matter block at the very start of
// the source: an opening "---" line, metadata lines, and a closing "---"
// or "..." line. It returns the decoded metadata and the remaining body.
//
// Detection degrades like the rest of the pipeline: a block that never
// closes or does not decode as YAML is document content, not an error.
func splitFrontMatter(source string) (Meta, string) {
	var meta Meta

	lines := strings.Split(source, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "---" {
		return meta, source
	}

	closeAt := -1
	for i := 1; i < len(lines); i++ {
		if isFrontMatterClose(lines[i]) {
			closeAt = i
			break
		}
	}
	if closeAt == -1 {
		return meta, source
	}

	block := strings.Join(lines[1:closeAt], "\n")
	if strings.TrimSpace(block) != "" {
		if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
			return Meta{}, source
		}
	}

	return meta, strings.Join(lines[closeAt+1:], "\n")
}
