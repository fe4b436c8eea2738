package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// matching t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir cleanup: %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Standalone {
		t.Error("Output.Standalone = true, want false")
	}
	if cfg.CSS.Style != "" {
		t.Errorf("CSS.Style = %q, want empty", cfg.CSS.Style)
	}
	if cfg.Highlight.Style != "" {
		t.Errorf("Highlight.Style = %q, want empty", cfg.Highlight.Style)
	}
	if cfg.Document.Title != "" {
		t.Errorf("Document.Title = %q, want empty", cfg.Document.Title)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "zero config is valid",
			cfg:     Config{},
			wantErr: false,
		},
		{
			name: "populated config is valid",
			cfg: Config{
				Output:    OutputConfig{Standalone: true},
				CSS:       CSSConfig{Style: "default"},
				Highlight: HighlightConfig{Style: "monokai"},
				Document:  DocumentConfig{Title: "Release Notes"},
			},
			wantErr: false,
		},
		{
			name:    "css style at limit is valid",
			cfg:     Config{CSS: CSSConfig{Style: strings.Repeat("a", MaxStyleLength)}},
			wantErr: false,
		},
		{
			name:    "css style over limit returns error",
			cfg:     Config{CSS: CSSConfig{Style: strings.Repeat("a", MaxStyleLength+1)}},
			wantErr: true,
		},
		{
			name:    "highlight style over limit returns error",
			cfg:     Config{Highlight: HighlightConfig{Style: strings.Repeat("b", MaxStyleLength+1)}},
			wantErr: true,
		},
		{
			name:    "title over limit returns error",
			cfg:     Config{Document: DocumentConfig{Title: strings.Repeat("t", MaxTitleLength+1)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `output:
  standalone: true
css:
  style: "default"
highlight:
  style: "monokai"
document:
  title: "Weekly Report"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Output.Standalone {
			t.Error("Output.Standalone = false, want true")
		}
		if cfg.CSS.Style != "default" {
			t.Errorf("CSS.Style = %q, want %q", cfg.CSS.Style, "default")
		}
		if cfg.Highlight.Style != "monokai" {
			t.Errorf("Highlight.Style = %q, want %q", cfg.Highlight.Style, "monokai")
		}
		if cfg.Document.Title != "Weekly Report" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "Weekly Report")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("nonexistent config name returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("no-such-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("config name resolves in current directory", func(t *testing.T) {
		dir := t.TempDir()
		content := "css:\n  style: \"compact\"\n"
		if err := os.WriteFile(filepath.Join(dir, "report.yaml"), []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		chdir(t, dir)

		cfg, err := LoadConfig("report")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CSS.Style != "compact" {
			t.Errorf("CSS.Style = %q, want %q", cfg.CSS.Style, "compact")
		}
	})

	t.Run("config name resolves yml extension", func(t *testing.T) {
		dir := t.TempDir()
		content := "output:\n  standalone: true\n"
		if err := os.WriteFile(filepath.Join(dir, "site.yml"), []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		chdir(t, dir)

		cfg, err := LoadConfig("site")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Output.Standalone {
			t.Error("Output.Standalone = false, want true")
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("css: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := "css:\n  style: \"default\"\nunknownField: \"should fail\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long returns ErrFieldTooLong", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "toolong.yaml")
		content := "document:\n  title: \"" + strings.Repeat("t", MaxTitleLength+1) + "\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"config", false},
		{"my-report", false},
		{"./config.yaml", true},
		{"/etc/md2html/config.yaml", true},
		{`C:\configs\md2html.yaml`, true},
	}

	for _, tt := range tests {
		if got := isFilePath(tt.input); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
