package markdown

import (
	"strings"
	"testing"
)

func TestRenderer(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"heading", "# Title", "<h1"},
		{"bold", "**word**", "<strong>word</strong>"},
		{"inline code", "`cmd`", "<code>cmd</code>"},
		{"link", "[docs](https://example.com)", `href="https://example.com"`},
		{"task list", "- [ ] Task", `type="checkbox"`},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "<table>"},
		{"strikethrough", "~~old~~", "<del>old</del>"},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Render(tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(html, tt.want) {
				t.Errorf("expected output to contain %q, got %q", tt.want, html)
			}
		})
	}
}

func TestRenderer_EmptySource(t *testing.T) {
	html, err := NewRenderer().Render("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("expected empty output, got %q", html)
	}
}
