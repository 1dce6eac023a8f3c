package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"marknote/internal/ports"
)

// Renderer implements ports.Renderer using the goldmark engine. The engine
// is stateless, so a single instance can be shared freely.
type Renderer struct {
	engine goldmark.Markdown
}

// Ensure Renderer implements the port
var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer constructs a renderer with GFM extensions and task-list
// support, matching what the editor's toolbar can produce.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.TaskList,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts markdown source into HTML
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
