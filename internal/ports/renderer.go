package ports

// Renderer converts markdown source into HTML for the preview pane.
type Renderer interface {
	Render(markdown string) (string, error)
}
