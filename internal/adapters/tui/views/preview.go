package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/tui/styles"
)

// PreviewKeyMap defines key bindings for the preview pane
type PreviewKeyMap struct {
	Close key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+p"),
		key.WithHelp("esc/q", "close"),
	),
}

// SwitchToEditorMsg returns to the editor from the preview.
type SwitchToEditorMsg struct{}

// PreviewModel shows rendered markdown in a scrollable pane.
type PreviewModel struct {
	ViewState

	vp    viewport.Model
	ready bool
}

// NewPreviewModel creates a new preview model
func NewPreviewModel() *PreviewModel {
	return &PreviewModel{}
}

// SetContent loads rendered output into the pane
func (m *PreviewModel) SetContent(rendered string) {
	m.ensureViewport()
	m.vp.SetContent(rendered)
	m.vp.GotoTop()
}

func (m *PreviewModel) ensureViewport() {
	if !m.ready {
		m.vp = viewport.New(m.Width-4, m.Height-6)
		m.ready = true
	}
}

// Init initializes the preview
func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preview
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ready {
			m.vp.Width = msg.Width - 4
			m.vp.Height = msg.Height - 6
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, PreviewKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToEditorMsg{}
			}
		}
	}

	var cmd tea.Cmd
	if m.ready {
		m.vp, cmd = m.vp.Update(msg)
	}
	return m, cmd
}

// View renders the preview
func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Preview"))
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.vp.View())
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("back to editor"))

	return styles.App.Render(b.String())
}
