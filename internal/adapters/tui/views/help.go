package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Marknote Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Browser"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to parent"))
	b.WriteString(helpLine("l / →", "Expand folder"))
	b.WriteString(helpLine("Enter", "Open note / toggle folder"))
	b.WriteString(helpLine("n", "New note"))
	b.WriteString(helpLine("f", "New folder"))
	b.WriteString(helpLine("d", "Delete note"))
	b.WriteString(helpLine("e", "Open in external editor"))
	b.WriteString(helpLine("r", "Reload tree"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editor"))
	b.WriteString("\n")
	b.WriteString(helpLine("ctrl+s", "Save"))
	b.WriteString(helpLine("ctrl+p", "Toggle preview"))
	b.WriteString(helpLine("ctrl+b / ctrl+u", "Bold / italic"))
	b.WriteString(helpLine("ctrl+g", "Code (inline or fenced)"))
	b.WriteString(helpLine("ctrl+k", "Link"))
	b.WriteString(helpLine("ctrl+l / ctrl+o", "Bullet / numbered item"))
	b.WriteString(helpLine("ctrl+q / ctrl+t", "Quote / task"))
	b.WriteString(helpLine("ctrl+r", "Horizontal rule"))
	b.WriteString(helpLine("alt+1..3", "Heading level"))
	b.WriteString(helpLine("ctrl+y", "Copy buffer to clipboard"))
	b.WriteString(helpLine("esc", "Back to browser"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press esc, q, or ? to close"))

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return "  " + styles.HelpKey.Render(keys) + "  " + styles.HelpDesc.Render(desc) + "\n"
}
