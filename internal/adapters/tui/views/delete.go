package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/tui/styles"
	"marknote/internal/application/commands"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// DeleteKeyMap defines key bindings for the delete confirmation
type DeleteKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var DeleteKeys = DeleteKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// DeleteModel asks for confirmation before removing a note
type DeleteModel struct {
	ViewState

	store  ports.NoteStore
	target *domain.TreeNode
}

// NewDeleteModel creates a new delete confirmation model
func NewDeleteModel(store ports.NoteStore) *DeleteModel {
	return &DeleteModel{store: store}
}

// SetTarget sets the note to delete
func (m *DeleteModel) SetTarget(target *domain.TreeNode) {
	m.target = target
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DeleteKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, DeleteKeys.Confirm):
			return m, m.deleteNote()
		}
	}

	return m, nil
}

func (m *DeleteModel) deleteNote() tea.Cmd {
	if m.target == nil {
		return nil
	}
	uri := m.target.Entry.URI
	name := m.target.Entry.Name

	return func() tea.Msg {
		cmd := commands.NewDeleteNoteCommand(m.store, uri)
		if err := cmd.Execute(context.Background()); err != nil {
			return ErrMsg{err}
		}
		return DeleteSuccessMsg{Message: fmt.Sprintf("Deleted %s", name)}
	}
}

// View renders the delete confirmation
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Note"))
	b.WriteString("\n\n")

	if m.target != nil {
		b.WriteString(styles.InputLabel.Render("Delete:"))
		b.WriteString("\n  ")
		b.WriteString(m.target.Entry.Name)
		b.WriteString("\n\n")
	}

	b.WriteString("Are you sure? ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
	}

	return styles.App.Render(b.String())
}
