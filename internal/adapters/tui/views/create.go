package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/tui/styles"
	"marknote/internal/application/commands"
	"marknote/internal/ports"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// CreateModel is the model for the new-note / new-folder form
type CreateModel struct {
	ViewState

	store     ports.NoteStore
	input     textinput.Model
	parentURI string
	mode      CreateMode
}

// NewCreateModel creates a new create view model
func NewCreateModel(store ports.NoteStore) *CreateModel {
	input := textinput.New()
	input.CharLimit = 128
	return &CreateModel{
		store: store,
		input: input,
	}
}

// SetTarget prepares the form for a parent folder and mode
func (m *CreateModel) SetTarget(parentURI string, mode CreateMode) {
	m.parentURI = parentURI
	m.mode = mode
	m.input.SetValue("")
	if mode == CreateModeFolder {
		m.input.Placeholder = "folder name"
	} else {
		m.input.Placeholder = "note name (.md)"
	}
	m.input.Focus()
	m.ClearMessage()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, CreateKeys.Submit):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *CreateModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.input.Value())
	parentURI := m.parentURI
	mode := m.mode

	return func() tea.Msg {
		ctx := context.Background()
		if mode == CreateModeFolder {
			cmd := commands.NewCreateFolderCommand(m.store, parentURI, name)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return ErrMsg{err}
			}
			return CreateSuccessMsg{Message: result.Message}
		}

		// Default to .md when no note extension was typed.
		cmd := commands.NewCreateNoteCommand(m.store, parentURI, name, "")
		if err := cmd.Validate(); err != nil && name != "" && !strings.Contains(name, ".") {
			cmd = commands.NewCreateNoteCommand(m.store, parentURI, name+".md", "")
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return ErrMsg{err}
		}
		return CreateSuccessMsg{Message: result.Message}
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	var b strings.Builder

	if m.mode == CreateModeFolder {
		b.WriteString(styles.Title.Render("New Folder"))
	} else {
		b.WriteString(styles.Title.Render("New Note"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Name"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("create"))
	b.WriteString(styles.HelpSeparator.String())
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"))

	return styles.App.Render(b.String())
}
