package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/tui/styles"
	"marknote/internal/application/commands"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// EditorKeyMap defines key bindings for the note editor
type EditorKeyMap struct {
	Save     key.Binding
	Preview  key.Binding
	Back     key.Binding
	Copy     key.Binding
	Bold     key.Binding
	Italic   key.Binding
	Code     key.Binding
	Link     key.Binding
	Bullet   key.Binding
	Numbered key.Binding
	Quote    key.Binding
	Task     key.Binding
	Rule     key.Binding
	Heading1 key.Binding
	Heading2 key.Binding
	Heading3 key.Binding
}

var EditorKeys = EditorKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Preview: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "preview"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy buffer"),
	),
	Bold: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "bold"),
	),
	Italic: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "italic"),
	),
	Code: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "code"),
	),
	Link: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "link"),
	),
	Bullet: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "bullet"),
	),
	Numbered: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "numbered"),
	),
	Quote: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl+q", "quote"),
	),
	Task: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "task"),
	),
	Rule: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rule"),
	),
	Heading1: key.NewBinding(
		key.WithKeys("alt+1"),
		key.WithHelp("alt+1", "heading 1"),
	),
	Heading2: key.NewBinding(
		key.WithKeys("alt+2"),
		key.WithHelp("alt+2", "heading 2"),
	),
	Heading3: key.NewBinding(
		key.WithKeys("alt+3"),
		key.WithHelp("alt+3", "heading 3"),
	),
}

// EditorModel is the model for the note editing surface. Toolbar bindings
// run the insertion engine against the buffer at the caret.
type EditorModel struct {
	ViewState

	store ports.NoteStore
	ta    textarea.Model
	uri   string
	dirty bool
}

// NewEditorModel creates a new editor model
func NewEditorModel(store ports.NoteStore) *EditorModel {
	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	return &EditorModel{
		store: store,
		ta:    ta,
	}
}

// SetNote loads a note into the editor
func (m *EditorModel) SetNote(uri, content string) {
	m.uri = uri
	m.ta.SetValue(content)
	m.dirty = false
	m.ClearMessage()
	m.ta.Focus()
}

// URI returns the address of the note being edited
func (m *EditorModel) URI() string {
	return m.uri
}

// Content returns the current buffer
func (m *EditorModel) Content() string {
	return m.ta.Value()
}

// Dirty reports whether the buffer has unsaved edits
func (m *EditorModel) Dirty() bool {
	return m.dirty
}

type savedMsg struct{}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.ta.SetWidth(msg.Width - 4)
		m.ta.SetHeight(msg.Height - 6)
		return m, nil

	case savedMsg:
		m.dirty = false
		m.SetMessage("Saved", false)
		return m, nil

	case ErrMsg:
		// Unsaved edits stay in the buffer; only the message changes.
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, EditorKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, EditorKeys.Save):
			return m, m.save()

		case key.Matches(msg, EditorKeys.Preview):
			content := m.ta.Value()
			return m, func() tea.Msg {
				return ShowPreviewMsg{Content: content}
			}

		case key.Matches(msg, EditorKeys.Copy):
			if err := clipboard.WriteAll(m.ta.Value()); err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.SetMessage("Copied buffer", false)
			}
			return m, nil

		case key.Matches(msg, EditorKeys.Bold):
			m.applyConstruct(domain.Bold)
			return m, nil

		case key.Matches(msg, EditorKeys.Italic):
			m.applyConstruct(domain.Italic)
			return m, nil

		case key.Matches(msg, EditorKeys.Code):
			m.applyConstruct(domain.Code)
			return m, nil

		case key.Matches(msg, EditorKeys.Link):
			m.applyConstruct(domain.Link)
			return m, nil

		case key.Matches(msg, EditorKeys.Bullet):
			m.applyConstruct(domain.BulletItem)
			return m, nil

		case key.Matches(msg, EditorKeys.Numbered):
			m.applyConstruct(domain.NumberedItem)
			return m, nil

		case key.Matches(msg, EditorKeys.Quote):
			m.applyConstruct(domain.Quote)
			return m, nil

		case key.Matches(msg, EditorKeys.Task):
			m.applyConstruct(domain.Checkbox)
			return m, nil

		case key.Matches(msg, EditorKeys.Rule):
			m.applyConstruct(domain.HorizontalRule)
			return m, nil

		case key.Matches(msg, EditorKeys.Heading1):
			m.applyHeading(1)
			return m, nil

		case key.Matches(msg, EditorKeys.Heading2):
			m.applyHeading(2)
			return m, nil

		case key.Matches(msg, EditorKeys.Heading3):
			m.applyHeading(3)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.ta.Value()
	m.ta, cmd = m.ta.Update(msg)
	if m.ta.Value() != before {
		m.dirty = true
		m.ClearMessage()
	}
	return m, cmd
}

func (m *EditorModel) save() tea.Cmd {
	uri := m.uri
	content := m.ta.Value()
	return func() tea.Msg {
		cmd := commands.NewSaveNoteCommand(m.store, uri, content)
		if err := cmd.Execute(context.Background()); err != nil {
			return ErrMsg{err}
		}
		return savedMsg{}
	}
}

// applyConstruct runs a wrap operation at the caret and moves the caret
// after the inserted span.
func (m *EditorModel) applyConstruct(op func(string, domain.Selection) domain.InsertResult) {
	result := op(m.ta.Value(), domain.Caret(m.caretOffset()))
	m.setBuffer(result)
}

func (m *EditorModel) applyHeading(level int) {
	result := domain.InsertHeading(m.ta.Value(), domain.Caret(m.caretOffset()), level)
	m.setBuffer(result)
}

// caretOffset converts the textarea's (row, column) cursor into a character
// offset over the whole buffer.
func (m *EditorModel) caretOffset() int {
	lines := strings.Split(m.ta.Value(), "\n")
	row := m.ta.Line()

	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len(lines[i]) + 1
	}
	return offset + m.ta.LineInfo().CharOffset
}

// setBuffer replaces the buffer and repositions the cursor at the result's
// caret.
func (m *EditorModel) setBuffer(result domain.InsertResult) {
	m.ta.SetValue(result.Text)
	m.dirty = true

	row, col := 0, result.Selection.Start
	for _, line := range strings.Split(result.Text, "\n") {
		if col <= len(line) {
			break
		}
		col -= len(line) + 1
		row++
	}

	for m.ta.Line() > 0 {
		m.ta.CursorUp()
	}
	for i := 0; i < row; i++ {
		m.ta.CursorDown()
	}
	m.ta.SetCursor(col)
}

// View renders the editor
func (m *EditorModel) View() string {
	var b strings.Builder

	title := m.uri
	if m.dirty {
		title += styles.DirtyMarker.Render(" *")
	}
	b.WriteString(styles.EditorTitle.Render("Editing: "))
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(m.ta.View())
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *EditorModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"ctrl+s", "save"},
		{"ctrl+p", "preview"},
		{"ctrl+b", "bold"},
		{"ctrl+u", "italic"},
		{"ctrl+k", "link"},
		{"alt+1..3", "heading"},
		{"esc", "back"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}
