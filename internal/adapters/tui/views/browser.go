package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/tui/styles"
	"marknote/internal/application"
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// BrowserKeyMap defines key bindings for the file browser
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	NewNote   key.Binding
	NewFolder key.Binding
	Delete    key.Binding
	External  key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open/toggle"),
	),
	NewNote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	NewFolder: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "new folder"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	External: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "external editor"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the sidebar file tree
type BrowserModel struct {
	ViewState

	store       ports.NoteStore
	hasExternal bool

	root      *domain.TreeNode
	flatNodes []*domain.TreeNode
	cursor    int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.NoteStore, hasExternal bool) *BrowserModel {
	return &BrowserModel{
		store:       store,
		hasExternal: hasExternal,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	// A failed listing shows an empty tree instead of blocking the sidebar.
	return treeLoadedMsg{root: application.BuildTree(m.store)}
}

type treeLoadedMsg struct {
	root *domain.TreeNode
}

type childrenLoadedMsg struct{}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.root = msg.root
		m.refreshFlatNodes()
		return m, nil

	case childrenLoadedMsg:
		m.refreshFlatNodes()
		return m, nil

	case ErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case CreateSuccessMsg:
		m.SetMessage(msg.Message, false)
		return m, m.Reload()

	case DeleteSuccessMsg:
		m.SetMessage(msg.Message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.Entry.IsDir && node.IsExpanded {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil && node.Parent.Parent != nil {
					// Move to parent
					for i, n := range m.flatNodes {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil {
				if !node.Entry.IsDir {
					if key.Matches(msg, BrowserKeys.Enter) {
						return m, func() tea.Msg {
							return OpenNoteMsg{URI: node.Entry.URI}
						}
					}
					return m, nil
				}
				if !node.IsExpanded {
					node.Expand()
					return m, m.loadNodeChildren(node)
				} else if key.Matches(msg, BrowserKeys.Enter) {
					node.Collapse()
					m.refreshFlatNodes()
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.NewNote):
			return m, m.switchToCreate(CreateModeNote)

		case key.Matches(msg, BrowserKeys.NewFolder):
			return m, m.switchToCreate(CreateModeFolder)

		case key.Matches(msg, BrowserKeys.Delete):
			if node := m.selectedNode(); node != nil && !node.Entry.IsDir {
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{Target: node}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.External):
			if node := m.selectedNode(); node != nil && !node.Entry.IsDir && m.hasExternal {
				return m, func() tea.Msg {
					return OpenExternalMsg{URI: node.Entry.URI}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// switchToCreate targets the selected folder, or the selection's parent when
// a note is selected.
func (m *BrowserModel) switchToCreate(mode CreateMode) tea.Cmd {
	parentURI := m.store.RootURI()
	if node := m.selectedNode(); node != nil {
		if node.Entry.IsDir {
			parentURI = node.Entry.URI
		} else if node.Parent != nil {
			parentURI = node.Parent.Entry.URI
		}
	}
	return func() tea.Msg {
		return SwitchToCreateMsg{ParentURI: parentURI, Mode: mode}
	}
}

func (m *BrowserModel) loadNodeChildren(node *domain.TreeNode) tea.Cmd {
	return func() tea.Msg {
		if err := application.LoadChildren(m.store, node); err != nil {
			return ErrMsg{err}
		}
		return childrenLoadedMsg{}
	}
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("Marknote"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Markdown Notes"))
	b.WriteString("\n\n")

	if len(m.flatNodes) == 0 {
		b.WriteString(styles.MutedText.Render("No notes yet. Press n to create one."))
		b.WriteString("\n")
	}

	// Tree
	for i, node := range m.flatNodes {
		b.WriteString(m.renderNode(node, i == m.cursor))
		b.WriteString("\n")
	}

	// Message
	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth()-1)

	// Prefix (expand indicator)
	var prefix string
	if !node.Entry.IsDir {
		prefix = styles.TreeLeaf
	} else if node.IsExpanded {
		prefix = styles.TreeExpanded
	} else {
		prefix = styles.TreeCollapsed
	}

	text := node.Entry.Name
	style := styles.NodeNote
	if node.Entry.IsDir {
		style = styles.NodeFolder
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"enter", "open"},
		{"n", "new note"},
		{"f", "new folder"},
		{"d", "delete"},
		{"?", "help"},
		{"q", "quit"},
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

// Reload reloads the tree from the store
func (m *BrowserModel) Reload() tea.Cmd {
	m.root = nil
	m.flatNodes = nil
	m.cursor = 0
	return m.loadTree
}
