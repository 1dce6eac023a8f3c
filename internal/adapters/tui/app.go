package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/adapters/editor"
	"marknote/internal/adapters/tui/views"
	"marknote/internal/application/commands"
	"marknote/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewEditor
	ViewPreview
	ViewCreate
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store    ports.NoteStore
	renderer ports.Renderer
	opener   *editor.Opener

	state   ViewState
	browser *views.BrowserModel
	editor  *views.EditorModel
	preview *views.PreviewModel
	create  *views.CreateModel
	delete  *views.DeleteModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. opener may be nil when no external
// editor can open the backend's addresses.
func NewApp(store ports.NoteStore, renderer ports.Renderer, opener *editor.Opener) *App {
	return &App{
		store:    store,
		renderer: renderer,
		opener:   opener,
		state:    ViewBrowser,
		browser:  views.NewBrowserModel(store, opener != nil),
		editor:   views.NewEditorModel(store),
		preview:  views.NewPreviewModel(),
		create:   views.NewCreateModel(store),
		delete:   views.NewDeleteModel(store),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

type noteLoadedMsg struct {
	uri     string
	content string
}

type previewReadyMsg struct {
	rendered string
}

type externalDoneMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.preview.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.editor.Update(msg)
		return a, cmd

	// View switching messages
	case views.OpenNoteMsg:
		return a, a.openNote(msg.URI)

	case noteLoadedMsg:
		a.editor.SetNote(msg.uri, msg.content)
		a.state = ViewEditor
		return a, a.editor.Init()

	case views.ShowPreviewMsg:
		return a, a.renderPreview(msg.Content)

	case previewReadyMsg:
		a.preview.SetContent(msg.rendered)
		a.state = ViewPreview
		return a, nil

	case views.SwitchToEditorMsg:
		a.state = ViewEditor
		return a, nil

	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetTarget(msg.ParentURI, msg.Mode)
		return a, a.create.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Target)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.CreateSuccessMsg, views.DeleteSuccessMsg:
		a.state = ViewBrowser
		_, cmd := a.browser.Update(msg)
		return a, cmd

	case views.OpenExternalMsg:
		return a, a.openExternal(msg.URI)

	case externalDoneMsg:
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewEditor:
		_, cmd = a.editor.Update(msg)
	case ViewPreview:
		_, cmd = a.preview.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// openNote loads a note off the event loop. On failure the browser keeps
// the current state and shows the error.
func (a *App) openNote(uri string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewOpenNoteCommand(a.store, uri)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		return noteLoadedMsg{uri: result.URI, content: result.Content}
	}
}

func (a *App) renderPreview(content string) tea.Cmd {
	return func() tea.Msg {
		rendered, err := a.renderer.Render(content)
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		return previewReadyMsg{rendered: rendered}
	}
}

func (a *App) openExternal(uri string) tea.Cmd {
	if a.opener == nil {
		return nil
	}

	cmd, err := a.opener.Command(uri)
	if err != nil {
		return func() tea.Msg {
			return views.ErrMsg{Err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalDoneMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEditor:
		return a.editor.View()
	case ViewPreview:
		return a.preview.View()
	case ViewCreate:
		return a.create.View()
	case ViewDelete:
		return a.delete.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
