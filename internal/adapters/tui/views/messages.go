package views

import "marknote/internal/domain"

// CreateMode selects what the create view produces.
type CreateMode int

const (
	CreateModeNote CreateMode = iota
	CreateModeFolder
)

// Messages for switching between views

type SwitchToBrowserMsg struct{}

type SwitchToCreateMsg struct {
	ParentURI string
	Mode      CreateMode
}

type SwitchToDeleteMsg struct {
	Target *domain.TreeNode
}

type SwitchToHelpMsg struct{}

// OpenNoteMsg asks the app to load a note into the editor.
type OpenNoteMsg struct {
	URI string
}

// OpenExternalMsg asks the app to open a note in the external editor.
type OpenExternalMsg struct {
	URI string
}

// ShowPreviewMsg asks the app to render the buffer and show the preview.
type ShowPreviewMsg struct {
	Content string
}

// CreateSuccessMsg reports a completed create operation.
type CreateSuccessMsg struct {
	Message string
}

// DeleteSuccessMsg reports a completed delete operation.
type DeleteSuccessMsg struct {
	Message string
}

// ErrMsg carries an operation failure back to the visible view.
type ErrMsg struct {
	Err error
}
