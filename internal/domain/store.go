package domain

import "time"

// RootFolderID is the well-known id of the virtual store's root folder.
const RootFolderID = "root"

// RootFolderName is the display name given to a synthesized root folder.
const RootFolderName = "Notes"

// StoredNote is the virtual backend's persisted representation of a note.
// The name is the note's identity across the whole store; two folders cannot
// hold same-named notes.
type StoredNote struct {
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	FolderID   string    `json:"folderId"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// StoredFolder is the virtual backend's persisted representation of a
// directory node. ParentID is empty only for the root folder.
type StoredFolder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsRoot reports whether the folder is the tree root.
func (f StoredFolder) IsRoot() bool {
	return f.ParentID == ""
}
