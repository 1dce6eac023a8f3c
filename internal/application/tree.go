package application

import (
	"marknote/internal/domain"
	"marknote/internal/ports"
)

// BuildTree returns the root node of the sidebar tree with its immediate
// children loaded. A failed listing yields an empty tree rather than an
// error so the sidebar stays usable.
func BuildTree(store ports.NoteStore) *domain.TreeNode {
	root := &domain.TreeNode{
		Entry: domain.Entry{
			Name:  domain.RootFolderName,
			URI:   store.RootURI(),
			IsDir: true,
		},
		IsExpanded: true,
	}
	loadChildren(store, root)
	return root
}

// LoadChildren populates a folder node's children on first expand.
func LoadChildren(store ports.NoteStore, node *domain.TreeNode) error {
	if node.Loaded || !node.Entry.IsDir {
		return nil
	}
	return loadChildren(store, node)
}

func loadChildren(store ports.NoteStore, node *domain.TreeNode) error {
	entries, err := store.List(node.Entry.URI)
	if err != nil {
		return err
	}

	node.Children = node.Children[:0]
	for _, entry := range entries {
		node.Children = append(node.Children, &domain.TreeNode{
			Entry:  entry,
			Parent: node,
		})
	}
	node.Loaded = true
	return nil
}
