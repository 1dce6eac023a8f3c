package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener launches the user's preferred terminal editor on a note path.
// Only meaningful for the native backend, where note addresses are real
// filesystem paths.
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a note in the user's preferred editor and waits for it
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a note in the editor.
// This is useful for integrating with bubbletea's ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	ed := o.findEditor()
	if ed == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(ed, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Fall back to whatever common editor is installed
	for _, ed := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(ed); err == nil {
			return path
		}
	}

	return ""
}
