package ports

import "os/exec"

// EditorOpener opens files in the user's external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for opening a file in the editor,
	// for use with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
