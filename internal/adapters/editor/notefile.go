package editor

import (
	"fmt"
	"os"
	"strings"
)

// WriteNoteFile stores a note body in a temporary markdown file for editing
func WriteNoteFile(body string) (string, error) {
	f, err := os.CreateTemp("", "roommind-note-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create note file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(body); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write note file: %w", err)
	}
	return f.Name(), nil
}

// ReadNoteFile reads an edited note body back and removes the file
func ReadNoteFile(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read note file: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
