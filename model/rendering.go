package model

import (
	"io"
	"os"
)

// clearScreen moves the cursor home and erases the display
const clearScreen = "\033[H\033[2J"

// TerminalRenderer writes frames to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display writes a frame produced by Universe.String
func (r *TerminalRenderer) Display(frame string) error {
	_, err := io.WriteString(r.Out, frame)
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearScreen)
	return err
}
