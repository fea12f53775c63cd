// Package terminal reports terminal geometry and writes cursor control sequences.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Viewport returns how many map cells fit, given cellWidth columns per cell and
// reservedRows rows kept for UI below the map.
func Viewport(cellWidth, reservedRows int) (cols, rows int) {
	w, h := GetSize()
	if cellWidth < 1 {
		cellWidth = 1
	}
	cols = w / cellWidth
	rows = h - reservedRows
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Home moves the cursor to the top-left corner and clears the screen
func Home(w io.Writer) {
	_, _ = io.WriteString(w, "\x1b[H\x1b[2J")
}

// HideCursor hides the cursor until ShowCursor
func HideCursor(w io.Writer) {
	_, _ = io.WriteString(w, "\x1b[?25l")
}

// ShowCursor makes the cursor visible again
func ShowCursor(w io.Writer) {
	_, _ = io.WriteString(w, "\x1b[?25h")
}
