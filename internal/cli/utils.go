package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

const (
	defaultWidth = 80
	minWidth     = 40
	maxWidth     = 120
)

// true when f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

// wrap width for rendered markdown, clamped to a readable range
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return clampWidth(width)
}

func clampWidth(width int) int {
	width -= 4 // glamour margins

	if width < minWidth {
		return minWidth
	}

	if width > maxWidth {
		return maxWidth
	}

	return width
}

// reads the source to analyze from path, or from stdin when path is empty or "-"
func ReadSource(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		path = "stdin"
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%s is empty", path)
	}

	return string(data), nil
}
