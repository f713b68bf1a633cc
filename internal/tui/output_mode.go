package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode is the way results are presented on stdout.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and NO_COLOR.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a lipgloss-styled summary.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea form.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

const defaultTerminalWidth = 80

// DetectOutputMode picks the output mode from the flags, the environment and
// whether stdout is a terminal.
//
// plain and noColor force OutputModePlain. forceColor yields at least
// OutputModeStyled even when stdout is redirected. NO_COLOR, TERM=dumb and a
// non-terminal stdout give plain output; CI gives styled output.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return DetectOutputModeFor(os.Stdout, forceColor, noColor, plain)
}

// DetectOutputModeFor is DetectOutputMode for an arbitrary destination. Only
// an *os.File attached to a terminal counts as a TTY; buffers and pipes get
// plain output unless forceColor is set.
func DetectOutputModeFor(w io.Writer, forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, IsTerminalWriter(w), os.Getenv)
}

// IsTerminalWriter reports whether w is a file descriptor attached to a
// terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func detectOutputMode(forceColor, noColor, plain, isTTY bool, getenv func(string) string) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if forceColor {
		if isTTY && getenv("CI") == "" {
			return OutputModeInteractive
		}
		return OutputModeStyled
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" || !isTTY {
		return OutputModePlain
	}
	if getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
