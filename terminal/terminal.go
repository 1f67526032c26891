package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a TTY
var ErrNotTerminal = errors.New("not a terminal")

// IsTerminal reports whether both stdin and stdout are TTYs
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorsDisabled reports whether the NO_COLOR convention asks for monochrome output
func ColorsDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Open initializes a tcell screen on the controlling terminal
// The returned screen is registered for crash restoration
func Open() (tcell.Screen, error) {
	if !IsTerminal() {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	SetCrashScreen(screen)
	return screen, nil
}

// Close restores the terminal and unregisters the screen from crash handling
func Close(screen tcell.Screen) {
	if screen == nil {
		return
	}
	SetCrashScreen(nil)
	screen.Fini()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
