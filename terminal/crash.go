package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Raw sequences for restoring a terminal left in an unknown state
var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset writes the sequences that undo alternate screen, hidden
// cursor and styling. It does not restore termios; Session.Close does that
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and
// prints the stack trace. Call it from a deferred recover outside With
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(os.Stdout)

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mREVERSI CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}
