package terminal

import (
	"io"
)

// resetSequence undoes output state a crashed program may leave behind:
// mouse reporting, hidden cursor, alternate screen and colors. RIS goes last
// since it resets everything the terminal supports it for.
const resetSequence = "\x1b[?1000l\x1b[?1006l" + // Mouse click and SGR reporting off
	"\x1b[?25h" + // Cursor visible
	"\x1b[?1049l" + // Main screen
	"\x1b[0m" + // Default colors
	"\x1bc" // Reset to Initial State

// EmergencyReset returns the terminal to a usable state after a crash
// The raw mode session still open, if any, is restored from its saved state;
// otherwise the tty is forced back to cooked mode where the platform allows.
// Errors are ignored.
func EmergencyReset(w io.Writer) {
	io.WriteString(w, resetSequence)
	if s, ok := w.(interface{ Sync() error }); ok {
		s.Sync()
	}

	if s := active.Load(); s != nil && s.Restore() == nil {
		return
	}
	resetTerminalMode()
}
