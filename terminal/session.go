package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by MakeRaw when the file is not a terminal
var ErrNotTerminal = errors.New("terminal: not a terminal")

// active is the most recent session not yet restored, for EmergencyReset
var active atomic.Pointer[Session]

// Session is a terminal held in raw mode: keystrokes are delivered one at a
// time, without echo, and control characters such as Ctrl+C arrive as input
// instead of raising signals
type Session struct {
	fd int

	mu       sync.Mutex
	oldState *term.State
}

// MakeRaw puts f, usually os.Stdin, into raw mode
// The caller owns the session and must call Restore
func MakeRaw(f *os.File) (*Session, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: enter raw mode: %w", err)
	}
	s := &Session{fd: fd, oldState: old}
	active.Store(s)
	return s, nil
}

// Restore puts the terminal back into the mode it had before MakeRaw
// Safe to call multiple times
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.oldState == nil {
		return nil
	}
	active.CompareAndSwap(s, nil)
	err := term.Restore(s.fd, s.oldState)
	s.oldState = nil
	if err != nil {
		return fmt.Errorf("terminal: restore mode: %w", err)
	}
	return nil
}

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
