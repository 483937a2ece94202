//go:build windows

package terminal

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Siri-chan/getkey/key"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW = kernel32.NewProc("ReadConsoleInputW")
)

// Console input record event types
const (
	keyEvent = 0x0001
)

// ErrNoInputHandle is returned when the console input handle can't be obtained
var ErrNoInputHandle = errors.New("terminal: console input handle unavailable")

// keyEventRecord mirrors KEY_EVENT_RECORD
type keyEventRecord struct {
	KeyDown         int32
	RepeatCount     uint16
	VirtualKeyCode  uint16
	VirtualScanCode uint16
	UnicodeChar     uint16
	ControlKeyState uint32
}

// inputRecord mirrors INPUT_RECORD
// KEY_EVENT_RECORD is the largest member of the event union, so the other
// event kinds fit in the same space
type inputRecord struct {
	EventType uint16
	_         uint16
	KeyEvent  keyEventRecord
}

// ReadCode blocks until a key is pressed on the console and returns its
// virtual-key code
// Mouse, focus, resize, menu and key-up records are discarded. Fails at once
// if the input handle is unavailable.
func ReadCode() (key.Code, error) {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoInputHandle, err)
	}
	if h == 0 || h == windows.InvalidHandle {
		return 0, ErrNoInputHandle
	}

	var rec inputRecord
	var read uint32
	for {
		r1, _, e1 := procReadConsoleInputW.Call(
			uintptr(h),
			uintptr(unsafe.Pointer(&rec)),
			1,
			uintptr(unsafe.Pointer(&read)),
		)
		if r1 == 0 {
			return 0, fmt.Errorf("terminal: read console input: %w", e1)
		}

		if read == 1 && rec.EventType == keyEvent && rec.KeyEvent.KeyDown != 0 {
			return key.Code(rec.KeyEvent.VirtualKeyCode), nil
		}

		// Not a key-down, keep waiting without starving other goroutines
		runtime.Gosched()
	}
}

// ConsoleSource reads virtual-key codes from the process console
type ConsoleSource struct{}

// ReadCode implements input.CodeSource
func (ConsoleSource) ReadCode() (key.Code, error) {
	return ReadCode()
}
