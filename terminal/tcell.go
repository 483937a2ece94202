package terminal

import (
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/Siri-chan/getkey/key"
)

// ErrScreenClosed is returned once the tcell screen has been finalized
var ErrScreenClosed = errors.New("terminal: screen closed")

// TcellSource reads keys through a tcell screen
// The screen owns raw mode; Init it before reading and Fini it when done.
type TcellSource struct {
	screen tcell.Screen
}

// NewTcellSource wraps an initialized screen
func NewTcellSource(s tcell.Screen) *TcellSource {
	return &TcellSource{screen: s}
}

// ReadKey blocks until a key event arrives
// Resize, mouse, paste and focus events, and keys outside the vocabulary,
// are discarded
func (s *TcellSource) ReadKey() (key.Key, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return key.None, ErrScreenClosed
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if k, ok := TcellKey(kev); ok {
			return k, nil
		}
	}
}

// TcellKey converts a tcell key event, reporting false for keys outside the
// vocabulary (F13 and above, keypad specials)
func TcellKey(ev *tcell.EventKey) (key.Key, bool) {
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		r := ev.Rune()
		switch mod := ev.Modifiers(); {
		case mod&tcell.ModAlt != 0:
			return key.Alt(r), true
		case mod&tcell.ModCtrl != 0:
			return key.Ctrl(unicode.ToLower(r)), true
		}
		return key.Char(r), true

	case tcell.KeyUp:
		return key.Up, true
	case tcell.KeyDown:
		return key.Down, true
	case tcell.KeyLeft:
		return key.Left, true
	case tcell.KeyRight:
		return key.Right, true
	case tcell.KeyHome:
		return key.Home, true
	case tcell.KeyEnd:
		return key.End, true
	case tcell.KeyPgUp:
		return key.PageUp, true
	case tcell.KeyPgDn:
		return key.PageDown, true
	case tcell.KeyBacktab:
		return key.BackTab, true
	case tcell.KeyDelete:
		return key.Delete, true
	case tcell.KeyInsert:
		return key.Insert, true
	case tcell.KeyEscape:
		return key.Esc, true
	case tcell.KeyEnter:
		return key.Char('\n'), true
	case tcell.KeyTab:
		return key.Char('\t'), true
	// tcell folds the 0x08 and 0x7f bytes into KeyBackspace, so a legacy
	// Ctrl+H arrives here as Backspace where the byte decoder reports
	// Ctrl('h'). KeyCtrlH (kitty/win32 reporting) stays Ctrl('h') below.
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Backspace, true
	// The NUL byte is posted as Ctrl+Space
	case tcell.KeyNUL, tcell.KeyCtrlSpace:
		return key.Null, true

	// Ctrl+special, same runes the byte decoder produces
	case tcell.KeyCtrlBackslash:
		return key.Ctrl('4'), true
	case tcell.KeyCtrlRightSq:
		return key.Ctrl('5'), true
	case tcell.KeyCtrlCarat:
		return key.Ctrl('6'), true
	case tcell.KeyCtrlUnderscore:
		return key.Ctrl('7'), true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.F(uint8(k-tcell.KeyF1) + 1), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Ctrl(rune('a' + (k - tcell.KeyCtrlA))), true
	}

	return key.None, false
}
