// Package key defines the closed set of keys produced by every reader in this
// module, and the classifier that maps Windows virtual-key codes onto it.
package key

import (
	"fmt"
	"unicode/utf8"
)

// Key is a single normalized keypress
// The high byte holds the Kind, the low 24 bits the payload: a rune for
// Char/Alt/Ctrl, the function key index for F
type Key uint32

// Kind identifies the variant of a Key
type Kind uint8

const (
	KindNone Kind = iota // Zero Key, only ever returned alongside an error

	// Navigation and editing
	KindBackspace
	KindLeft
	KindRight
	KindUp
	KindDown
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindBackTab // Shift+Tab
	KindDelete
	KindInsert

	// Payload carrying
	KindF    // Function key, check Key.Num
	KindChar // Unmodified character, check Key.Rune
	KindAlt  // Alt+character, Rune 0 when the companion key is unknown
	KindCtrl // Ctrl+character, Rune 0 when the companion key is unknown

	KindNull // NUL byte
	KindEsc

	kindCount
)

const (
	kindShift   = 24
	payloadMask = 1<<kindShift - 1
)

// Fixed keys
const (
	None      Key = 0
	Backspace     = Key(KindBackspace) << kindShift
	Left          = Key(KindLeft) << kindShift
	Right         = Key(KindRight) << kindShift
	Up            = Key(KindUp) << kindShift
	Down          = Key(KindDown) << kindShift
	Home          = Key(KindHome) << kindShift
	End           = Key(KindEnd) << kindShift
	PageUp        = Key(KindPageUp) << kindShift
	PageDown      = Key(KindPageDown) << kindShift
	BackTab       = Key(KindBackTab) << kindShift
	Delete        = Key(KindDelete) << kindShift
	Insert        = Key(KindInsert) << kindShift
	Null          = Key(KindNull) << kindShift
	Esc           = Key(KindEsc) << kindShift
)

// MaxF is the highest function key index the classifier can produce
const MaxF = 23

// F returns function key n
// Terminal decoders produce 1-12; the VK classifier produces 0-23
func F(n uint8) Key {
	return Key(KindF)<<kindShift | Key(n)
}

// Char returns an unmodified character key
func Char(r rune) Key {
	return withRune(KindChar, r)
}

// Alt returns an Alt-modified character key
// Alt(0) means Alt was pressed but its companion key is unknown
func Alt(r rune) Key {
	return withRune(KindAlt, r)
}

// Ctrl returns a Ctrl-modified character key
// Ctrl(0) means Ctrl was pressed but its companion key is unknown
func Ctrl(r rune) Key {
	return withRune(KindCtrl, r)
}

func withRune(k Kind, r rune) Key {
	if r < 0 || r > utf8.MaxRune {
		r = utf8.RuneError
	}
	return Key(k)<<kindShift | Key(r)
}

// Kind returns the variant of k
func (k Key) Kind() Kind {
	return Kind(k >> kindShift)
}

// Rune returns the character payload of Char, Alt and Ctrl keys, 0 otherwise
func (k Key) Rune() rune {
	switch k.Kind() {
	case KindChar, KindAlt, KindCtrl:
		return rune(k & payloadMask)
	}
	return 0
}

// Num returns the index of a function key, 0 otherwise
func (k Key) Num() uint8 {
	if k.Kind() != KindF {
		return 0
	}
	return uint8(k & payloadMask)
}

// Valid reports whether k is one of the constructible variants
func (k Key) Valid() bool {
	kind := k.Kind()
	switch {
	case kind == KindNone || kind >= kindCount:
		return false
	case kind == KindF:
		return k&payloadMask <= MaxF
	case kind == KindChar || kind == KindAlt || kind == KindCtrl:
		return k&payloadMask <= utf8.MaxRune
	}
	return k&payloadMask == 0
}

var kindNames = [kindCount]string{
	KindNone:      "None",
	KindBackspace: "Backspace",
	KindLeft:      "Left",
	KindRight:     "Right",
	KindUp:        "Up",
	KindDown:      "Down",
	KindHome:      "Home",
	KindEnd:       "End",
	KindPageUp:    "PageUp",
	KindPageDown:  "PageDown",
	KindBackTab:   "BackTab",
	KindDelete:    "Delete",
	KindInsert:    "Insert",
	KindF:         "F",
	KindChar:      "Char",
	KindAlt:       "Alt",
	KindCtrl:      "Ctrl",
	KindNull:      "Null",
	KindEsc:       "Esc",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// String renders k the way it would be written as a constructor call,
// e.g. Left, F(5), Char('a'), Alt('\x00')
func (k Key) String() string {
	if !k.Valid() && k != None {
		return fmt.Sprintf("Key(%#x)", uint32(k))
	}
	switch kind := k.Kind(); kind {
	case KindF:
		return fmt.Sprintf("F(%d)", k.Num())
	case KindChar, KindAlt, KindCtrl:
		return fmt.Sprintf("%s(%q)", kind, k.Rune())
	default:
		return kind.String()
	}
}
