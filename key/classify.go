package key

import (
	"errors"
	"fmt"
)

// ErrUnrecognized is matched by every Classify failure
var ErrUnrecognized = errors.New("key: unrecognized code")

// UnrecognizedError carries the code Classify could not map
type UnrecognizedError struct {
	Code Code
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("key: unrecognized code %#04x", uint16(e.Code))
}

func (e *UnrecognizedError) Is(target error) bool {
	return target == ErrUnrecognized
}

// Classify maps a virtual-key code to a Key
// Cases are disjoint and checked in table order; any code not listed fails
// with an *UnrecognizedError
func Classify(c Code) (Key, error) {
	switch {
	case c == VKBack:
		return Backspace, nil
	case c == VKLeft:
		return Left, nil
	case c == VKRight:
		return Right, nil
	case c == VKUp:
		return Up, nil
	case c == VKDown:
		return Down, nil
	case c == VKHome:
		return Home, nil
	case c == VKEnd:
		return End, nil
	case c == VKPrior:
		return PageUp, nil
	case c == VKNext:
		return PageDown, nil
	case c == VKBackTab:
		return BackTab, nil
	case c == VKDelete:
		return Delete, nil
	case c == VKInsert:
		return Insert, nil

	// VK_F1 lands on F(0); indices run one below the key label up to F(23)
	case c >= VKF1 && c <= VKF24:
		return F(uint8(c - VKF1)), nil

	// Space and the digit row are their own ASCII values
	case c == VKSpace, c >= VK0 && c <= VK9:
		return Char(rune(c)), nil

	// Keypad digits sit 0x30 above the digit row
	case c >= VKNumpad0 && c <= VKNumpad9:
		return Char(rune(c - 0x30)), nil

	// Letter codes are uppercase ASCII; without shift state, report lowercase
	case c >= VKA && c <= VKZ:
		return Char(rune(c | 0x20)), nil

	case c == VKMenu:
		return Alt(0), nil
	case c == VKControl:
		return Ctrl(0), nil
	case c == VKNull:
		return Null, nil
	case c == VKEscape:
		return Esc, nil
	}
	return None, &UnrecognizedError{Code: c}
}
