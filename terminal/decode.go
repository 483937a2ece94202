package terminal

import (
	"unicode/utf8"

	"github.com/Siri-chan/getkey/key"
)

// maxCSILen bounds the scan for a CSI terminator; longer runs are garbage
const maxCSILen = 32

// decode parses the first key from data, which holds every byte delivered so
// far. It returns the key and the bytes consumed.
// n == 0: data ends mid-sequence, more input is needed
// k == key.None, n > 0: the bytes were not a key (mouse report, unknown
// sequence, invalid UTF-8) and are dropped
func decode(data []byte) (k key.Key, n int) {
	b := data[0]

	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\r', b == '\n':
		return key.Char('\n'), 1
	case b == '\t':
		return key.Char('\t'), 1
	case b == 0x7f:
		return key.Backspace, 1
	case b == 0x00:
		return key.Null, 1
	case b >= 0x01 && b <= 0x1a:
		return key.Ctrl(rune('a' + b - 1)), 1
	case b >= 0x1c && b <= 0x1f:
		return key.Ctrl(rune('4' + b - 0x1c)), 1
	}

	r, size := decodeChar(data)
	if size == 0 {
		return key.None, 0
	}
	if r == utf8.RuneError {
		return key.None, size
	}
	return key.Char(r), size
}

// decodeChar decodes one UTF-8 character; size 0 means it is incomplete
func decodeChar(data []byte) (rune, int) {
	if !utf8.FullRune(data) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(data)
}

// decodeEscape handles everything starting with ESC
// A lone ESC at the end of the delivered bytes is the Esc key itself
func decodeEscape(data []byte) (key.Key, int) {
	if len(data) == 1 {
		return key.Esc, 1
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		return decodeSS3(data)
	}

	// ESC + character -> Alt
	r, size := decodeChar(data[1:])
	if size == 0 {
		return key.None, 0
	}
	if r == utf8.RuneError {
		return key.None, 1 + size
	}
	return key.Alt(r), 1 + size
}

// decodeCSI parses ESC [ ... without allocation
func decodeCSI(data []byte) (key.Key, int) {
	// ESC [ with nothing after it was typed as Alt+[
	if len(data) == 2 {
		return key.Alt('['), 2
	}

	// X10 mouse: ESC [ M Cb Cx Cy
	if data[2] == 'M' {
		if len(data) < 6 {
			return key.None, 0
		}
		return key.None, 6
	}

	// Scan to the final byte; '[' is not final, so the linux console form
	// ESC [ [ A runs through to the letter
	end := 2
	for end < len(data) && end < maxCSILen {
		b := data[end]
		if b < 0x20 || b > 0x7e {
			// Malformed, drop what was scanned before the offending byte
			return key.None, end
		}
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if k, ok := lookupCSI(data[2:end]); ok {
				return k, end
			}
			// Unknown but well-formed: SGR mouse, modified keys, reports
			return key.None, end
		}
	}

	if end >= maxCSILen {
		return key.None, end
	}
	return key.None, 0 // Incomplete
}

// decodeSS3 parses ESC O x
func decodeSS3(data []byte) (key.Key, int) {
	// ESC O with nothing after it was typed as Alt+O
	if len(data) == 2 {
		return key.Alt('O'), 2
	}
	if k, ok := lookupSS3(data[2:3]); ok {
		return k, 3
	}
	// Unknown SS3, consume to prevent garbage
	return key.None, 3
}
