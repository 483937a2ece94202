package key

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// keyToName maps fixed keys to canonical config string names
var keyToName = map[Key]string{
	Backspace: "backspace",
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	Home:      "home",
	End:       "end",
	PageUp:    "page_up",
	PageDown:  "page_down",
	BackTab:   "backtab",
	Delete:    "delete",
	Insert:    "insert",
	Null:      "null",
	Esc:       "esc",
}

// Named characters that can't be written as a bare single-char name
var runeToName = map[rune]string{
	' ':  "space",
	'\t': "tab",
	'\n': "enter",
}

var (
	nameToKey  map[string]Key
	nameToRune map[string]rune
)

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+3)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["shift_tab"] = BackTab
	nameToKey["escape"] = Esc
	nameToKey["page_dn"] = PageDown

	nameToRune = make(map[string]rune, len(runeToName)+1)
	for r, v := range runeToName {
		nameToRune[v] = r
	}
	nameToRune["return"] = '\n'
}

// Name returns the canonical config name for k
// Returns empty string for None and for characters with no printable name
func (k Key) Name() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	switch k.Kind() {
	case KindF:
		return "f" + strconv.Itoa(int(k.Num()))
	case KindChar:
		return runeName(k.Rune())
	case KindAlt:
		return modName("alt", k.Rune())
	case KindCtrl:
		return modName("ctrl", k.Rune())
	}
	return ""
}

func modName(prefix string, r rune) string {
	if r == 0 {
		return prefix
	}
	name := runeName(r)
	if name == "" {
		return ""
	}
	return prefix + "_" + name
}

func runeName(r rune) string {
	if name, ok := runeToName[r]; ok {
		return name
	}
	if unicode.IsPrint(r) && r != utf8.RuneError {
		return string(r)
	}
	return ""
}

// ByName resolves a config name to a Key
// Multi-character names are case-insensitive; single characters are taken
// literally so "A" and "a" stay distinct
func ByName(name string) (Key, bool) {
	if r, ok := singleRune(name); ok {
		return Char(r), true
	}

	lower := strings.ToLower(name)
	if k, ok := nameToKey[lower]; ok {
		return k, true
	}
	if r, ok := nameToRune[lower]; ok {
		return Char(r), true
	}

	switch lower {
	case "alt":
		return Alt(0), true
	case "ctrl":
		return Ctrl(0), true
	}

	if rest, ok := strings.CutPrefix(lower, "alt_"); ok {
		if r, ok := parseRuneName(name[len("alt_"):], rest); ok {
			return Alt(r), true
		}
		return None, false
	}
	if rest, ok := strings.CutPrefix(lower, "ctrl_"); ok {
		if r, ok := parseRuneName(name[len("ctrl_"):], rest); ok {
			return Ctrl(r), true
		}
		return None, false
	}

	if digits, ok := strings.CutPrefix(lower, "f"); ok && digits != "" {
		n, err := strconv.ParseUint(digits, 10, 8)
		if err == nil && n <= MaxF {
			return F(uint8(n)), true
		}
	}

	return None, false
}

// parseRuneName resolves the character part of a modifier name: raw keeps the
// original case for single characters, lower is used for named characters
func parseRuneName(raw, lower string) (rune, bool) {
	if r, ok := singleRune(raw); ok {
		return r, true
	}
	r, ok := nameToRune[lower]
	return r, ok
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
