package terminal

import "github.com/Siri-chan/getkey/key"

// escapeSequence maps the bytes after an escape introducer to a key
type escapeSequence struct {
	seq string
	key key.Key
}

// Known CSI sequences: the bytes after ESC [
// Modified forms (ESC [ 1 ; mod X) are deliberately absent and get discarded
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", key.Up},
	{"B", key.Down},
	{"C", key.Right},
	{"D", key.Left},
	{"Z", key.BackTab}, // Shift+Tab

	// Navigation
	{"H", key.Home},
	{"F", key.End},
	{"1~", key.Home},
	{"7~", key.Home},
	{"4~", key.End},
	{"8~", key.End},
	{"2~", key.Insert},
	{"3~", key.Delete},
	{"5~", key.PageUp},
	{"6~", key.PageDown},

	// Function keys (xterm)
	{"11~", key.F(1)},
	{"12~", key.F(2)},
	{"13~", key.F(3)},
	{"14~", key.F(4)},
	{"15~", key.F(5)},
	{"17~", key.F(6)},
	{"18~", key.F(7)},
	{"19~", key.F(8)},
	{"20~", key.F(9)},
	{"21~", key.F(10)},
	{"23~", key.F(11)},
	{"24~", key.F(12)},

	// Function keys (linux console)
	{"[A", key.F(1)},
	{"[B", key.F(2)},
	{"[C", key.F(3)},
	{"[D", key.F(4)},
	{"[E", key.F(5)},
}

// SS3 sequences: the byte after ESC O
var ss3Sequences = []escapeSequence{
	{"P", key.F(1)},
	{"Q", key.F(2)},
	{"R", key.F(3)},
	{"S", key.F(4)},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]key.Key {
	m := make(map[string]key.Key, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s.key
	}
	return m
}

// lookupCSI performs zero-alloc map lookup
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (key.Key, bool) {
	k, ok := csiMap[string(seq)]
	return k, ok
}

func lookupSS3(seq []byte) (key.Key, bool) {
	k, ok := ss3Map[string(seq)]
	return k, ok
}
