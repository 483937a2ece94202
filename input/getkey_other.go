//go:build !windows

package input

import (
	"os"
	"sync"

	"github.com/Siri-chan/getkey/key"
	"github.com/Siri-chan/getkey/terminal"
)

// NewStdinReader decodes the stdin byte stream
// Bytes buffered past the returned key belong to the next call on the same
// reader; prefer GetKey unless stdin is read nowhere else
func NewStdinReader() *Reader {
	return NewReader(terminal.NewDecoder(os.Stdin))
}

// Process-wide stdin reader shared by GetKey, so keys delivered in one read
// (paste, key repeat) are returned by later calls instead of dropped
var (
	stdinMu     sync.Mutex
	stdinFile   *os.File
	stdinReader *Reader
)

// GetKey reads one key from stdin
// The terminal is expected to already be in raw mode; see GetKeyRaw
func GetKey() (key.Key, error) {
	stdinMu.Lock()
	defer stdinMu.Unlock()

	// os.Stdin may have been replaced; its buffered bytes went with it
	if stdinReader == nil || stdinFile != os.Stdin {
		stdinFile = os.Stdin
		stdinReader = NewStdinReader()
	}
	return stdinReader.GetKey()
}
