//go:build windows

package input

import (
	"github.com/Siri-chan/getkey/key"
	"github.com/Siri-chan/getkey/terminal"
)

// NewStdinReader reads console input records and classifies their VK codes
func NewStdinReader() *Reader {
	return NewCodeReader(terminal.ConsoleSource{})
}

// GetKey blocks until a key is pressed on the console
func GetKey() (key.Key, error) {
	return NewStdinReader().GetKey()
}
