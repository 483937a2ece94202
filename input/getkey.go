package input

import (
	"fmt"
	"os"

	"github.com/Siri-chan/getkey/key"
	"github.com/Siri-chan/getkey/terminal"
)

// GetKeyRaw puts stdin into raw mode for the duration of a single GetKey
func GetKeyRaw() (key.Key, error) {
	s, err := terminal.MakeRaw(os.Stdin)
	if err != nil {
		return key.None, fmt.Errorf("%w: %w", ErrNoKey, err)
	}
	defer s.Restore()

	return GetKey()
}
