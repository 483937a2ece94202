package input

import (
	"errors"
	"fmt"

	"github.com/Siri-chan/getkey/key"
)

// ErrNoKey is matched by every failure from GetKey
// The underlying cause (io.EOF, an OS error, key.ErrUnrecognized) stays in the
// chain for errors.Is and errors.As
var ErrNoKey = errors.New("input: no key")

// Reader pairs a key source with the classifier it needs, if any
type Reader struct {
	src  Source
	code CodeSource
}

// NewReader reads keys from a source that decodes on its own
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// NewCodeReader reads raw codes and runs them through key.Classify
func NewCodeReader(src CodeSource) *Reader {
	return &Reader{code: src}
}

// GetKey blocks for one key
// Exactly one attempt is made; an unrecognized code is an error, not a retry
func (r *Reader) GetKey() (key.Key, error) {
	if r.code != nil {
		c, err := r.code.ReadCode()
		if err != nil {
			return key.None, fmt.Errorf("%w: %w", ErrNoKey, err)
		}
		k, err := key.Classify(c)
		if err != nil {
			return key.None, fmt.Errorf("%w: %w", ErrNoKey, err)
		}
		return k, nil
	}

	k, err := r.src.ReadKey()
	if err != nil {
		return key.None, fmt.Errorf("%w: %w", ErrNoKey, err)
	}
	return k, nil
}
