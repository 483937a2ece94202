package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/Siri-chan/getkey/key"
)

// readChunk is the size of a single read from the underlying stream
const readChunk = 256

// Decoder reads keys from a raw terminal byte stream
// The terminal must already deliver keystrokes unbuffered and without echo;
// see MakeRaw. A Decoder is not safe for concurrent use.
type Decoder struct {
	r   io.Reader
	err error // sticky read error, reported once buffered bytes run out

	// Persistent buffer for stream assembly; holds bytes of a partial
	// sequence or keys delivered in the same read as the last one returned
	buf []byte
}

// NewDecoder creates a decoder reading from r, usually os.Stdin
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:   r,
		buf: make([]byte, 0, readChunk),
	}
}

// ReadKey blocks until one key has been decoded
// Bytes that don't form a key are discarded without returning. At end of
// input the error wraps io.EOF.
func (d *Decoder) ReadKey() (key.Key, error) {
	for {
		for len(d.buf) > 0 {
			k, n := decode(d.buf)
			if n == 0 {
				break // Incomplete, wait for more data
			}
			d.consume(n)
			if k != key.None {
				return k, nil
			}
		}

		if err := d.fill(); err != nil {
			return key.None, err
		}
	}
}

// Buffered returns the number of bytes read but not yet decoded
func (d *Decoder) Buffered() int {
	return len(d.buf)
}

// fill appends one read worth of data to the buffer
func (d *Decoder) fill() error {
	if d.err != nil {
		return d.err
	}

	var chunk [readChunk]byte
	n, err := d.r.Read(chunk[:])
	d.buf = append(d.buf, chunk[:n]...)

	if err != nil {
		if errors.Is(err, io.EOF) {
			d.err = fmt.Errorf("terminal: input closed: %w", io.EOF)
		} else {
			d.err = fmt.Errorf("terminal: read input: %w", err)
		}
		// Let the caller decode what arrived with the error first
		if n == 0 {
			return d.err
		}
	}
	return nil
}

// consume drops n decoded bytes from the front of the buffer
func (d *Decoder) consume(n int) {
	if n >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	copy(d.buf, d.buf[n:])
	d.buf = d.buf[:len(d.buf)-n]
}
