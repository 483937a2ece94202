package terminal

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestMakeRaw_NotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(r) {
		t.Fatal("pipe reported as terminal")
	}
	s, err := MakeRaw(r)
	if s != nil || !errors.Is(err, ErrNotTerminal) {
		t.Errorf("MakeRaw(pipe) = %v, %v; want nil, ErrNotTerminal", s, err)
	}
}

func TestSession_RestoreIdempotent(t *testing.T) {
	// A session with no saved state never touches the fd
	s := &Session{fd: -1}
	if err := s.Restore(); err != nil {
		t.Errorf("Restore() = %v", err)
	}
	if err := s.Restore(); err != nil {
		t.Errorf("second Restore() = %v", err)
	}
}

func TestEmergencyReset_WritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?1000l", "\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, seq) {
			t.Errorf("output %q missing %q", out, seq)
		}
	}
	if !strings.HasSuffix(out, "\x1bc") {
		t.Errorf("output %q does not end with RIS", out)
	}
}
