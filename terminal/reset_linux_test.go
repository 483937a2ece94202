package terminal

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestSetCooked(t *testing.T) {
	// Flags as term.MakeRaw leaves them, plus unrelated bits that must survive
	tio := &unix.Termios{
		Iflag: unix.IUTF8,
		Cflag: unix.CS8,
		Lflag: unix.NOFLSH,
	}
	setCooked(tio)

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"iflag", uint32(tio.Iflag), uint32(unix.ICRNL | unix.IXON | unix.IUTF8)},
		{"oflag", uint32(tio.Oflag), uint32(unix.OPOST)},
		{"lflag", uint32(tio.Lflag), uint32(unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN | unix.NOFLSH)},
		{"cflag", uint32(tio.Cflag), uint32(unix.CS8)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %#x, want %#x", c.name, c.got, c.want)
		}
	}
	if tio.Cc[unix.VMIN] != 1 || tio.Cc[unix.VTIME] != 0 {
		t.Errorf("VMIN/VTIME = %d/%d, want 1/0", tio.Cc[unix.VMIN], tio.Cc[unix.VTIME])
	}
}
