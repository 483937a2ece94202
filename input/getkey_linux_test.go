package input

import (
	"fmt"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/Siri-chan/getkey/key"
)

// openPTY returns the controller and terminal ends of a new pseudo-terminal
func openPTY(t *testing.T) (ptm, pts *os.File) {
	t.Helper()
	ptm, err := os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		t.Skipf("no pseudo-terminal support: %v", err)
	}
	fd := int(ptm.Fd())
	if err := unix.IoctlSetPointerInt(fd, unix.TIOCSPTLCK, 0); err != nil {
		ptm.Close()
		t.Skipf("unlockpt: %v", err)
	}
	n, err := unix.IoctlGetInt(fd, unix.TIOCGPTN)
	if err != nil {
		ptm.Close()
		t.Skipf("ptsname: %v", err)
	}
	pts, err = os.OpenFile(fmt.Sprintf("/dev/pts/%d", n), os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		ptm.Close()
		t.Skipf("open pts: %v", err)
	}
	t.Cleanup(func() {
		pts.Close()
		ptm.Close()
	})
	return ptm, pts
}

func TestGetKeyRaw_PTY(t *testing.T) {
	ptm, pts := openPTY(t)

	old := os.Stdin
	os.Stdin = pts
	defer func() { os.Stdin = old }()

	// Arrives after raw mode is on; in cooked mode it would wait for a newline
	go func() {
		time.Sleep(50 * time.Millisecond)
		ptm.WriteString("\x1b[6~")
	}()

	k, err := GetKeyRaw()
	if err != nil || k != key.PageDown {
		t.Fatalf("GetKeyRaw() = %v, %v; want PageDown", k, err)
	}

	// Cooked mode is back
	tio, err := unix.IoctlGetTermios(int(pts.Fd()), unix.TCGETS)
	if err != nil {
		t.Fatalf("get termios: %v", err)
	}
	if tio.Lflag&unix.ICANON == 0 || tio.Lflag&unix.ECHO == 0 {
		t.Errorf("lflag = %#x, want ICANON and ECHO restored", tio.Lflag)
	}
}
