//go:build linux

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode forces the controlling tty back to cooked mode when no
// saved state is available
// Opened through /dev/tty so it works with stdin redirected
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	setCooked(tio)
	_ = unix.IoctlSetTermios(fd, unix.TCSETS, tio)
}

// setCooked re-enables what term.MakeRaw turns off: line editing, echo,
// signals, CR translation and output processing
func setCooked(tio *unix.Termios) {
	tio.Iflag |= unix.ICRNL | unix.IXON
	tio.Oflag |= unix.OPOST
	tio.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
}
