//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios can't be reached through a
// portable ioctl; Session.Restore covers the normal exit path
func resetTerminalMode() {}
