// Package terminal reads keys from a terminal.
//
// Sources:
//   - Decoder: stdin byte stream parsing with escape sequence handling (non-Windows)
//   - ConsoleSource: console input records, reporting raw VK codes (Windows)
//   - TcellSource: key events from a tcell screen
//
// Session puts stdin into raw mode and restores it; EmergencyReset returns the
// terminal to a sane state after a crash.
//
// Mouse reports, resize events and key sequences outside the vocabulary are
// discarded rather than returned.
package terminal
