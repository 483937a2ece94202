package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "keyreport.log"
	maxLogSize  = 10 << 20
)

// setupLogging routes the standard logger to logs/keyreport.log when debug is
// set; otherwise logs are discarded
// The terminal is in raw mode while reading, so logs never go to stdout/stderr
func setupLogging(debug bool) *os.File {
	log.SetOutput(io.Discard)
	if !debug {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	// Rotation failure falls through to appending to the old file
	_, _ = rotateLog(logPath, time.Now())

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog moves path aside as keyreport_<timestamp>.log once it exceeds
// maxLogSize, returning the new name, or "" when nothing was rotated
func rotateLog(path string, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return "", nil
	}

	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("keyreport_%s.log", now.Format("20060102_150405")))
	if err := os.Rename(path, rotated); err != nil {
		return "", fmt.Errorf("rotate log: %w", err)
	}
	return rotated, nil
}
