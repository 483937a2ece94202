package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// inTempDir runs the test from an empty directory so logs/ lands there
func inTempDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		os.Chdir(wd)
	})
	return dir
}

func TestSetupLogging_Off(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("setupLogging(false) returned a file")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log writer = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("%s created without debug", logDir)
	}
}

func TestSetupLogging_WritesFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) returned nil")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr || w == io.Discard {
		t.Fatalf("log writer = %v, want the log file", w)
	}

	log.Printf("key %v", "Char('a')")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "key Char('a')") {
		t.Errorf("log = %q, missing message", data)
	}
}

// A logs path that can't be a directory leaves logging off
func TestSetupLogging_BadDir(t *testing.T) {
	inTempDir(t)
	if err := os.WriteFile(logDir, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if f := setupLogging(true); f != nil {
		f.Close()
		t.Fatal("setupLogging returned a file with logs/ blocked")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log writer = %v, want io.Discard", log.Writer())
	}
}

func TestRotateLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, logFileName)
	now := time.Date(2026, 10, 16, 9, 5, 7, 0, time.UTC)

	// Missing file
	if got, err := rotateLog(path, now); got != "" || err != nil {
		t.Errorf("missing: rotateLog = %q, %v", got, err)
	}

	// At the limit stays
	if err := os.WriteFile(path, make([]byte, maxLogSize), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := rotateLog(path, now); got != "" || err != nil {
		t.Errorf("at limit: rotateLog = %q, %v", got, err)
	}

	// Over the limit moves aside under a timestamped name
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := rotateLog(path, now)
	if err != nil {
		t.Fatalf("rotateLog: %v", err)
	}
	if want := filepath.Join(dir, "keyreport_20261016_090507.log"); got != want {
		t.Errorf("rotated to %q, want %q", got, want)
	}
	info, err := os.Stat(got)
	if err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("rotated file = %v, %v; want the old contents", info, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("original log still present")
	}
}

func TestSetupLogging_RotatesOversized(t *testing.T) {
	inTempDir(t)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) returned nil")
	}
	defer f.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "keyreport_*.log"))
	if err != nil || len(rotated) != 1 {
		t.Fatalf("rotated logs = %v, %v; want one", rotated, err)
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() != 0 {
		t.Errorf("fresh log = %v, %v; want empty", info, err)
	}
}
