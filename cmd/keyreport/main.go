// Command keyreport reads keys from the terminal and prints what each one
// decodes to
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/Siri-chan/getkey/input"
	"github.com/Siri-chan/getkey/key"
	"github.com/Siri-chan/getkey/terminal"
)

const (
	backendNative = "native"
	backendTcell  = "tcell"
)

var (
	backendFlag  = flag.String("backend", backendNative, "Key source: native, tcell")
	countFlag    = flag.Int("n", 0, "Stop after N keys (0 = unlimited)")
	jsonFlag     = flag.Bool("json", false, "Emit one JSON object per line")
	configFlag   = flag.String("config", "", "Config file (.toml, .yaml, .yml)")
	watchFlag    = flag.Bool("watch", false, "Reload the keymap when the config file changes")
	debugFlag    = flag.Bool("debug", false, "Log to "+logDir+"/"+logFileName)
	classifyFlag = flag.Bool("classify", false, "Classify the VK codes given as arguments and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if reading crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mKEYREPORT CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *classifyFlag {
		if err := classifyCodes(os.Stdout, flag.Args(), *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
			return 2
		}
		return 0
	}

	cfg := defaultConfig()
	if *configFlag != "" {
		loaded, err := loadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	applyFlags(cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	table, err := keyTable(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
		return 1
	}
	var keys atomic.Pointer[input.KeyTable]
	keys.Store(table)

	if *watchFlag {
		if *configFlag == "" {
			fmt.Fprintln(os.Stderr, "keyreport: -watch needs -config")
			return 2
		}
		w, err := watchKeymap(*configFlag, &keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	log.Printf("keyreport: backend=%s count=%d json=%v bindings=%d", cfg.Backend, cfg.Count, cfg.JSON, len(table.Bindings))

	switch cfg.Backend {
	case backendNative:
		err = runNative(cfg, &keys)
	case backendTcell:
		err = runTcell(cfg, &keys)
	default:
		err = fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, backendNative, backendTcell)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
		return 1
	}
	return 0
}

// runNative reads stdin directly; piped input is read without raw mode
func runNative(cfg *Config, keys *atomic.Pointer[input.KeyTable]) error {
	sess, err := terminal.MakeRaw(os.Stdin)
	switch {
	case errors.Is(err, terminal.ErrNotTerminal):
		log.Printf("stdin is not a terminal, reading without raw mode")
	case err != nil:
		return err
	default:
		defer sess.Restore()
	}

	rep := &reporter{d: &ttyDisplay{w: os.Stdout}, json: cfg.JSON}
	reportKeys(input.NewStdinReader(), keys, rep, cfg.Count)
	return nil
}

func runTcell(cfg *Config, keys *atomic.Pointer[input.KeyTable]) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	rep := &reporter{d: &screenDisplay{screen: screen}, json: cfg.JSON}
	reportKeys(input.NewReader(terminal.NewTcellSource(screen)), keys, rep, cfg.Count)
	return nil
}

// reportKeys reads and reports keys until the limit, a quit binding, or the
// end of input
// An unrecognized key is reported and reading continues; any other failure
// ends the loop since the source will not recover
func reportKeys(r *input.Reader, keys *atomic.Pointer[input.KeyTable], rep *reporter, limit int) {
	for n := 0; limit == 0 || n < limit; {
		k, err := r.GetKey()
		if err != nil {
			if errors.Is(err, key.ErrUnrecognized) {
				rep.err(err)
				continue
			}
			if !errors.Is(err, io.EOF) && !errors.Is(err, terminal.ErrScreenClosed) {
				rep.err(err)
			}
			log.Printf("read stopped: %v", err)
			return
		}
		n++

		a := keys.Load().Lookup(k)
		rep.key(k, a)
		log.Printf("key %v action=%v", k, a)

		switch a {
		case input.ActionQuit:
			return
		case input.ActionClear:
			rep.d.Clear()
		case input.ActionMark:
			rep.d.Line(markLine)
		}
	}
}

