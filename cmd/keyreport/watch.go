package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Siri-chan/getkey/input"
)

const reloadDebounce = 100 * time.Millisecond

// keymapWatcher reloads the keymap when the config file changes
// A reload that fails to parse keeps the current table
type keymapWatcher struct {
	path    string
	keys    *atomic.Pointer[input.KeyTable]
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func watchKeymap(path string, keys *atomic.Pointer[input.KeyTable]) (*keymapWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are still seen
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}

	kw := &keymapWatcher{
		path:    path,
		keys:    keys,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go kw.loop()
	return kw, nil
}

func (kw *keymapWatcher) loop() {
	defer close(kw.done)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-kw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(kw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, kw.reload)

		case err, ok := <-kw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("keymap watch: %v", err)
		}
	}
}

func (kw *keymapWatcher) reload() {
	cfg, err := loadConfig(kw.path)
	if err != nil {
		log.Printf("keymap reload: %v", err)
		return
	}
	table, err := keyTable(cfg)
	if err != nil {
		log.Printf("keymap reload: %v", err)
		return
	}
	kw.keys.Store(table)
	log.Printf("keymap reloaded: %d bindings", len(table.Bindings))
}

// Close stops watching and waits for the event loop to exit
func (kw *keymapWatcher) Close() error {
	err := kw.watcher.Close()
	<-kw.done
	return err
}
