package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matjam/driftpaper/internal/ipc"
)

const (
	rearmDelay    = 200 * time.Millisecond
	rearmAttempts = 25
)

// Watch pushes a synthetic reload command onto cmds whenever the config
// file is modified or removed. Editors that write atomically replace the
// file instead of modifying it, which kills the watch along with the old
// inode; after a remove the watch is re-established against the new file
// once it appears.
func Watch(path string, cmds chan<- ipc.Command) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(abs); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", abs, err)
	}

	log.Debugf("watching config file %s", abs)
	go watchLoop(watcher, abs, cmds)
	return nil
}

func watchLoop(watcher *fsnotify.Watcher, abs string, cmds chan<- ipc.Command) {
	defer watcher.Close()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				log.Warn("config watcher closed, hot reloading disabled")
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("config file event: %s", event)
			cmds <- ipc.Command{Type: ipc.CommandReload}

			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if !rearm(watcher, abs) {
					log.Warnf("config file %s did not reappear, hot reloading disabled", abs)
					return
				}
				log.Debugf("re-established watch on %s", abs)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("config watcher: %v", err)
		}
	}
}

func rearm(watcher *fsnotify.Watcher, abs string) bool {
	for i := 0; i < rearmAttempts; i++ {
		time.Sleep(rearmDelay)
		if err := watcher.Add(abs); err == nil {
			return true
		}
	}
	return false
}
