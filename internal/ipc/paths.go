package ipc

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	sockName = "driftpaper.sock"
	lockName = "driftpaper.lock"
)

// RuntimeDir returns the directory holding the control socket and the
// singleton lock file.
func RuntimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	log.Warnf("XDG_RUNTIME_DIR not set, falling back to %s", os.TempDir())
	return os.TempDir()
}

func SocketPath() string {
	return filepath.Join(RuntimeDir(), sockName)
}

func LockPath() string {
	return filepath.Join(RuntimeDir(), lockName)
}
