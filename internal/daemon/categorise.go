package daemon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// opposites maps mutually exclusive category pairs. A wallpaper linked
// under one side may not also be linked under the other.
var opposites = map[string]string{
	"like":    "dislike",
	"dislike": "like",
}

// categorise mirrors the current wallpaper's relative path as a symlink
// inside the dot-prefixed marker directory for category, creating the
// marker and any intermediate directories as needed.
func (d *Daemon) categorise(category string) error {
	if category == "" {
		return errors.New("empty category")
	}
	current, ok := d.queue.Current()
	if !ok {
		return errors.New("no current wallpaper")
	}

	root := d.cfg.WallpaperPath
	rel, err := filepath.Rel(root, current)
	if err != nil {
		return fmt.Errorf("wallpaper %s is outside %s: %w", current, root, err)
	}

	if opposite, ok := opposites[category]; ok {
		oppositeLink := filepath.Join(root, "."+opposite, rel)
		if _, err := os.Lstat(oppositeLink); err == nil {
			return fmt.Errorf("%s is already categorised as %q", current, opposite)
		}
	}

	dst := filepath.Join(root, "."+category, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating category directory: %w", err)
	}
	if err := os.Symlink(current, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			log.Debugf("%s already categorised as %q", current, category)
			return nil
		}
		return fmt.Errorf("creating symlink %s: %w", dst, err)
	}

	log.Infof("categorised %s as %q", current, category)
	return nil
}
