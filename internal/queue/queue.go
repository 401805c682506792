// Package queue holds the wallpaper rotation order. The queue is built
// once at startup and owned exclusively by the daemon loop; it is not
// safe for concurrent use.
package queue

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Direction selects which way Advance steps through the queue.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Queue is an ordered list of wallpaper paths plus the index of the
// wallpaper currently on screen. Whenever the queue is non-empty the
// index is within range.
type Queue struct {
	paths []string
	index int
}

// Build walks root recursively, following symlinks, and collects every
// regular file. Dot-prefixed directories directly below root are
// category markers holding symlinks back into the queue; walking them
// would duplicate entries, so they are skipped. Unreadable entries are
// skipped silently; only an unreadable root is an error.
func Build(root string) (*Queue, error) {
	q := &Queue{}
	if err := q.walk(root, root); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *Queue) walk(root, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == root {
			return fmt.Errorf("reading wallpaper directory: %w", err)
		}
		log.Debugf("skipping unreadable directory %s: %v", dir, err)
		return nil
	}

	for _, entry := range entries {
		if dir == root && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			log.Debugf("skipping %s: %v", path, err)
			continue
		}
		switch {
		case info.IsDir():
			if err := q.walk(root, path); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			q.paths = append(q.paths, path)
		}
	}
	return nil
}

func (q *Queue) Len() int {
	return len(q.paths)
}

func (q *Queue) IsEmpty() bool {
	return len(q.paths) == 0
}

// Current returns the path at the current position.
func (q *Queue) Current() (string, bool) {
	if len(q.paths) == 0 {
		return "", false
	}
	return q.paths[q.index], true
}

// Shuffle randomizes the order and resets the position to the front.
func (q *Queue) Shuffle() {
	rand.Shuffle(len(q.paths), func(i, j int) {
		q.paths[i], q.paths[j] = q.paths[j], q.paths[i]
	})
	q.index = 0
}

// Sort orders the queue lexicographically by full path and resets the
// position to the front.
func (q *Queue) Sort() {
	slices.Sort(q.paths)
	q.index = 0
}

// Advance steps the position in the given direction, wrapping around.
// A candidate whose backing file has disappeared is removed from the
// queue and the search continues, at most Len steps in total. Advance
// returns false only when no existing file is left.
func (q *Queue) Advance(dir Direction) bool {
	steps := len(q.paths)
	for i := 0; i < steps && len(q.paths) > 0; i++ {
		q.step(dir)
		path := q.paths[q.index]
		if _, err := os.Stat(path); err == nil {
			return true
		}
		log.Warnf("wallpaper missing, dropping from queue: %s", path)
		q.remove(q.index, dir)
	}
	return false
}

func (q *Queue) step(dir Direction) {
	switch dir {
	case Forward:
		q.index = (q.index + 1) % len(q.paths)
	case Backward:
		q.index = (q.index + len(q.paths) - 1) % len(q.paths)
	}
}

// remove drops the entry at i and repositions the index so the next step
// lands on the following candidate in the direction of travel.
func (q *Queue) remove(i int, dir Direction) {
	q.paths = append(q.paths[:i], q.paths[i+1:]...)
	if len(q.paths) == 0 {
		q.index = 0
		return
	}
	switch dir {
	case Forward:
		// The element after the removed one shifted into its slot; back
		// up so the next step lands on it.
		q.index = (i + len(q.paths) - 1) % len(q.paths)
	case Backward:
		q.index = i % len(q.paths)
	}
}
