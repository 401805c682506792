// Package daemon runs the wallpaper rotation control loop. The daemon
// owns the queue, the active config snapshot and the paused flag; all of
// it is touched only from Run's goroutine. Every other thread of the
// process — the IPC accept loop, the config watcher, the signal handler —
// talks to the daemon exclusively through the command channel.
package daemon

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matjam/driftpaper/internal/config"
	"github.com/matjam/driftpaper/internal/ipc"
	"github.com/matjam/driftpaper/internal/monitor"
	"github.com/matjam/driftpaper/internal/queue"
	"github.com/matjam/driftpaper/internal/transition"
)

type Daemon struct {
	cfg    *config.Config
	queue  *queue.Queue
	rng    *rand.Rand
	paused bool
	setter Setter
	mon    monitor.Provider

	reload func(monitor.Provider) (*config.Config, error)
}

// New builds the wallpaper queue from the configured root and wires the
// daemon up. An unreadable root is the only error.
func New(cfg *config.Config, mon monitor.Provider, setter Setter) (*Daemon, error) {
	q, err := queue.Build(cfg.WallpaperPath)
	if err != nil {
		return nil, err
	}
	return &Daemon{
		cfg:    cfg,
		queue:  q,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		setter: setter,
		mon:    mon,
		reload: config.Load,
	}, nil
}

func (d *Daemon) Queue() *queue.Queue {
	return d.queue
}

// Run drives the control loop until a shutdown command arrives or the
// command channel closes. It is the sole consumer of cmds; arrival order
// on the channel is the only evaluation order.
func (d *Daemon) Run(cmds <-chan ipc.Command) {
	if d.cfg.Shuffle {
		d.queue.Shuffle()
	} else {
		d.queue.Sort()
	}

	if path, ok := d.queue.Current(); ok {
		d.setWallpaper(path)
	}

	for {
		// The interval is re-read from the current snapshot every
		// iteration so a reload takes effect on the very next wait.
		timeout := time.NewTimer(d.cfg.Interval)

		select {
		case cmd, ok := <-cmds:
			timeout.Stop()
			if !ok {
				// Every producer is gone; no command can ever arrive.
				log.Error("command channel closed, stopping")
				return
			}
			if !d.dispatch(cmd) {
				return
			}
		case <-timeout.C:
			if d.paused {
				log.Debug("interval elapsed while paused")
				continue
			}
			log.Debug("interval elapsed, rotating")
			if !d.rotate(queue.Forward) {
				return
			}
		}
	}
}

// dispatch applies one command and reports whether the loop continues.
func (d *Daemon) dispatch(cmd ipc.Command) bool {
	log.Debugf("received %q command", cmd.Type)

	switch cmd.Type {
	case ipc.CommandNext:
		return d.rotate(queue.Forward)
	case ipc.CommandPrevious:
		return d.rotate(queue.Backward)
	case ipc.CommandPause:
		d.paused = true
	case ipc.CommandResume:
		d.paused = false
	case ipc.CommandCategorise:
		if err := d.categorise(cmd.Category()); err != nil {
			log.Errorf("categorise: %v", err)
		}
	case ipc.CommandReload:
		d.reloadConfig()
	case ipc.CommandShutdown:
		log.Info("shutting down")
		return false
	default:
		log.Errorf("unknown command: %q", cmd.Type)
	}
	return true
}

func (d *Daemon) rotate(dir queue.Direction) bool {
	if !d.queue.Advance(dir) {
		log.Error("no wallpapers left in queue, stopping")
		return false
	}
	path, _ := d.queue.Current()
	d.setWallpaper(path)
	return true
}

func (d *Daemon) setWallpaper(path string) {
	spec := transition.Synthesize(d.cfg, d.rng)
	log.Infof("setting wallpaper: %s", path)
	if err := d.setter.Set(path, spec); err != nil {
		log.Errorf("setting wallpaper: %v", err)
	}
}

// reloadConfig swaps the snapshot wholesale. A file that no longer
// parses falls back to the built-in defaults rather than leaving a
// half-merged snapshot behind.
func (d *Daemon) reloadConfig() {
	log.Info("reloading config")
	cfg, err := d.reload(d.mon)
	if err != nil {
		log.Errorf("reloading config: %v", err)
		log.Warn("falling back to default config")
		cfg = config.Defaults(d.mon)
	}
	d.cfg = cfg

	if d.cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
