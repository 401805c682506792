package daemon

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matjam/driftpaper/internal/transition"
)

// Setter applies a wallpaper with the given transition. The production
// implementation spawns swww; tests substitute a recorder.
type Setter interface {
	Set(path string, spec *transition.Spec) error
}

// SwwwSetter invokes the external swww binary. The spawn does not block
// the control loop: every transition parameter travels as an argument,
// so overlapping invocations share no state.
type SwwwSetter struct {
	Path string
}

func (s SwwwSetter) Set(path string, spec *transition.Spec) error {
	args := append(spec.Args(), path)
	log.Debugf("spawning: %s %s", s.Path, strings.Join(args, " "))

	cmd := exec.Command(s.Path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning %s: %w", s.Path, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warnf("%s exited: %v", s.Path, err)
		}
	}()
	return nil
}
