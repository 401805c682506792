// Package monitor supplies display information used to fill resolution
// and fps defaults when the config file leaves them unset. The daemon
// never calls it directly; only the config provider does.
package monitor

import (
	"encoding/json"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Output describes one display as reported by the compositor.
type Output struct {
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RefreshRate float64 `json:"refreshRate"`
}

// Provider returns the output best suited for transition defaults.
type Provider interface {
	BestOutput() (Output, bool)
}

// Hyprctl queries outputs with `hyprctl monitors -j`. Any failure is a
// soft miss; the config provider falls back to static defaults.
type Hyprctl struct {
	Path string
}

func NewHyprctl() Hyprctl {
	return Hyprctl{Path: "hyprctl"}
}

func (h Hyprctl) BestOutput() (Output, bool) {
	raw, err := exec.Command(h.Path, "monitors", "-j").Output()
	if err != nil {
		log.Debugf("querying monitors: %v", err)
		return Output{}, false
	}

	var outputs []Output
	if err := json.Unmarshal(raw, &outputs); err != nil {
		log.Debugf("parsing monitor list: %v", err)
		return Output{}, false
	}
	return Best(outputs)
}

// Best picks the output with the highest refresh rate, breaking ties on
// resolution area.
func Best(outputs []Output) (Output, bool) {
	if len(outputs) == 0 {
		return Output{}, false
	}
	best := outputs[0]
	for _, out := range outputs[1:] {
		if out.RefreshRate > best.RefreshRate {
			best = out
			continue
		}
		if out.RefreshRate == best.RefreshRate &&
			out.Width*out.Height > best.Width*best.Height {
			best = out
		}
	}
	return best, true
}
