// Package transition synthesizes the per-rotation transition parameters
// handed to the external wallpaper setter.
package transition

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/matjam/driftpaper/internal/config"
)

// Spec carries every parameter of a single wallpaper transition. A fresh
// value is synthesized per rotation and handed to the setter as explicit
// arguments; nothing travels through the process environment, so
// overlapping setter invocations cannot race on shared state.
type Spec struct {
	Flavour  config.Flavour
	Duration float64
	Bezier   [4]float64
	FPS      int
	Step     int
	Fill     string
	Filter   string
	Resize   string

	// Flavour-specific, nil when not applicable.
	Angle *float64
	Wave  *config.WaveSize
	Pos   *config.Pos
}

// Synthesize draws one transition from the configured parameter space.
// It reads cfg and rng only; queue and config state are untouched.
func Synthesize(cfg *config.Config, rng *rand.Rand) *Spec {
	t := cfg.Transition
	flavour := t.Flavours[rng.IntN(len(t.Flavours))]

	spec := &Spec{
		Flavour:  flavour,
		Duration: t.Duration,
		Bezier:   t.Bezier,
		FPS:      t.FPS,
		Step:     t.Step,
		Fill:     t.Fill,
		Filter:   t.Filter,
		Resize:   t.Resize,
	}

	switch flavour {
	case config.FlavourWipe:
		angle := rng.Float64() * 360
		spec.Angle = &angle
		if t.DynamicDuration {
			spec.Duration = NormalizeDuration(t.Duration, cfg.Resolution.Width, cfg.Resolution.Height, angle)
		}
	case config.FlavourWave:
		angle := rng.Float64() * 360
		if t.DynamicDuration {
			// Normalized with the travel angle, not the crest angle below.
			spec.Duration = NormalizeDuration(t.Duration, cfg.Resolution.Width, cfg.Resolution.Height, angle)
		}

		// Rotate the reported angle 90 degrees so the crest travels
		// perpendicular to its own long axis.
		crest := math.Mod(360+angle-90, 360)
		spec.Angle = &crest
		spec.Wave = &config.WaveSize{
			Width:  drawRange(rng, t.Wave.WidthMin, t.Wave.WidthMax),
			Height: drawRange(rng, t.Wave.HeightMin, t.Wave.HeightMax),
		}
	case config.FlavourGrow, config.FlavourOuter:
		spec.Pos = &config.Pos{X: rng.Float64(), Y: rng.Float64()}
	}

	return spec
}

func drawRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// Args renders the spec as the argument vector for `swww img`, without
// the trailing wallpaper path.
func (s *Spec) Args() []string {
	args := []string{
		"img",
		"--resize", s.Resize,
		"--fill-color", s.Fill,
		"--filter", s.Filter,
		"--transition-type", string(s.Flavour),
		"--transition-step", strconv.Itoa(s.Step),
		"--transition-duration", formatFloat(s.Duration),
		"--transition-fps", strconv.Itoa(s.FPS),
		"--transition-bezier", formatFloat(s.Bezier[0]) + "," + formatFloat(s.Bezier[1]) +
			"," + formatFloat(s.Bezier[2]) + "," + formatFloat(s.Bezier[3]),
	}

	if s.Angle != nil {
		args = append(args, "--transition-angle", formatFloat(*s.Angle))
	}
	if s.Wave != nil {
		args = append(args, "--transition-wave",
			strconv.Itoa(s.Wave.Width)+","+strconv.Itoa(s.Wave.Height))
	}
	if s.Pos != nil {
		args = append(args, "--transition-pos",
			formatFloat(s.Pos.X)+","+formatFloat(s.Pos.Y))
	}
	return args
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
