// Package config turns the viper-managed configuration file into
// immutable snapshots. The daemon holds exactly one snapshot at a time
// and swaps it wholesale on reload; nothing mutates a snapshot in place.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/matjam/driftpaper/internal/monitor"
)

const (
	FallbackWidth  = 1920
	FallbackHeight = 1080
	FallbackFPS    = 60
)

var defaultFlavours = []Flavour{FlavourWipe, FlavourWave, FlavourGrow, FlavourOuter}

// Config is one immutable snapshot of the daemon configuration.
type Config struct {
	Interval      time.Duration
	Shuffle       bool
	WallpaperPath string
	SwwwPath      string
	Debug         bool
	Resolution    Resolution
	Transition    Transition
}

// Transition holds every per-rotation synthesis parameter.
type Transition struct {
	Bezier          [4]float64
	Duration        float64
	DynamicDuration bool
	Fill            string
	Filter          string
	Flavours        []Flavour
	FPS             int
	Resize          string
	Step            int
	Wave            WaveRange
}

// SetDefaults registers every configuration default. Resolution and fps
// have no static default; they are filled from the monitor provider.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("general.interval", 300)
	v.SetDefault("general.shuffle", true)
	v.SetDefault("general.swww_path", "/usr/bin/swww")
	v.SetDefault("general.wallpaper_path", "~/Pictures/Wallpapers")
	v.SetDefault("transition.bezier", []float64{0.4, 0.0, 0.6, 1.0})
	v.SetDefault("transition.duration", 1.0)
	v.SetDefault("transition.dynamic_duration", true)
	v.SetDefault("transition.fill", "000000")
	v.SetDefault("transition.filter", "Lanczos3")
	v.SetDefault("transition.flavour", []string{"wipe", "wave", "grow", "outer"})
	v.SetDefault("transition.resize", "no")
	v.SetDefault("transition.step", 60)
	v.SetDefault("transition.wave_size", []int{70, 80, 35, 40})
}

// Load re-reads the configuration file from disk and builds a fresh
// snapshot. The file is optional; a missing file means defaults.
func Load(mon monitor.Provider) (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Debug("no config file found, using defaults")
	}
	return fromViper(viper.GetViper(), mon), nil
}

// Defaults builds a snapshot from the built-in defaults alone, ignoring
// any file on disk. Used as the reload fallback when the file on disk no
// longer parses.
func Defaults(mon monitor.Provider) *Config {
	v := viper.New()
	SetDefaults(v)
	return fromViper(v, mon)
}

func fromViper(v *viper.Viper, mon monitor.Provider) *Config {
	cfg := &Config{
		Interval:      time.Duration(v.GetInt("general.interval")) * time.Second,
		Shuffle:       v.GetBool("general.shuffle"),
		WallpaperPath: expandHome(v.GetString("general.wallpaper_path")),
		SwwwPath:      v.GetString("general.swww_path"),
		Debug:         v.GetBool("debug"),
		Transition: Transition{
			Bezier:          bezier(v),
			Duration:        v.GetFloat64("transition.duration"),
			DynamicDuration: v.GetBool("transition.dynamic_duration"),
			Fill:            v.GetString("transition.fill"),
			Filter:          v.GetString("transition.filter"),
			Flavours:        flavours(v),
			Resize:          v.GetString("transition.resize"),
			Step:            v.GetInt("transition.step"),
			Wave:            waveRange(v),
		},
	}

	cfg.Resolution, cfg.Transition.FPS = display(v, mon)
	return cfg
}

// display resolves resolution and fps: explicit config wins, then the
// monitor provider, then the fallbacks.
func display(v *viper.Viper, mon monitor.Provider) (Resolution, int) {
	width := v.GetInt("general.resolution.width")
	height := v.GetInt("general.resolution.height")
	fps := v.GetInt("transition.fps")

	if (width == 0 || height == 0 || fps == 0) && mon != nil {
		if out, ok := mon.BestOutput(); ok {
			if width == 0 || height == 0 {
				width, height = out.Width, out.Height
			}
			if fps == 0 && out.RefreshRate > 0 {
				fps = int(math.Round(out.RefreshRate))
			}
		}
	}

	if width == 0 || height == 0 {
		log.Warnf("no monitor information, falling back to %dx%d", FallbackWidth, FallbackHeight)
		width, height = FallbackWidth, FallbackHeight
	}
	if fps == 0 {
		fps = FallbackFPS
	}
	return Resolution{Width: width, Height: height}, fps
}

func flavours(v *viper.Viper) []Flavour {
	names := v.GetStringSlice("transition.flavour")
	parsed := make([]Flavour, 0, len(names))
	for _, name := range names {
		flavour, err := ParseFlavour(name)
		if err != nil {
			log.Errorf("config: %v, using default flavours", err)
			return append([]Flavour(nil), defaultFlavours...)
		}
		parsed = append(parsed, flavour)
	}
	if len(parsed) == 0 {
		return append([]Flavour(nil), defaultFlavours...)
	}
	return parsed
}

func bezier(v *viper.Viper) [4]float64 {
	raw, err := cast.ToSliceE(v.Get("transition.bezier"))
	if err != nil || len(raw) != 4 {
		log.Error("config: transition.bezier must be four numbers, using default")
		return [4]float64{0.4, 0.0, 0.6, 1.0}
	}
	var out [4]float64
	for i, item := range raw {
		value, err := cast.ToFloat64E(item)
		if err != nil {
			log.Errorf("config: transition.bezier[%d]: %v, using default", i, err)
			return [4]float64{0.4, 0.0, 0.6, 1.0}
		}
		out[i] = value
	}
	return out
}

func waveRange(v *viper.Viper) WaveRange {
	sizes := v.GetIntSlice("transition.wave_size")
	if len(sizes) != 4 {
		log.Error("config: transition.wave_size must be four integers, using default")
		return WaveRange{WidthMin: 70, WidthMax: 80, HeightMin: 35, HeightMax: 40}
	}
	return WaveRange{
		WidthMin:  sizes[0],
		WidthMax:  sizes[1],
		HeightMin: sizes[2],
		HeightMax: sizes[3],
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warnf("cannot resolve home directory: %v", err)
			return path
		}
		return strings.Replace(path, "~", home, 1)
	}
	return path
}
