package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/matjam/driftpaper/internal/monitor"
)

type stubProvider struct {
	out monitor.Output
	ok  bool
}

func (s stubProvider) BestOutput() (monitor.Output, bool) {
	return s.out, s.ok
}

func defaultViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestDefaultsSnapshot(t *testing.T) {
	cfg := fromViper(defaultViper(), nil)

	if cfg.Interval != 300*time.Second {
		t.Errorf("Interval = %v, want 5m", cfg.Interval)
	}
	if !cfg.Shuffle {
		t.Error("Shuffle = false, want true")
	}
	if cfg.SwwwPath != "/usr/bin/swww" {
		t.Errorf("SwwwPath = %q", cfg.SwwwPath)
	}
	if cfg.Transition.Duration != 1.0 {
		t.Errorf("Duration = %v, want 1.0", cfg.Transition.Duration)
	}
	if !cfg.Transition.DynamicDuration {
		t.Error("DynamicDuration = false, want true")
	}
	if cfg.Transition.Bezier != [4]float64{0.4, 0, 0.6, 1} {
		t.Errorf("Bezier = %v", cfg.Transition.Bezier)
	}
	if cfg.Transition.Step != 60 {
		t.Errorf("Step = %d, want 60", cfg.Transition.Step)
	}
	if cfg.Transition.Filter != "Lanczos3" {
		t.Errorf("Filter = %q", cfg.Transition.Filter)
	}
	if len(cfg.Transition.Flavours) != 4 {
		t.Errorf("Flavours = %v, want all four", cfg.Transition.Flavours)
	}
	want := WaveRange{WidthMin: 70, WidthMax: 80, HeightMin: 35, HeightMax: 40}
	if cfg.Transition.Wave != want {
		t.Errorf("Wave = %+v, want %+v", cfg.Transition.Wave, want)
	}
}

func TestDisplayFromProvider(t *testing.T) {
	mon := stubProvider{out: monitor.Output{Width: 2560, Height: 1440, RefreshRate: 143.91}, ok: true}
	cfg := fromViper(defaultViper(), mon)

	if cfg.Resolution.Width != 2560 || cfg.Resolution.Height != 1440 {
		t.Errorf("Resolution = %+v, want 2560x1440", cfg.Resolution)
	}
	if cfg.Transition.FPS != 144 {
		t.Errorf("FPS = %d, want 144 (rounded refresh rate)", cfg.Transition.FPS)
	}
}

func TestDisplayExplicitConfigWins(t *testing.T) {
	v := defaultViper()
	v.Set("general.resolution.width", 3440)
	v.Set("general.resolution.height", 1440)
	v.Set("transition.fps", 100)

	mon := stubProvider{out: monitor.Output{Width: 1920, Height: 1080, RefreshRate: 60}, ok: true}
	cfg := fromViper(v, mon)

	if cfg.Resolution.Width != 3440 || cfg.Resolution.Height != 1440 {
		t.Errorf("Resolution = %+v, want configured 3440x1440", cfg.Resolution)
	}
	if cfg.Transition.FPS != 100 {
		t.Errorf("FPS = %d, want configured 100", cfg.Transition.FPS)
	}
}

func TestDisplayFallbacks(t *testing.T) {
	cfg := fromViper(defaultViper(), stubProvider{})

	if cfg.Resolution.Width != FallbackWidth || cfg.Resolution.Height != FallbackHeight {
		t.Errorf("Resolution = %+v, want fallback %dx%d", cfg.Resolution, FallbackWidth, FallbackHeight)
	}
	if cfg.Transition.FPS != FallbackFPS {
		t.Errorf("FPS = %d, want fallback %d", cfg.Transition.FPS, FallbackFPS)
	}
}

func TestFlavoursBadNameFallsBack(t *testing.T) {
	v := defaultViper()
	v.Set("transition.flavour", []string{"wipe", "teleport"})

	cfg := fromViper(v, nil)
	if len(cfg.Transition.Flavours) != 4 {
		t.Errorf("Flavours = %v, want default set after bad name", cfg.Transition.Flavours)
	}
}

func TestFlavoursSubset(t *testing.T) {
	v := defaultViper()
	v.Set("transition.flavour", []string{"Wave", "grow"})

	cfg := fromViper(v, nil)
	want := []Flavour{FlavourWave, FlavourGrow}
	if len(cfg.Transition.Flavours) != 2 ||
		cfg.Transition.Flavours[0] != want[0] || cfg.Transition.Flavours[1] != want[1] {
		t.Errorf("Flavours = %v, want %v", cfg.Transition.Flavours, want)
	}
}

func TestBezierBadLengthFallsBack(t *testing.T) {
	v := defaultViper()
	v.Set("transition.bezier", []float64{0.1, 0.2})

	cfg := fromViper(v, nil)
	if cfg.Transition.Bezier != [4]float64{0.4, 0, 0.6, 1} {
		t.Errorf("Bezier = %v, want default after bad length", cfg.Transition.Bezier)
	}
}

func TestWaveRangeBadLengthFallsBack(t *testing.T) {
	v := defaultViper()
	v.Set("transition.wave_size", []int{70, 80})

	cfg := fromViper(v, nil)
	want := WaveRange{WidthMin: 70, WidthMax: 80, HeightMin: 35, HeightMax: 40}
	if cfg.Transition.Wave != want {
		t.Errorf("Wave = %+v, want default after bad length", cfg.Transition.Wave)
	}
}

func TestParseFlavour(t *testing.T) {
	for _, name := range []string{"wipe", "WAVE", "Grow", "outer"} {
		if _, err := ParseFlavour(name); err != nil {
			t.Errorf("ParseFlavour(%q): %v", name, err)
		}
	}
	if _, err := ParseFlavour("spiral"); err == nil {
		t.Error("ParseFlavour(spiral) succeeded, want error")
	}
}

func TestAngled(t *testing.T) {
	if !FlavourWipe.Angled() || !FlavourWave.Angled() {
		t.Error("wipe and wave must be angled")
	}
	if FlavourGrow.Angled() || FlavourOuter.Angled() {
		t.Error("grow and outer must not be angled")
	}
}
