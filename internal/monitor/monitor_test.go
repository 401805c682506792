package monitor

import "testing"

func TestBestPrefersRefreshRate(t *testing.T) {
	outputs := []Output{
		{Name: "DP-1", Width: 3840, Height: 2160, RefreshRate: 60},
		{Name: "DP-2", Width: 2560, Height: 1440, RefreshRate: 165},
	}
	best, ok := Best(outputs)
	if !ok {
		t.Fatal("Best returned no output")
	}
	if best.Name != "DP-2" {
		t.Errorf("Best = %q, want DP-2 (highest refresh rate)", best.Name)
	}
}

func TestBestBreaksTiesOnArea(t *testing.T) {
	outputs := []Output{
		{Name: "HDMI-A-1", Width: 1920, Height: 1080, RefreshRate: 60},
		{Name: "DP-1", Width: 3840, Height: 2160, RefreshRate: 60},
	}
	best, ok := Best(outputs)
	if !ok {
		t.Fatal("Best returned no output")
	}
	if best.Name != "DP-1" {
		t.Errorf("Best = %q, want DP-1 (largest area)", best.Name)
	}
}

func TestBestEmpty(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Fatal("Best(nil) returned an output")
	}
}

func TestBestOutputMissingBinary(t *testing.T) {
	h := Hyprctl{Path: "/nonexistent/hyprctl"}
	if _, ok := h.BestOutput(); ok {
		t.Fatal("BestOutput with missing binary returned an output")
	}
}
