package config

import (
	"fmt"
	"strings"
)

// Flavour is a transition visual style, passed straight through to swww
// as --transition-type.
type Flavour string

const (
	FlavourWipe  Flavour = "wipe"
	FlavourWave  Flavour = "wave"
	FlavourGrow  Flavour = "grow"
	FlavourOuter Flavour = "outer"
)

// Angled reports whether the flavour sweeps across the screen at an
// angle. Only angled flavours take part in dynamic duration scaling.
func (f Flavour) Angled() bool {
	return f == FlavourWipe || f == FlavourWave
}

func ParseFlavour(s string) (Flavour, error) {
	switch Flavour(strings.ToLower(s)) {
	case FlavourWipe:
		return FlavourWipe, nil
	case FlavourWave:
		return FlavourWave, nil
	case FlavourGrow:
		return FlavourGrow, nil
	case FlavourOuter:
		return FlavourOuter, nil
	default:
		return "", fmt.Errorf("invalid transition flavour: %q", s)
	}
}

// Resolution is the screen size used for dynamic duration scaling.
type Resolution struct {
	Width  int
	Height int
}

// Pos is a normalized screen position for centered flavours.
type Pos struct {
	X float64
	Y float64
}

// WaveSize is one concrete wave dimension pair.
type WaveSize struct {
	Width  int
	Height int
}

// WaveRange bounds the wave jitter drawn per rotation.
type WaveRange struct {
	WidthMin  int
	WidthMax  int
	HeightMin int
	HeightMax int
}
