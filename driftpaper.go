package driftpaper

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed driftpaper.toml
var DefaultConfig string
