package main

import (
	"github.com/matjam/driftpaper/internal/cli"
)

func main() {
	cli.Execute()
}
