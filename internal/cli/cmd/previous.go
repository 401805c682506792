package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matjam/driftpaper/internal/ipc"
)

func NewPreviousCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "previous",
		Short: "Switch back to the previous wallpaper",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.Send(ipc.Command{Type: ipc.CommandPrevious}); err != nil {
				log.Fatalf("Failed to send 'previous' command: %v", err)
			}
			log.Info("Previous wallpaper command sent")
		},
	}
}
