package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matjam/driftpaper/internal/ipc"
)

func NewReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the daemon configuration from disk",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.Send(ipc.Command{Type: ipc.CommandReload}); err != nil {
				log.Fatalf("Failed to send 'reload' command: %v", err)
			}
			log.Info("Reload command sent")
		},
	}
}
