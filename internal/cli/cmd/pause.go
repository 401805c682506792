package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matjam/driftpaper/internal/ipc"
)

func NewPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause automatic wallpaper rotation",
		Long: `Pauses the rotation timer. Explicit next/previous commands still
apply while paused.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.Send(ipc.Command{Type: ipc.CommandPause}); err != nil {
				log.Fatalf("Failed to send 'pause' command: %v", err)
			}
			log.Info("Pause command sent")
		},
	}
}

func NewResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume automatic wallpaper rotation",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.Send(ipc.Command{Type: ipc.CommandResume}); err != nil {
				log.Fatalf("Failed to send 'resume' command: %v", err)
			}
			log.Info("Resume command sent")
		},
	}
}
