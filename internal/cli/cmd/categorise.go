package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matjam/driftpaper/internal/ipc"
)

func NewCategoriseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categorise [category]",
		Short: "Link the current wallpaper into a category",
		Long: `Creates a symlink to the current wallpaper inside a dot-prefixed
category directory under the wallpaper root (for example .favorites).
Category directories are excluded from the rotation queue.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sendCategorise(args[0])
		},
	}
}

func NewLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like",
		Short: "Mark the current wallpaper as liked",
		Run: func(cmd *cobra.Command, args []string) {
			sendCategorise("like")
		},
	}
}

func NewDislikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dislike",
		Short: "Mark the current wallpaper as disliked",
		Run: func(cmd *cobra.Command, args []string) {
			sendCategorise("dislike")
		},
	}
}

func sendCategorise(category string) {
	if err := ipc.Send(ipc.Categorise(category)); err != nil {
		log.Fatalf("Failed to send 'categorise' command: %v", err)
	}
	log.Infof("Categorise %q command sent", category)
}
