package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matjam/driftpaper/internal/cli/cmd/utils"
)

// The config command is handled entirely locally; it never touches the
// daemon socket.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Run: func(cmd *cobra.Command, args []string) {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			utils.PrintJSONColored(viper.AllSettings())
		},
	}
}
