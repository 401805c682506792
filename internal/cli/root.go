/*
Copyright © 2025 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matjam/driftpaper"
	"github.com/matjam/driftpaper/internal/cli/cmd"
	"github.com/matjam/driftpaper/internal/cli/cmd/utils"
	"github.com/matjam/driftpaper/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "driftpaper",
	Short: "A wallpaper rotator for swww",
	Long: `Driftpaper rotates desktop wallpapers through swww on an interval,
with randomized transitions and a CLI that controls the running daemon.`,
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("version"); err == nil && v {
			babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
			yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
			green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
			log.Infof("%v version %v © 2025 %v",
				babyBlue.Render("driftpaper"),
				green.Render(strings.Trim(driftpaper.Version, "\n\r ")),
				yellow.Render("Nathan Ollerenshaw"))
			return
		}
		if v, err := c.Flags().GetBool("install-config"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}
		_ = c.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.AddCommand(
		cmd.NewStartCmd(),
		cmd.NewNextCmd(),
		cmd.NewPreviousCmd(),
		cmd.NewPauseCmd(),
		cmd.NewResumeCmd(),
		cmd.NewCategoriseCmd(),
		cmd.NewLikeCmd(),
		cmd.NewDislikeCmd(),
		cmd.NewReloadCmd(),
		cmd.NewStopCmd(),
		cmd.NewConfigCmd(),
		cmd.NewGenManCmd(rootCmd),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/driftpaper/driftpaper.toml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("install-config", false, "Install a default config file")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Print version")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("driftpaper")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/driftpaper")
		viper.AddConfigPath("/etc/xdg/driftpaper")
	}

	config.SetDefaults(viper.GetViper())
	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Errorf("Error reading config file: %v", err)
			log.Warn("Continuing with default configuration")
		}
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}
