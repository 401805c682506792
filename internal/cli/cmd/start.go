package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	godaemon "github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matjam/driftpaper/internal/cli/cmd/utils"
	"github.com/matjam/driftpaper/internal/config"
	"github.com/matjam/driftpaper/internal/daemon"
	"github.com/matjam/driftpaper/internal/ipc"
	"github.com/matjam/driftpaper/internal/monitor"
)

func NewStartCmd() *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the wallpaper daemon",
		Long: `Starts the wallpaper rotation daemon. Only one instance can run at a
time; a second start fails immediately.`,
		Run: func(cmd *cobra.Command, args []string) {
			if background, err := cmd.Flags().GetBool("background"); err == nil && background {
				startBackground()
				return
			}
			RunDaemon()
		},
	}
	startCmd.Flags().BoolP("background", "b", false, "Detach and run in the background")
	return startCmd
}

func startBackground() {
	ctx := &godaemon.Context{Umask: 027}

	child, err := ctx.Reborn()
	if err != nil {
		log.Fatalf("Error daemonizing: %v", err)
	}
	if child != nil {
		log.Infof("driftpaper started in the background with PID %d", child.Pid)
		return
	}
	defer func() { _ = ctx.Release() }()

	setupRotatingLogger()
	RunDaemon()
}

func setupRotatingLogger() {
	logDir := filepath.Join(utils.CanonicalPath("~/.local/share"), "driftpaper")
	logPath := filepath.Join(logDir, "driftpaper.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
}

// RunDaemon is the daemon body: build everything, bind the control
// plane, run the loop until shutdown.
func RunDaemon() {
	log.Infof("driftpaper daemon starting in PID %d", os.Getpid())

	mon := monitor.NewHyprctl()
	cfg, err := config.Load(mon)
	if err != nil {
		log.Errorf("Error in config: %v", err)
		log.Warn("Falling back to default config")
		cfg = config.Defaults(mon)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	d, err := daemon.New(cfg, mon, daemon.SwwwSetter{Path: cfg.SwwwPath})
	if err != nil {
		log.Fatalf("Error building wallpaper queue: %v", err)
	}
	if d.Queue().IsEmpty() {
		log.Infof("No wallpapers found in %s, nothing to do", cfg.WallpaperPath)
		return
	}
	log.Infof("Found %d wallpapers in %s", d.Queue().Len(), cfg.WallpaperPath)

	server, err := ipc.Listen(ipc.SocketPath(), ipc.LockPath())
	if err != nil {
		if errors.Is(err, ipc.ErrAlreadyRunning) {
			log.Fatal("driftpaper is already running; use 'driftpaper stop' to stop it")
		}
		log.Fatalf("Error binding control socket: %v", err)
	}
	defer server.Close()

	cmds := make(chan ipc.Command, 8)
	go server.Serve(cmds)

	if file := viper.ConfigFileUsed(); file != "" {
		if err := config.Watch(file, cmds); err != nil {
			log.Errorf("Error watching config file: %v", err)
			log.Warn("Config hot reloading disabled")
		}
	}

	daemon.ForwardSignals(cmds)

	d.Run(cmds)
	log.Info("driftpaper exited")
}
