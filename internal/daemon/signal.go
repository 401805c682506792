package daemon

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/matjam/driftpaper/internal/ipc"
)

// ForwardSignals converts SIGINT and SIGTERM into a shutdown command on
// the daemon channel, so interrupts take the same ordered path as every
// other command source.
func ForwardSignals(cmds chan<- ipc.Command) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		s := <-signals
		log.Infof("received %s, shutting down", s)
		cmds <- ipc.Command{Type: ipc.CommandShutdown}
	}()
}
