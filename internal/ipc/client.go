package ipc

import (
	"fmt"
	"net"
	"time"
)

const dialTimeout = 2 * time.Second

// Send delivers one command to the running daemon over the default
// socket and closes the connection. There is no retry and no queueing;
// if nothing is listening the caller hears about it immediately.
func Send(cmd Command) error {
	return SendTo(SocketPath(), cmd)
}

// SendTo is Send against an explicit socket path.
func SendTo(sockPath string, cmd Command) error {
	if cmd.Type == CommandConfig {
		return fmt.Errorf("sending %q: %w", cmd.Type, ErrLocalOnly)
	}

	conn, err := net.DialTimeout("unix", sockPath, dialTimeout)
	if err != nil {
		return fmt.Errorf("connecting to %s (is the daemon running?): %w", sockPath, err)
	}
	defer conn.Close()

	return WriteCommand(conn, cmd)
}
