package ipc

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned by Listen when another process holds the
// singleton lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

const readTimeout = 5 * time.Second

// Server owns the daemon side of the control socket: the single-instance
// lock, the listening socket, and the accept loop that feeds decoded
// commands into the daemon's channel.
type Server struct {
	sockPath string
	lock     *flock.Flock
	listener net.Listener
}

// Listen acquires the exclusive lock and binds the control socket. The
// lock comes first: a socket file found without the lock held belongs to
// a crashed instance and is safe to remove. The caller must Close the
// server on every exit path.
func Listen(sockPath, lockPath string) (*Server, error) {
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s is held: %w", lockPath, ErrAlreadyRunning)
	}

	if _, err := os.Stat(sockPath); err == nil {
		log.Warnf("removing stale socket %s", sockPath)
		_ = os.Remove(sockPath)
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("binding %s: %w", sockPath, err)
	}

	log.Debugf("listening on %s", sockPath)
	return &Server{sockPath: sockPath, lock: lock, listener: listener}, nil
}

// Serve accepts one connection at a time, reads a single framed command
// and forwards it to cmds. Malformed frames are logged and dropped.
// Serve returns once the listener is closed, or right after forwarding a
// shutdown command: the daemon is stopping anyway, so the socket closes
// now instead of lingering until process exit.
func (s *Server) Serve(cmds chan<- Command) {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Errorf("accepting connection: %v", err)
			continue
		}

		cmd, err := readConn(conn)
		if err != nil {
			log.Warnf("dropping command: %v", err)
			continue
		}

		log.Debugf("received %q command", cmd.Type)
		cmds <- cmd
		if cmd.Type == CommandShutdown {
			return
		}
	}
}

func readConn(conn net.Conn) (Command, error) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	return ReadCommand(conn)
}

// Close unlinks the socket and releases the lock. Run it deferred so the
// cleanup also happens when the daemon panics.
func (s *Server) Close() error {
	var firstErr error
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		firstErr = err
	}
	if err := os.Remove(s.sockPath); err != nil && !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
		firstErr = err
	}
	if err := s.lock.Unlock(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
