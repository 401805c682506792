package ipc

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// Wire format: a 2-byte little-endian payload length followed by exactly
// that many bytes of JSON encoding one Command. One command per
// connection; the client writes a single frame and hangs up.

var (
	// ErrLocalOnly marks commands that must never touch the transport.
	ErrLocalOnly = errors.New("command is local-only")

	// ErrUnknownCommand marks a command type outside the closed set.
	ErrUnknownCommand = errors.New("unknown command type")
)

var wireCommands = map[CommandType]bool{
	CommandNext:       true,
	CommandPrevious:   true,
	CommandPause:      true,
	CommandResume:     true,
	CommandCategorise: true,
	CommandReload:     true,
	CommandShutdown:   true,
}

// Encode serializes a command into a frame payload.
func Encode(cmd Command) ([]byte, error) {
	if cmd.Type == CommandConfig {
		return nil, fmt.Errorf("encoding %q: %w", cmd.Type, ErrLocalOnly)
	}
	if !wireCommands[cmd.Type] {
		return nil, fmt.Errorf("encoding: %w: %q", ErrUnknownCommand, cmd.Type)
	}
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", cmd.Type, err)
	}
	if len(payload) > math.MaxUint16 {
		return nil, fmt.Errorf("encoding %q: payload is %d bytes, frame limit is %d",
			cmd.Type, len(payload), math.MaxUint16)
	}
	return payload, nil
}

// Decode parses a frame payload back into a command. Failures are local
// to the one message and must never stop the accept loop.
func Decode(payload []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return Command{}, fmt.Errorf("decoding command: %w", err)
	}
	if cmd.Type == CommandConfig {
		return Command{}, fmt.Errorf("decoding %q: %w", cmd.Type, ErrLocalOnly)
	}
	if !wireCommands[cmd.Type] {
		return Command{}, fmt.Errorf("decoding: %w: %q", ErrUnknownCommand, cmd.Type)
	}
	return cmd, nil
}

// WriteCommand frames and writes one command.
func WriteCommand(w io.Writer, cmd Command) error {
	payload, err := Encode(cmd)
	if err != nil {
		return err
	}
	var length [2]byte
	binary.LittleEndian.PutUint16(length[:], uint16(len(payload)))
	if _, err := w.Write(length[:]); err != nil {
		return fmt.Errorf("writing frame length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing frame payload: %w", err)
	}
	return nil
}

// ReadCommand reads one framed command: the length prefix first, then
// exactly that many payload bytes.
func ReadCommand(r io.Reader) (Command, error) {
	var length [2]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return Command{}, fmt.Errorf("reading frame length: %w", err)
	}
	payload := make([]byte, binary.LittleEndian.Uint16(length[:]))
	if _, err := io.ReadFull(r, payload); err != nil {
		return Command{}, fmt.Errorf("reading frame payload: %w", err)
	}
	return Decode(payload)
}
