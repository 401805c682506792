package ipc

// CommandType names a control command. The set is closed: the decoder
// rejects anything outside it.
type CommandType string

const (
	CommandNext       CommandType = "next"
	CommandPrevious   CommandType = "previous"
	CommandPause      CommandType = "pause"
	CommandResume     CommandType = "resume"
	CommandCategorise CommandType = "categorise"
	CommandReload     CommandType = "reload"
	CommandShutdown   CommandType = "shutdown"

	// CommandConfig is client-only. It prints the resolved configuration
	// and never crosses the socket; Encode refuses it and Decode drops it.
	CommandConfig CommandType = "config"
)

// Command is one control message. Commands carry no identity and are
// independently idempotent, so delivery is at-most-once with no acks.
type Command struct {
	Type CommandType `json:"type"`
	Args []string    `json:"args,omitempty"`
}

// Categorise builds a categorise command for the given category name.
func Categorise(category string) Command {
	return Command{Type: CommandCategorise, Args: []string{category}}
}

// Category returns the category argument of a categorise command.
func (c Command) Category() string {
	if len(c.Args) > 0 {
		return c.Args[0]
	}
	return ""
}
