package usage

import "fmt"

// CommandError wraps a failure raised by a command action or one of its
// alias actions. Command is the name of the node whose action failed.
type CommandError struct {
	Command string
	Cause   error
}

// NewCommandError wraps cause as a failure of the named command.
func NewCommandError(command string, cause error) *CommandError {
	return &CommandError{Command: command, Cause: cause}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Cause)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

var _ error = (*CommandError)(nil)
