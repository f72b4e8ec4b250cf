package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no registered command matches an identifier.
// Suggestions, if any, are appended as a "did you mean" hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a command. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:     ErrUnknownCommand,
		Message:  msg,
		ExitCode: 1,
	}
}
