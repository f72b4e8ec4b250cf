package usage

import "fmt"

// InvalidCommand is returned when a command node fails validation at
// registration time. It is a programming error in the command tree, not
// something the person typing the command can fix.
func InvalidCommand(name, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidCommand,
		Message: fmt.Sprintf("command %q: %s", name, reason),
	}
}

// DuplicateCommand is returned by strict registration when a command with
// the same name is already registered.
func DuplicateCommand(name string) *Error {
	return &Error{
		Kind:    ErrDuplicateCommand,
		Message: fmt.Sprintf("command %q is already registered", name),
	}
}
