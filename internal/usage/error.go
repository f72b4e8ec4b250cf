package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrInvalidPage
	ErrUnknownCommand
	ErrInvalidCommand
	ErrDuplicateCommand
	ErrInvalidConfigKey
	ErrFailedConfigPath
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Invalid page
//
//	Exit 3: Configuration errors in the command tree
//	  - Invalid command
//	  - Duplicate command
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrInvalidPage:      2,
	ErrUnknownCommand:   1,
	ErrInvalidCommand:   3,
	ErrDuplicateCommand: 3,
	ErrInvalidConfigKey: 1,
	ErrFailedConfigPath: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // kept for backward compatibility, computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is reports whether target is a usage error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Is reports whether err wraps a usage error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == kind
}

// ExitCode returns the exit code for err, or 1 for errors that are not
// usage errors.
func ExitCode(err error) int {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
