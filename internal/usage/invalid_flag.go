package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:     ErrInvalidFlag,
		Message:  fmt.Sprintf("cmdtree: invalid flag '%s'", flag),
		ExitCode: 2,
	}
}

// InvalidPage is returned when a page-carrying argument is not a number.
func InvalidPage(token string) *Error {
	return &Error{
		Kind:    ErrInvalidPage,
		Message: fmt.Sprintf("'%s' is not a valid page number", token),
	}
}
