package usage

import "fmt"

func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a configuration key. See 'config list'.", key),
	}
}

func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("could not resolve the configuration file: %v", err),
	}
}
