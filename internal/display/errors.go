package display

import (
	"errors"
	"fmt"
)

// ContainerNotFoundError is returned when a display is constructed against
// a container that does not exist. No display instance is created.
type ContainerNotFoundError struct {
	Selector string
	cause    error
}

func (e *ContainerNotFoundError) Error() string {
	if e == nil || e.Selector == "" {
		return "container element not found"
	}
	return fmt.Sprintf("container %q not found", e.Selector)
}

func (e *ContainerNotFoundError) Unwrap() error { return e.cause }

func IsContainerNotFound(err error) bool {
	var e *ContainerNotFoundError
	return errors.As(err, &e)
}

// InvalidConfigurationError reports a rejected option value, such as a
// non-positive digit count or scroll speed. Values are never clamped.
type InvalidConfigurationError struct {
	Field string
	Value any
}

func (e *InvalidConfigurationError) Error() string {
	if e == nil {
		return "invalid configuration"
	}
	return fmt.Sprintf("invalid %s %v: must be > 0", e.Field, e.Value)
}

func IsInvalidConfiguration(err error) bool {
	var e *InvalidConfigurationError
	return errors.As(err, &e)
}
