package wiring

import (
	"reflect"
	"strconv"
)

// MissingOptionError is returned by Get when the requested type's option name
// has no corresponding option in the map, or the option exists but nothing is
// wired to it yet. Both situations look identical to a consumer: no object
// resolves under that name.
type MissingOptionError struct {
	// Option is the option name that failed to resolve.
	Option string
}

// Error implements the error interface.
func (e MissingOptionError) Error() string {
	// Example: wiring: option "log" is missing or not wired
	return "wiring: option " + strconv.Quote(e.Option) + " is missing or not wired"
}

// TypeMismatchError is returned by Get when an object is wired under the
// requested option name but its concrete type is not the requested one.
//
// It carries both type identities so callers can log exactly which candidate
// was wired instead of the one they asked for.
type TypeMismatchError struct {
	// Option is the option name the lookup resolved.
	Option string

	// Expected is the type identity the caller requested.
	Expected reflect.Type

	// Found is the dynamic type of the object actually wired.
	Found reflect.Type
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: wiring: option "log" holds *app.ConsoleLogger, want *app.FileLogger
	return "wiring: option " + strconv.Quote(e.Option) +
		" holds " + e.Found.String() + ", want " + e.Expected.String()
}
