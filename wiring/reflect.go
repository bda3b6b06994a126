package wiring

import (
	"fmt"
	"reflect"
)

// Reflector is the capability every type retrievable through Get must
// implement: it binds the type to the stable option name it is stored under.
//
// The returned name is a type-level contract, not an instance property. It
// must be non-empty, deterministic for a given concrete type, and must not
// depend on mutable instance state; returning a constant string literal is
// the expected implementation:
//
//	type ConsoleLogger struct{ Out io.Writer }
//
//	func (ConsoleLogger) OptionName() string { return "log" }
//
// All candidate implementations of one slot return the same option name; the
// name identifies the slot, the concrete type identifies the candidate.
type Reflector interface {
	// OptionName returns the registry option name this type is stored under.
	OptionName() string
}

// OptionNameOf returns the option name declared by T without needing an
// instance. It is the lookup key Get uses, exposed so assembly code can
// register objects under the exact name the typed accessor will ask for:
//
//	reg.AddSingle(wiring.OptionNameOf[SystemClock](), &SystemClock{})
//
// T is the struct type itself, never a pointer to it; the name is read from
// T's zero value, and a pointer instantiation panics instead of dereferencing
// a nil receiver.
func OptionNameOf[T Reflector]() string {
	if t := reflect.TypeFor[T](); t.Kind() == reflect.Pointer {
		panic(fmt.Errorf("wiring: typed access takes the struct type, not %s", t))
	}
	var zero T
	return zero.OptionName()
}
