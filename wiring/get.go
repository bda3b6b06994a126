package wiring

import "reflect"

// Get retrieves the object wired under T's option name, typed as *T.
//
// Storage is type-erased; Get restores the type at the boundary with a
// checked cast. It returns:
//   - MissingOptionError when no option exists under T's option name or the
//     option is a multi with nothing wired
//   - TypeMismatchError when an object is wired but its dynamic type is not
//     *T (a different candidate won the slot)
//
// On success the returned pointer is the stored object itself: the map keeps
// ownership, the caller borrows, and mutations through the pointer are
// visible to every other reader.
//
// Objects are expected to be registered as pointers; a value stored by value
// reports TypeMismatchError against the pointer type. T itself is always the
// struct type: Get[ConsoleLogger] returns *ConsoleLogger, and instantiating
// with the pointer type (Get[*ConsoleLogger]) panics via OptionNameOf.
func Get[T Reflector, Obj any](m *ObjectMap[Obj]) (*T, error) {
	name := OptionNameOf[T]()
	obj, ok := m.Object(name)
	if !ok {
		return nil, MissingOptionError{Option: name}
	}
	ret, ok := any(obj).(*T)
	if !ok {
		return nil, TypeMismatchError{
			Option:   name,
			Expected: reflect.TypeFor[*T](),
			Found:    reflect.TypeOf(obj),
		}
	}
	return ret, nil
}

// MustGet is Get panicking on failure. Useful once assembly is known to be
// complete, and in tests.
func MustGet[T Reflector, Obj any](m *ObjectMap[Obj]) *T {
	ret, err := Get[T](m)
	if err != nil {
		panic(err)
	}
	return ret
}
