package wiring

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Register is the mutation facade of the registry: the only component that
// declares options, adds alternatives and wires selections. It exclusively
// owns its ObjectMap during assembly; once assembly is done, hand Objects to
// consumers and stop mutating.
//
// Every operation treats a violated precondition as an assembly-time defect
// and panics with a descriptive error. Configuration read from data at
// runtime should be validated before it reaches the Register (see the plan
// package), so that a panic here always means a programming error.
type Register[Obj any] struct {
	// Objects is the object map being assembled. Readable at any time;
	// hand it out once structural mutation is finished.
	Objects *ObjectMap[Obj]

	log *zap.Logger
}

// New creates an empty Register.
func New[Obj any]() *Register[Obj] {
	return &Register[Obj]{
		Objects: &ObjectMap[Obj]{options: make(map[string]*option[Obj])},
		log:     zap.NewNop(),
	}
}

// WithLogger attaches a logger for structural mutation events and returns the
// Register for chaining. A nil logger is a no-op; the default is zap.NewNop.
func (r *Register[Obj]) WithLogger(log *zap.Logger) *Register[Obj] {
	if log != nil {
		r.log = log
	}
	return r
}

// AddOption declares a new, empty multi option: no alternatives, nothing
// wired. It panics when an option with the same name already exists or the
// name is empty.
func (r *Register[Obj]) AddOption(name string) {
	if name == "" {
		panic(fmt.Errorf("wiring: empty option name"))
	}
	if _, exists := r.Objects.options[name]; exists {
		panic(fmt.Errorf("wiring: option %q already exists", name))
	}
	r.Objects.options[name] = newMulti[Obj]()
	r.log.Info("option added", zap.String("option", name))
}

// AddAlternative appends a named candidate to a multi option. The wired
// selection is left untouched. It panics when the option does not exist, the
// option is a single option, the alternative name is already taken for that
// option, the alternative name is empty, or the object is nil. A typed nil
// pointer counts as nil.
func (r *Register[Obj]) AddAlternative(optName, altName string, obj Obj) {
	if altName == "" {
		panic(fmt.Errorf("wiring: empty alternative name for option %q", optName))
	}
	if isNil(any(obj)) {
		panic(fmt.Errorf("wiring: nil object for alternative %q of option %q", altName, optName))
	}
	opt := r.option(optName)
	if opt.single {
		panic(fmt.Errorf("wiring: option %q holds a single object, alternatives are not allowed", optName))
	}
	if opt.altIndex(altName) != unwired {
		panic(fmt.Errorf("wiring: option %q already has alternative %q", optName, altName))
	}
	opt.alts = append(opt.alts, alternative[Obj]{name: altName, obj: obj})
	r.log.Info("alternative added",
		zap.String("option", optName),
		zap.String("alternative", altName))
}

// WireAlternative selects the named alternative as the active object of a
// multi option. Re-wiring to a different existing alternative is always
// allowed and simply overwrites the selection. It panics when the option does
// not exist or has no alternative with that name (single options never have
// alternatives, so wiring against one panics too).
func (r *Register[Obj]) WireAlternative(optName, altName string) {
	opt := r.option(optName)
	i := opt.altIndex(altName)
	if i == unwired {
		panic(fmt.Errorf("wiring: option %q has no alternative %q", optName, altName))
	}
	opt.wired = i
	r.log.Info("alternative wired",
		zap.String("option", optName),
		zap.String("alternative", altName))
}

// AddSingle declares a fixed option holding exactly one object, implicitly
// wired from the start; it never gains alternatives and can never be unwired.
// It panics when an option with the same name already exists, the name is
// empty, or the object is nil. A typed nil pointer counts as nil.
func (r *Register[Obj]) AddSingle(name string, obj Obj) {
	if name == "" {
		panic(fmt.Errorf("wiring: empty option name"))
	}
	if isNil(any(obj)) {
		panic(fmt.Errorf("wiring: nil object for single option %q", name))
	}
	if _, exists := r.Objects.options[name]; exists {
		panic(fmt.Errorf("wiring: option %q already exists", name))
	}
	r.Objects.options[name] = newSingle(obj)
	r.log.Info("single option added", zap.String("option", name))
}

// option resolves an option by name, panicking when it does not exist.
func (r *Register[Obj]) option(name string) *option[Obj] {
	opt, ok := r.Objects.options[name]
	if !ok {
		panic(fmt.Errorf("wiring: option %q does not exist", name))
	}
	return opt
}

// isNil reports whether obj is nil in any representation: the nil interface
// itself, or a nil pointer, map, slice, channel or function carried inside a
// non-nil interface.
func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
