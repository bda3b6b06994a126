package wiring

import (
	"fmt"
	"iter"
	"sort"
)

// OptionKind describes what a name resolves to inside an ObjectMap.
type OptionKind int

const (
	KindAbsent OptionKind = iota // no option under the name
	KindSingle                   // fixed option, always wired
	KindMulti                    // alternative-carrying option
)

// String returns a human-readable kind name.
func (k OptionKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ObjectMap is the name-keyed collection of wiring options and the read
// surface of the registry. It owns every stored object; accessors hand out
// the stored references without transferring ownership.
//
// Obj is the erased supertype all stored objects share. ObjectMap[any] admits
// anything; instantiating with a narrower interface makes AddAlternative and
// AddSingle reject foreign objects at compile time.
//
// The zero value is a valid empty map for reads. Structural mutation goes
// through Register only, during single-threaded assembly; afterwards any
// number of readers may query concurrently as long as nobody rewires.
type ObjectMap[Obj any] struct {
	options map[string]*option[Obj]
}

// Object returns the object currently resolved under name. ok is false when
// no option exists under the name or the option is a multi with nothing
// wired; the two cases are indistinguishable on purpose (use Kind or IsWired
// to tell them apart).
func (m *ObjectMap[Obj]) Object(name string) (obj Obj, ok bool) {
	opt, ok := m.options[name]
	if !ok {
		var zero Obj
		return zero, false
	}
	return opt.object()
}

// MustObject returns the object currently resolved under name, panicking when
// nothing resolves. It is meant for call sites that established the wiring by
// construction; anything less certain belongs on Object or Get.
func (m *ObjectMap[Obj]) MustObject(name string) Obj {
	obj, ok := m.Object(name)
	if !ok {
		panic(fmt.Errorf("wiring: option %q is missing or not wired", name))
	}
	return obj
}

// Has reports whether an option exists under name, wired or not.
func (m *ObjectMap[Obj]) Has(name string) bool {
	_, ok := m.options[name]
	return ok
}

// Len returns the number of declared options, wired or not.
func (m *ObjectMap[Obj]) Len() int {
	return len(m.options)
}

// Kind reports what name resolves to: KindAbsent, KindSingle or KindMulti.
func (m *ObjectMap[Obj]) Kind(name string) OptionKind {
	opt, ok := m.options[name]
	switch {
	case !ok:
		return KindAbsent
	case opt.single:
		return KindSingle
	default:
		return KindMulti
	}
}

// Names returns all declared option names in lexicographic order.
func (m *ObjectMap[Obj]) Names() []string {
	names := make([]string, 0, len(m.options))
	for name := range m.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Alternatives returns the alternative names of a multi option in the order
// they were added. It returns nil for absent names and for single options,
// which carry no alternative concept.
func (m *ObjectMap[Obj]) Alternatives(name string) []string {
	opt, ok := m.options[name]
	if !ok || opt.single {
		return nil
	}
	names := make([]string, len(opt.alts))
	for i, a := range opt.alts {
		names[i] = a.name
	}
	return names
}

// IsWired reports whether name currently resolves to an object. Single
// options are always wired; multi options only after WireAlternative.
func (m *ObjectMap[Obj]) IsWired(name string) bool {
	opt, ok := m.options[name]
	if !ok {
		return false
	}
	_, ok = opt.object()
	return ok
}

// WiredAlternative returns the name of the alternative currently wired to a
// multi option. ok is false for absent names, unwired multi options and
// single options (which have no alternative name to report).
func (m *ObjectMap[Obj]) WiredAlternative(name string) (string, bool) {
	opt, ok := m.options[name]
	if !ok || opt.single || opt.wired == unwired {
		return "", false
	}
	return opt.alts[opt.wired].name, true
}

// Wired returns an iterator over (name, object) pairs covering exactly the
// options that currently resolve to an object: single options always, multi
// options only while wired. Pairs are yielded in lexicographic name order
// regardless of insertion order, and the sequence can be ranged over any
// number of times.
//
// The name set is fixed when iteration starts; objects are read live.
// Mutating the registry while iterating is undefined and must be avoided.
func (m *ObjectMap[Obj]) Wired() iter.Seq2[string, Obj] {
	return func(yield func(string, Obj) bool) {
		for _, name := range m.Names() {
			obj, ok := m.options[name].object()
			if !ok {
				continue
			}
			if !yield(name, obj) {
				return
			}
		}
	}
}
