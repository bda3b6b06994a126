package wiring

// unwired marks a multi option with no selected alternative.
const unwired = -1

// alternative is one named candidate held by a multi option.
type alternative[Obj any] struct {
	name string
	obj  Obj
}

// option is the state held for a single named slot. It is one of two fixed
// kinds: a single option created around exactly one object and always wired,
// or a multi option holding an ordered list of named alternatives of which at
// most one is wired. The kind never changes after creation, alternatives are
// never removed, and only the wired index moves.
//
// Contract checking (duplicate alternatives, wiring unknown names) lives in
// Register, which owns all structural mutation; this type only holds state.
type option[Obj any] struct {
	single bool
	obj    Obj // single payload; zero value for multi

	wired int // index into alts; unwired when nothing is selected
	alts  []alternative[Obj]
}

func newMulti[Obj any]() *option[Obj] {
	return &option[Obj]{wired: unwired}
}

func newSingle[Obj any](obj Obj) *option[Obj] {
	return &option[Obj]{single: true, obj: obj}
}

// altIndex returns the position of the named alternative, or unwired when the
// option has no such alternative. Single options never have alternatives.
func (o *option[Obj]) altIndex(name string) int {
	for i, a := range o.alts {
		if a.name == name {
			return i
		}
	}
	return unwired
}

// object returns the currently resolved object: a single option always
// resolves, a multi option resolves only while wired. Absence is a valid
// state here, never an error.
func (o *option[Obj]) object() (Obj, bool) {
	if o.single {
		return o.obj, true
	}
	if o.wired == unwired {
		var zero Obj
		return zero, false
	}
	return o.alts[o.wired].obj, true
}
