package wiring_test

import (
	"testing"

	"github.com/quizlx/ioc/wiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Object / MustObject
// -----------------------------------------------------------------------------

// TestObject_Resolution verifies Object resolves singles always and multis only while wired.
func TestObject_Resolution(t *testing.T) {
	t.Parallel()

	reg := wiring.New[any]()
	reg.AddSingle("clock", &SystemClock{Zone: "UTC"})
	reg.AddOption("log")
	reg.AddAlternative("log", "console", &ConsoleLogger{})

	obj, ok := reg.Objects.Object("clock")
	require.True(t, ok)
	require.NotNil(t, obj)

	_, ok = reg.Objects.Object("log")
	assert.False(t, ok)

	_, ok = reg.Objects.Object("missing")
	assert.False(t, ok)

	reg.WireAlternative("log", "console")
	obj, ok = reg.Objects.Object("log")
	require.True(t, ok)
	assert.IsType(t, &ConsoleLogger{}, obj)
}

// TestMustObject_PanicsWhenNothingResolves verifies the fatal raw accessor.
func TestMustObject_PanicsWhenNothingResolves(t *testing.T) {
	t.Parallel()

	reg := wiring.New[any]()
	reg.AddOption("log")
	reg.AddAlternative("log", "console", &ConsoleLogger{})

	require.PanicsWithError(t, `wiring: option "missing" is missing or not wired`, func() {
		_ = reg.Objects.MustObject("missing")
	})
	require.PanicsWithError(t, `wiring: option "log" is missing or not wired`, func() {
		_ = reg.Objects.MustObject("log")
	})

	reg.WireAlternative("log", "console")
	assert.NotNil(t, reg.Objects.MustObject("log"))
}

//
// -----------------------------------------------------------------------------
// Introspection
// -----------------------------------------------------------------------------

// TestIntrospection verifies Has, Len, Kind, Names and WiredAlternative over a mixed map.
func TestIntrospection(t *testing.T) {
	t.Parallel()

	reg := wiring.New[any]()
	reg.AddOption("store")
	reg.AddAlternative("store", "memory", "memory store")
	reg.AddAlternative("store", "disk", "disk store")
	reg.WireAlternative("store", "disk")
	reg.AddSingle("clock", &SystemClock{})
	reg.AddOption("log")

	m := reg.Objects

	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Has("store"))
	assert.True(t, m.Has("log"))
	assert.False(t, m.Has("missing"))

	assert.Equal(t, wiring.KindMulti, m.Kind("store"))
	assert.Equal(t, wiring.KindSingle, m.Kind("clock"))
	assert.Equal(t, wiring.KindAbsent, m.Kind("missing"))

	assert.Equal(t, []string{"clock", "log", "store"}, m.Names())
	assert.Equal(t, []string{"memory", "disk"}, m.Alternatives("store"))
	assert.Nil(t, m.Alternatives("missing"))

	name, ok := m.WiredAlternative("store")
	require.True(t, ok)
	assert.Equal(t, "disk", name)

	_, ok = m.WiredAlternative("log")
	assert.False(t, ok)
	_, ok = m.WiredAlternative("missing")
	assert.False(t, ok)
}

// TestOptionKind_String verifies the kind labels.
func TestOptionKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "absent", wiring.KindAbsent.String())
	assert.Equal(t, "single", wiring.KindSingle.String())
	assert.Equal(t, "multi", wiring.KindMulti.String())
	assert.Equal(t, "unknown", wiring.OptionKind(42).String())
}

// TestObjectMap_ZeroValueReads verifies the zero value behaves as an empty map for reads.
func TestObjectMap_ZeroValueReads(t *testing.T) {
	t.Parallel()

	var m wiring.ObjectMap[any]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("log"))
	assert.Equal(t, wiring.KindAbsent, m.Kind("log"))
	assert.Empty(t, m.Names())
	assert.Nil(t, m.Alternatives("log"))
	assert.False(t, m.IsWired("log"))

	_, ok := m.Object("log")
	assert.False(t, ok)

	for range m.Wired() {
		t.Fatal("empty map must not yield")
	}
}

//
// -----------------------------------------------------------------------------
// Wired iteration
// -----------------------------------------------------------------------------

// TestWired_YieldsExactlyResolvedOptionsInNameOrder verifies the iteration set covers
// singles and wired multis only, ordered by name rather than insertion.
func TestWired_YieldsExactlyResolvedOptionsInNameOrder(t *testing.T) {
	t.Parallel()

	// insertion order deliberately scrambled relative to name order
	reg := wiring.New[any]()
	reg.AddOption("c")
	reg.AddAlternative("c", "y", "object c/y")
	reg.AddOption("b")
	reg.AddAlternative("b", "x", "object b/x")
	reg.AddSingle("a", "object a")
	reg.WireAlternative("c", "y")

	var names []string
	var objs []any
	for name, obj := range reg.Objects.Wired() {
		names = append(names, name)
		objs = append(objs, obj)
	}

	assert.Equal(t, []string{"a", "c"}, names)
	assert.Equal(t, []any{"object a", "object c/y"}, objs)
}

// TestWired_RestartableAndBreakable verifies the sequence can be ranged repeatedly
// and stopped early without side effects.
func TestWired_RestartableAndBreakable(t *testing.T) {
	t.Parallel()

	reg := wiring.New[any]()
	reg.AddSingle("a", "object a")
	reg.AddOption("b")
	reg.AddAlternative("b", "x", "object b/x")
	reg.WireAlternative("b", "x")

	seq := reg.Objects.Wired()

	var first []string
	for name := range seq {
		first = append(first, name)
	}

	var second []string
	for name := range seq {
		second = append(second, name)
	}
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, first, second)

	var head string
	for name := range seq {
		head = name
		break
	}
	assert.Equal(t, "a", head)
}

// TestWired_TracksRewiring verifies iteration reads the live selection, so a later
// run reflects a rewired slot.
func TestWired_TracksRewiring(t *testing.T) {
	t.Parallel()

	reg := wiring.New[any]()
	reg.AddOption("store")
	reg.AddAlternative("store", "memory", "memory store")
	reg.AddAlternative("store", "disk", "disk store")
	reg.WireAlternative("store", "memory")

	collect := func() map[string]any {
		got := map[string]any{}
		for name, obj := range reg.Objects.Wired() {
			got[name] = obj
		}
		return got
	}

	assert.Equal(t, map[string]any{"store": "memory store"}, collect())

	reg.WireAlternative("store", "disk")
	assert.Equal(t, map[string]any{"store": "disk store"}, collect())
}
