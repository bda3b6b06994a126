// Package wiring provides a typed, heterogeneous wiring registry for Go.
//
// The registry is built from three pieces:
//
//   - Register is the mutation facade used during assembly. It declares named
//     option slots, fills them with named candidate alternatives, and wires
//     (selects) at most one alternative per slot. Structural mistakes here
//     (duplicate names, wiring a candidate that was never added) are treated
//     as assembly-time defects and panic.
//
//   - ObjectMap is the read side handed to consumers once assembly is done.
//     It resolves option names to the currently wired object, iterates wired
//     entries in name order, and answers introspection queries (which options
//     exist, which alternatives they carry, what is wired).
//
//   - Get and MustGet form the typed retrieval protocol. A stored type declares
//     its own option name through the Reflector interface; Get looks the
//     option up under that name and performs a checked cast, returning
//     MissingOptionError or TypeMismatchError instead of ever exposing an
//     unchecked cast.
//
// Design goals:
//   - Explicit wiring: slots and candidates are declared by name in your
//     composition root; nothing is discovered or constructed automatically.
//   - Fail fast on assembly defects: structural violations panic during
//     setup, so a misconfigured binary never starts half-wired.
//   - Recoverable retrieval: "nothing wired yet" and "a different candidate
//     is wired" are ordinary runtime conditions reported as typed errors.
//   - No internal locking: assembly happens single-threaded, reads afterwards
//     may fan out; callers requiring concurrent mutation bring their own lock.
//
// Quick guidance
//
// Assemble in one place, then hand out the object map:
//
//	reg := wiring.New[any]()
//	reg.AddOption("log")
//	reg.AddAlternative("log", "console", &ConsoleLogger{})
//	reg.AddAlternative("log", "file", &FileLogger{Path: "/var/log/app"})
//	reg.WireAlternative("log", "console")
//	reg.AddSingle("clock", &SystemClock{})
//
//	objects := reg.Objects
//	logger, err := wiring.Get[ConsoleLogger](objects)
//
// Import
//
//	"github.com/quizlx/ioc/wiring"
package wiring
