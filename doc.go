// Package ioc provides a typed wiring registry for assembling an application
// from swappable parts.
//
// The model is small and explicit: named option slots, named candidate
// alternatives per slot, at most one wired winner per slot, and typed
// retrieval that checks the concrete type at the boundary. Assembly stays in
// your composition root; there is no scanning, no tags, no reflection-driven
// graph resolution.
//
// See subpackages:
//   - wiring: the registry core (Register, ObjectMap, typed Get)
//   - plan: declarative wiring plans loaded from YAML/JSON/TOML config
//   - examples/*: runnable examples for hand wiring and plan-driven wiring
//
// Start with the examples for end-to-end assembly style.
package ioc
