// Command plancheck validates a wiring plan against a declared options manifest.
//
// A wiring plan picks one alternative per option; the program that owns the
// register only discovers a bad selection when it starts up and Apply fails.
// plancheck moves that discovery to the command line (or CI), so a plan can
// be checked the moment it is edited:
//
//	plancheck -plan wiring.yaml -manifest options.yaml
//
// Plan format
//
// The plan is the same document the plan package loads at runtime:
//
//	wire:
//	  log: console
//	  store: disk
//
// Manifest format
//
// The manifest declares the register shape the application builds in its
// composition root: every multi option with its candidate alternatives, and
// every fixed (single) option:
//
//	options:
//	  log: [console, file]
//	  store: [memory, disk]
//	fixed: [clock]
//
// Both documents may be YAML, JSON or TOML; the format is inferred from the
// file extension.
//
// What is checked
//
// plancheck rebuilds the declared register with placeholder objects and
// applies the plan to it, so the checks are the real ones:
//
//   - every planned option exists in the manifest
//   - every planned alternative exists for its option
//   - no planned option is fixed
//   - plan and manifest documents parse and are structurally valid
//     (no empty option or alternative names)
//
// A manifest that violates the register's own contracts (duplicate option
// names, empty names) aborts with the matching contract failure: the manifest
// declares assembly structure, and structural defects are defects wherever
// they are written down.
//
// Exit codes
//
//	0  plan is valid; selections are printed in option-name order
//	1  plan rejected, or a document failed to load
//	2  usage error
//
// What is NOT checked
//
// plancheck cannot know whether the manifest matches what the application
// really registers; keeping the two in sync is the application's job. A
// drifted manifest makes the check pass or fail spuriously, it never affects
// the program itself.
package main
