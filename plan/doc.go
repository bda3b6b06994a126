/*
Package plan loads declarative wiring plans and applies them to a register.

A plan is the data-driven half of assembly: code declares the options and
candidate alternatives, a plan file picks which alternative wins each slot.
Plans are plain config documents (YAML, JSON or TOML), so the selection can
live next to the rest of an application's configuration and change between
environments without recompiling.

	wire:
	  log: console
	  store: disk

Unlike the registration API, which treats violations as assembly defects and
panics, everything here is data coming from outside the program: loading,
validation and application all return errors. Apply checks the whole plan
against the register before wiring anything, so a failed Apply leaves the
register untouched.

Usage:

	p, err := plan.Load("wiring.yaml")
	if err != nil {
		return err
	}
	if err := plan.Apply(p, reg); err != nil {
		return err
	}

Import:

	import "github.com/quizlx/ioc/plan"
*/
package plan
