// cmd/plancheck/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/quizlx/ioc/plan"
	"github.com/quizlx/ioc/wiring"
)

// This binary checks a wiring plan offline, before the program that owns the
// register ever runs.
//
// It reads two documents:
// - the plan: the option -> alternative selections to check
// - the manifest: the options and alternatives the application declares
//
// It rebuilds the declared register shape with placeholder objects, then
// applies the plan against it, so the check exercises exactly the validation
// a real Apply performs: unknown options, unknown alternatives and attempts
// to rewire fixed options are all reported.

// Manifest declares the register shape an application builds: every multi
// option with its candidate alternatives, and every fixed option.
type Manifest struct {
	// Options maps each multi option to its alternative names.
	Options map[string][]string `mapstructure:"options" json:"options" yaml:"options" toml:"options"`

	// Fixed lists single options; plans must not rewire them.
	Fixed []string `mapstructure:"fixed" json:"fixed" yaml:"fixed" toml:"fixed"`
}

// placeholder stands in for the real objects when rebuilding the register.
type placeholder struct{}

// run executes the check and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("plancheck", flag.ContinueOnError)
	flags.SetOutput(stderr)

	planPath := flags.String("plan", "", "path to the wiring plan file")
	manifestPath := flags.String("manifest", "", "path to the options manifest file")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*planPath) == "" || strings.TrimSpace(*manifestPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: plancheck -plan <wiring.yaml> -manifest <options.yaml>")
		return 2
	}

	manifest, err := loadManifest(*manifestPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	p, err := plan.Load(*planPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if err := plan.Apply(p, rebuild(manifest)); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	for _, name := range p.Options() {
		_, _ = fmt.Fprintf(stdout, "%s -> %s\n", name, p.Wire[name])
	}
	_, _ = fmt.Fprintf(stdout, "plan ok: %d selection(s)\n", len(p.Wire))
	return 0
}

// loadManifest reads the manifest document. The format is inferred from the
// file extension.
func loadManifest(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("plancheck: read %s: %w", path, err)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("plancheck: unmarshal %s: %w", path, err)
	}
	return &m, nil
}

// rebuild reconstructs the register shape the manifest declares, holding
// placeholders instead of real objects. The register's own contracts police
// the manifest: duplicate or empty names panic, exactly as they would in the
// owning program's assembly.
func rebuild(m *Manifest) *wiring.Register[any] {
	reg := wiring.New[any]()

	names := make([]string, 0, len(m.Options))
	for name := range m.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		reg.AddOption(name)
		for _, alt := range m.Options[name] {
			reg.AddAlternative(name, alt, placeholder{})
		}
	}
	for _, name := range m.Fixed {
		reg.AddSingle(name, placeholder{})
	}
	return reg
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
