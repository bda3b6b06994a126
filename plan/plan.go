package plan

import (
	"errors"
	"fmt"
	"io"
	"sort"

	validatorV10 "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/quizlx/ioc/wiring"
)

var validator *validatorV10.Validate

func init() {
	validator = validatorV10.New()
}

var (
	// ErrUnknownOption indicates the plan names an option the register never declared.
	ErrUnknownOption = errors.New("plan: unknown option")
	// ErrUnknownAlternative indicates the plan picks an alternative the option does not have.
	ErrUnknownAlternative = errors.New("plan: unknown alternative")
	// ErrFixedOption indicates the plan tries to rewire a single option.
	ErrFixedOption = errors.New("plan: fixed option")
)

// Plan is a declarative wiring selection: for each named option, the name of
// the alternative that should win the slot.
type Plan struct {
	Wire map[string]string `mapstructure:"wire" json:"wire" yaml:"wire" toml:"wire" validate:"dive,keys,required,endkeys,required"`
}

// Load reads and validates a plan from a config file. The format is inferred
// from the file extension.
func Load(path string) (*Plan, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("plan: read %s: %w", path, err)
	}
	return unmarshal(v)
}

// Parse reads and validates a plan from r. format names the config syntax,
// e.g. "yaml", "json" or "toml".
func Parse(r io.Reader, format string) (*Plan, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("plan: parse %s: %w", format, err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Plan, error) {
	var p Plan
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("plan: unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks structural validity: no empty option names, no empty
// alternative names. An empty plan is valid.
func (p *Plan) Validate() error {
	if err := validator.Struct(p); err != nil {
		return fmt.Errorf("plan: invalid: %w", err)
	}
	return nil
}

// Options returns the planned option names in lexicographic order.
func (p *Plan) Options() []string {
	names := make([]string, 0, len(p.Wire))
	for name := range p.Wire {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply wires every selection of p into reg, in option-name order.
//
// The whole plan is checked against the register first and nothing is wired
// unless every selection can be: an unknown option, an unknown alternative or
// an attempt to rewire a single option fails the Apply with the matching
// sentinel error and leaves the register exactly as it was. Options the plan
// does not mention keep their current wiring.
func Apply[Obj any](p *Plan, reg *wiring.Register[Obj]) error {
	names := p.Options()

	for _, name := range names {
		alt := p.Wire[name]
		switch reg.Objects.Kind(name) {
		case wiring.KindAbsent:
			return fmt.Errorf("%w %q", ErrUnknownOption, name)
		case wiring.KindSingle:
			return fmt.Errorf("%w %q cannot be rewired", ErrFixedOption, name)
		}
		if !hasAlternative(reg.Objects.Alternatives(name), alt) {
			return fmt.Errorf("%w %q for option %q", ErrUnknownAlternative, alt, name)
		}
	}

	for _, name := range names {
		reg.WireAlternative(name, p.Wire[name])
	}
	return nil
}

func hasAlternative(alts []string, name string) bool {
	for _, a := range alts {
		if a == name {
			return true
		}
	}
	return false
}
