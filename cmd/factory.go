package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/athahersirnaik/json-conditions/internal/config"
)

// Factory resolves the documents a command works on from its flags.
type Factory struct {
	// RulesPath is the rule set document (YAML or JSON).
	RulesPath string

	// InputPath is the reference document to evaluate against.
	InputPath string
}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) LoadRules() (*config.Document, error) {
	if f.RulesPath == "" {
		return nil, fmt.Errorf("rules file not specified (use --rules)")
	}
	return config.Load(f.RulesPath)
}

func (f *Factory) LoadInput() (any, error) {
	if f.InputPath == "" {
		return nil, fmt.Errorf("input file not specified (use --input)")
	}
	return config.LoadReference(f.InputPath)
}

func (f *Factory) bindRulesFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&f.RulesPath, "rules", "f", "", "The rule set file to use")
}

func (f *Factory) bindInputFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&f.InputPath, "input", "i", "", "The reference document to evaluate")
}
