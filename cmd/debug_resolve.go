package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/athahersirnaik/json-conditions/internal/objpath"
)

var debugResolveFactory = NewFactory()

var debugResolveCmd = &cobra.Command{
	Use:   "resolve PATH",
	Short: "Resolve a property path against a reference document",
	Long: `Resolves a property path (e.g. 'sensors[0].readings["max.value"]') against a
reference document and dumps the value it lands on. Useful for checking why
a rule reads something unexpected.`,
	Example: `  json-conditions debug resolve 'devices[2].state' -i reference.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if path == "" {
			return fmt.Errorf("path cannot be empty")
		}

		reference, err := debugResolveFactory.LoadInput()
		if err != nil {
			return err
		}

		value, found := objpath.Lookup(reference, path)
		if !found && value == nil {
			log.Warn().Msgf("path %q did not resolve", path)
			return nil
		}

		log.Info().Msgf("path %q resolved:", path)
		spew.Dump(value)
		return nil
	},
}

func init() {
	debugCmd.AddCommand(debugResolveCmd)

	debugResolveFactory.bindInputFlag(debugResolveCmd.Flags())
	_ = debugResolveCmd.MarkFlagRequired("input")
}
