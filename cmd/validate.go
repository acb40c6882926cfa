package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateFactory = NewFactory()

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rule set file",
	Long: `Checks a rule set file for authoring errors: missing properties, unknown
operators, nested collection markers, and transform/previous expressions
that do not compile.`,
	Example: `  json-conditions validate -f rules.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := validateFactory.LoadRules()
		if err != nil {
			return err
		}
		log.Info().Msgf("Rule set is valid (%d rule(s)).", len(doc.Rules))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateFactory.bindRulesFlag(validateCmd.Flags())
	_ = validateCmd.MarkFlagRequired("rules")
}
