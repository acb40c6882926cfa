package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/athahersirnaik/json-conditions/internal/config"
	"github.com/athahersirnaik/json-conditions/internal/core"
	"github.com/athahersirnaik/json-conditions/internal/engine"
	"github.com/athahersirnaik/json-conditions/internal/logging"
)

// errEvaluationFailed marks a FAIL verdict so Execute can exit non-zero
// without logging a crash.
var errEvaluationFailed = errors.New("evaluation failed")

var (
	evalFactory   = NewFactory()
	evalPrevious  string
	evalShowTrace bool
	evalAsTable   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a rule set against a reference document",
	Long: `Evaluates every rule of the given rule set against a reference document and
prints how each rule fared. The exit code follows the verdict: 0 for PASS,
1 for FAIL.

Rules using the 'crosses' operator need a previous observation; supply one
either as a 'previous' expression in the rule set or as a snapshot document
via --previous.`,
	Example: `  # Evaluate rules against a JSON document
  json-conditions eval -f rules.yaml -i reference.json

  # Threshold crossings against a previous snapshot
  json-conditions eval -f rules.yaml -i current.json --previous previous.json

  # Raw engine trace instead of the rendered report
  json-conditions eval -f rules.yaml -i reference.json --trace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := evalFactory.LoadRules()
		if err != nil {
			return err
		}
		reference, err := evalFactory.LoadInput()
		if err != nil {
			return err
		}

		opts := config.BuildOptions{}
		if evalPrevious != "" {
			snapshot, err := config.LoadReference(evalPrevious)
			if err != nil {
				return err
			}
			opts.PreviousSnapshot = snapshot
		}
		if evalShowTrace {
			opts.Log = logging.Func(logging.WriterSink{W: os.Stdout})
		}

		settings, err := doc.BuildSettings(opts)
		if err != nil {
			return err
		}

		report, err := engine.Evaluate(settings, reference)
		if err != nil {
			return err
		}

		if report.Verdict == core.VerdictSkipped {
			log.Warn().Msg("no rules configured, nothing to evaluate")
			return nil
		}

		if !evalShowTrace {
			if evalAsTable {
				printResultTable(report)
			} else {
				printReport(report)
			}
		}

		if !report.Verdict.Passed() {
			return errEvaluationFailed
		}
		return nil
	},
}

func printReport(report *core.Report) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("\n%s (%s)\n", bold("Evaluation"), faint(report.CorrelationID))
	fmt.Println(faint("---------------------------------------------------"))

	for _, res := range report.Results {
		icon := red("✖")
		if res.Passed {
			icon = green("✔")
		}

		expr := fmt.Sprintf("%s %s", res.Property, res.Op)
		if !res.Op.Unary() {
			expr = fmt.Sprintf("%s %s %v", res.Property, res.Op, res.Target)
		}

		fmt.Printf("%s #%d %s\n", icon, res.Index, bold(expr))

		resolved := fmt.Sprintf("resolved: %v", res.Resolved)
		if !res.Found {
			resolved = "resolved: <missing>"
		}
		if res.Passed {
			fmt.Printf("    %s\n", faint(resolved))
		} else {
			fmt.Printf("    %s\n", yellow(resolved))
		}

		if res.Detail != "" {
			fmt.Printf("    %s\n", faint(res.Detail))
		}
	}

	fmt.Println(faint("---------------------------------------------------"))
	if report.NormalTotal > 0 {
		fmt.Printf("normal: %d/%d passed (satisfy %s)\n",
			report.NormalPassed, report.NormalTotal, report.Satisfy)
	}
	if report.RequiredTotal > 0 {
		fmt.Printf("required: %d/%d passed\n",
			report.RequiredPassed, report.RequiredTotal)
	}
	if report.Verdict.Passed() {
		fmt.Printf("Result: %s\n\n", bold(green("PASS")))
	} else {
		fmt.Printf("Result: %s\n\n", bold(red("FAIL")))
	}
}

func printResultTable(report *core.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{
		"#", "Property", "Op", "Value", "Resolved", "Required", "Result",
	})

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, res := range report.Results {
		target := "-"
		if !res.Op.Unary() {
			target = truncate(fmt.Sprintf("%v", res.Target), 32)
		}
		resolved := "<missing>"
		if res.Found {
			resolved = truncate(fmt.Sprintf("%v", res.Resolved), 32)
		}

		outcome := red("fail")
		if res.Passed {
			outcome = green("pass")
		}

		required := ""
		if res.Required {
			required = "yes"
		}

		t.AppendRow(table.Row{
			res.Index,
			bold(truncate(res.Property, 48)),
			res.Op,
			target,
			resolved,
			required,
			outcome,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", bold(report.Verdict.String())})

	s := table.StyleRounded
	s.Format.Header = text.FormatDefault
	t.SetStyle(s)
	t.Render()
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalFactory.bindRulesFlag(evalCmd.Flags())
	evalFactory.bindInputFlag(evalCmd.Flags())
	evalCmd.Flags().StringVar(&evalPrevious, "previous", "", "Previous reference snapshot for 'crosses' rules (optional)")
	evalCmd.Flags().BoolVar(&evalShowTrace, "trace", false, "Print the raw engine trace instead of the rendered report")
	evalCmd.Flags().BoolVar(&evalAsTable, "table", false, "Render per-rule results as a table")

	_ = evalCmd.MarkFlagRequired("rules")
	_ = evalCmd.MarkFlagRequired("input")
}
