package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulekit/jsonlogic"
	"github.com/rulekit/jsonlogic/internal/cli"
	"github.com/rulekit/jsonlogic/internal/suite"
)

var (
	testFormat       string
	testFailuresOnly bool
)

var testCmd = &cobra.Command{
	Use:   "test <corpus-file>",
	Short: "Run a conformance corpus",
	Long: `Run a corpus in the community test format: a JSON array of string
comments and [rule, data, expected] triples. Exits non-zero when any case
fails.

Examples:
  jsonlogic test tests.json
  jsonlogic test tests.json --format json
  jsonlogic test tests.json --failures-only`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := suite.LoadFile(args[0])
		if err != nil {
			return err
		}

		var opts []jsonlogic.Option
		if strict {
			opts = append(opts, jsonlogic.WithStrictParsing())
		}
		report := suite.Run(jsonlogic.New(opts...), cases)

		if err := cli.PrintReport(report, cli.OutputFormat(testFormat), testFailuresOnly); err != nil {
			return err
		}
		if report.Failed > 0 {
			return fmt.Errorf("%d of %d cases failed", report.Failed, len(cases))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().StringVar(&testFormat, "format", "table", "Output format (table, json, yaml)")
	testCmd.Flags().BoolVar(&testFailuresOnly, "failures-only", false, "List only failing cases")
}
