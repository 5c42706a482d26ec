package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rulekit/jsonlogic"
)

var (
	// Global flags
	strict   bool
	ruleFile string
	dataFile string
)

// rootCmd evaluates a rule directly: jsonlogic <rule-json> [data-json].
var rootCmd = &cobra.Command{
	Use:   "jsonlogic <rule-json> [data-json]",
	Short: "Evaluate JsonLogic rules",
	Long: `jsonlogic evaluates a JsonLogic rule against a data document and
writes the JSON result to standard output.

The rule is the first argument (or --rule-file). The data document is the
second argument (or --data-file); when it is absent or "-", a single JSON
document is read from standard input.

Examples:
  jsonlogic '{"==":[1,1]}' null
  echo '{"temp":72}' | jsonlogic '{"<":[{"var":"temp"},80]}'
  jsonlogic --rule-file rule.yaml --data-file data.json
  jsonlogic test tests.json --format table`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApply,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject unknown operators instead of treating them as literals")
	rootCmd.Flags().StringVar(&ruleFile, "rule-file", "", "Read the rule from a JSON or YAML file")
	rootCmd.Flags().StringVar(&dataFile, "data-file", "", "Read the data from a JSON or YAML file")
}

func runApply(cmd *cobra.Command, args []string) error {
	rule, rest, err := ruleDocument(args)
	if err != nil {
		return err
	}
	data, err := dataDocument(rest)
	if err != nil {
		return err
	}

	var opts []jsonlogic.Option
	if strict {
		opts = append(opts, jsonlogic.WithStrictParsing())
	}
	result, err := jsonlogic.New(opts...).Apply(rule, data)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// ruleDocument resolves the rule from --rule-file or the first positional
// argument, returning the remaining positional arguments.
func ruleDocument(args []string) (any, []string, error) {
	if ruleFile != "" {
		rule, err := loadDocument(ruleFile)
		return rule, args, err
	}
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("a rule is required (positional argument or --rule-file)")
	}
	var rule any
	if err := json.Unmarshal([]byte(args[0]), &rule); err != nil {
		return nil, nil, fmt.Errorf("rule: %w", err)
	}
	return rule, args[1:], nil
}

// dataDocument resolves the data from --data-file, the next positional
// argument, or standard input when absent or "-". Empty input is null.
func dataDocument(args []string) (any, error) {
	if dataFile != "" {
		return loadDocument(dataFile)
	}
	text := "-"
	if len(args) > 0 {
		text = args[0]
	}
	if text == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(raw))
		if text == "" {
			return nil, nil
		}
	}
	var data any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	return data, nil
}

// loadDocument reads a JSON document from disk; .yaml/.yml files are
// decoded as YAML.
func loadDocument(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return doc, nil
}
