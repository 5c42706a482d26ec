// Package cli renders conformance reports for the command-line front-end.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/rulekit/jsonlogic/internal/suite"
)

// OutputFormat specifies the output format for CLI commands.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// reportDoc is the serializable shape of a report for json/yaml output.
type reportDoc struct {
	Passed int         `json:"passed" yaml:"passed"`
	Failed int         `json:"failed" yaml:"failed"`
	Cases  []reportRow `json:"cases" yaml:"cases"`
}

type reportRow struct {
	Index    int    `json:"index" yaml:"index"`
	Section  string `json:"section,omitempty" yaml:"section,omitempty"`
	Rule     any    `json:"rule" yaml:"rule"`
	Data     any    `json:"data" yaml:"data"`
	Expected any    `json:"expected" yaml:"expected"`
	Got      any    `json:"got,omitempty" yaml:"got,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Passed   bool   `json:"passed" yaml:"passed"`
}

// PrintReport outputs a conformance run in the requested format. With
// failuresOnly set, passing cases are omitted from the listing.
func PrintReport(report suite.Report, format OutputFormat, failuresOnly bool) error {
	switch format {
	case FormatJSON:
		return printJSON(buildDoc(report, failuresOnly))
	case FormatYAML:
		return printYAML(buildDoc(report, failuresOnly))
	case FormatTable:
		return printTable(report, failuresOnly)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func buildDoc(report suite.Report, failuresOnly bool) reportDoc {
	doc := reportDoc{Passed: report.Passed, Failed: report.Failed}
	for _, res := range report.Results {
		if failuresOnly && res.Passed {
			continue
		}
		row := reportRow{
			Index:    res.Index,
			Section:  res.Section,
			Rule:     res.Rule,
			Data:     res.Data,
			Expected: res.Expected,
			Got:      res.Got,
			Passed:   res.Passed,
		}
		if res.Err != nil {
			row.Error = res.Err.Error()
		}
		doc.Cases = append(doc.Cases, row)
	}
	return doc
}

func printJSON(doc reportDoc) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func printYAML(doc reportDoc) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(doc)
}

func printTable(report suite.Report, failuresOnly bool) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "Rule", "Data", "Expected", "Got", "Status")

	for _, res := range report.Results {
		if failuresOnly && res.Passed {
			continue
		}
		status := "PASS"
		got := compact(res.Got)
		if !res.Passed {
			status = "FAIL"
			if res.Err != nil {
				got = res.Err.Error()
			}
		}
		table.Append(
			fmt.Sprintf("%d", res.Index),
			truncate(compact(res.Rule), 48),
			truncate(compact(res.Data), 32),
			truncate(compact(res.Expected), 24),
			truncate(got, 40),
			status,
		)
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d passed, %d failed\n", report.Passed, report.Failed)
	return nil
}

func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
