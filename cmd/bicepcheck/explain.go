package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/render"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Break down one rule's findings from a saved report",
		Long: "Explain reads a JSON report produced by check --output and renders\n" +
			"every finding of a single rule, grouped by template file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			ruleID, _ := cmd.Flags().GetString("rule")
			format, _ := cmd.Flags().GetString("format")
			return runExplain(cmd.OutOrStdout(), input, ruleID, format)
		},
	}
	cmd.Flags().String("input", "", "JSON report file produced by check --output")
	cmd.Flags().String("rule", "", "Rule ID to break down")
	cmd.Flags().String("format", "text", `Output format: "text" or "json"`)
	return cmd
}

// runExplain loads a persisted report and renders the findings of one rule.
// An absent rule is not an error: text mode prints a short notice and json
// mode emits the error object, so repeated CI queries stay scriptable.
func runExplain(w io.Writer, inputPath, ruleID, format string) error {
	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown explain format %q", format)
	}
	if inputPath == "" {
		return fmt.Errorf("missing --input report file")
	}
	if ruleID == "" {
		return fmt.Errorf("missing --rule ID")
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read report %q: %w", inputPath, err)
	}
	var report models.ScanReport
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("parse report %q: %w", inputPath, err)
	}

	matched := render.FindingsForRule(report.Findings, ruleID)

	if format == "json" {
		return render.WriteExplainJSON(w, ruleID, matched)
	}
	if len(matched) == 0 {
		fmt.Fprintf(w, "No findings for rule %s in %s\n", ruleID, inputPath)
		return nil
	}
	render.RenderRuleExplanation(w, ruleID, report.Findings)
	return nil
}
