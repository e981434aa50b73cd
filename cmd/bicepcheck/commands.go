package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bicepcheck/bicepcheck/internal/engine"
	"github.com/bicepcheck/bicepcheck/internal/logging"
	"github.com/bicepcheck/bicepcheck/internal/output"
	"github.com/bicepcheck/bicepcheck/internal/policy"
	deppack "github.com/bicepcheck/bicepcheck/internal/rulepacks/dependencies"
	namingpack "github.com/bicepcheck/bicepcheck/internal/rulepacks/naming"
	secretspack "github.com/bicepcheck/bicepcheck/internal/rulepacks/secrets"
	secpack "github.com/bicepcheck/bicepcheck/internal/rulepacks/security"
	"github.com/bicepcheck/bicepcheck/internal/rules"
	"github.com/bicepcheck/bicepcheck/internal/sarif"
	"github.com/bicepcheck/bicepcheck/internal/version"
)

// checkOptions collects the scan flags shared by the root command and the
// explicit check subcommand.
type checkOptions struct {
	reportFmt  string
	outputFile string
	policyPath string
	colored    bool
	debug      bool
}

// addCheckFlags registers the scan flags on cmd, bound to opts.
func addCheckFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.Flags().StringVar(&opts.reportFmt, "report", "text", "Output format: text, table, json, or sarif")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Write full JSON report to this file path (in addition to stdout output)")
	cmd.Flags().StringVar(&opts.policyPath, "policy", "", "YAML policy file tuning rules and enforcement")
	cmd.Flags().BoolVar(&opts.colored, "color", false, "Colour severity labels in table output")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

func newRootCmd() *cobra.Command {
	opts := &checkOptions{}
	root := &cobra.Command{
		Use:   "bicepcheck <template.bicep> [more.bicep ...]",
		Short: "Static security and best-practice checker for Azure Bicep templates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  scanRunE(opts),
	}
	addCheckFlags(root, opts)

	root.AddCommand(newCheckCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// newCheckCmd is the explicit spelling of the default scan; `bicepcheck
// check f.bicep` and `bicepcheck f.bicep` behave identically.
func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <template.bicep> [more.bicep ...]",
		Short: "Check Bicep templates and report findings",
		Args:  cobra.MinimumNArgs(1),
		RunE:  scanRunE(opts),
	}
	addCheckFlags(cmd, opts)
	return cmd
}

// scanRunE wraps runCheck for cobra. A failing verdict exits the process
// directly so no error text reaches main's stderr path; real errors (bad
// flags, unreadable policy) travel back as errors.
func scanRunE(opts *checkOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		failed, err := runCheck(cmd.OutOrStdout(), args, *opts)
		if err != nil {
			return err
		}
		if failed {
			os.Exit(1)
		}
		return nil
	}
}

// runCheck executes one scan end to end: wire the catalog, load and validate
// policy, scan, optionally persist the JSON report, render. It returns the
// verdict instead of exiting so tests can drive it.
func runCheck(w io.Writer, args []string, opts checkOptions) (bool, error) {
	format := engine.ReportFormat(opts.reportFmt)
	switch format {
	case engine.ReportFormatText, engine.ReportFormatTable, engine.ReportFormatJSON, engine.ReportFormatSARIF:
	default:
		return false, fmt.Errorf("unknown report format %q", opts.reportFmt)
	}

	log, err := logging.New(opts.debug)
	if err != nil {
		return false, err
	}
	defer func() { _ = log.Sync() }()

	registry := newDefaultRegistry()

	var policyCfg *policy.PolicyConfig
	if opts.policyPath != "" {
		policyCfg, err = policy.LoadPolicy(opts.policyPath)
		if err != nil {
			return false, fmt.Errorf("load policy %q: %w", opts.policyPath, err)
		}
		if errs := policy.Validate(policyCfg, ruleIDs(registry)); len(errs) > 0 {
			return false, fmt.Errorf("invalid policy %q: %w", opts.policyPath, errors.Join(errs...))
		}
	}

	eng := engine.NewDefaultEngine(registry, policyCfg, log)

	// Progress lines belong to the human formats only; json and sarif
	// output must stay parseable.
	var progress io.Writer
	if format == engine.ReportFormatText || format == engine.ReportFormatTable {
		progress = w
	}

	report := eng.Scan(engine.ScanOptions{Paths: args, Progress: progress})

	if opts.outputFile != "" {
		if err := output.WriteReportFile(opts.outputFile, report); err != nil {
			return false, err
		}
	}

	failed := policy.ShouldFail(report.Findings, policyCfg)

	switch format {
	case engine.ReportFormatJSON:
		err = output.WriteJSON(w, report)
	case engine.ReportFormatSARIF:
		err = sarif.New(report, "bicepcheck", version.Version).Write(w)
	case engine.ReportFormatTable:
		output.RenderTable(w, report, output.TableOptions{Colored: opts.colored})
	default:
		output.RenderText(w, report, failed)
	}
	return failed, err
}

// newDefaultRegistry wires the built-in rule packs in checker order:
// security, naming, secrets, dependencies. Pack order fixes the emission
// order of findings within each file.
func newDefaultRegistry() *rules.DefaultRuleRegistry {
	registry := rules.NewDefaultRuleRegistry()
	for _, pack := range [][]rules.Rule{
		secpack.New(),
		namingpack.New(),
		secretspack.New(),
		deppack.New(),
	} {
		for _, r := range pack {
			registry.Register(r)
		}
	}
	return registry
}

// ruleIDs returns the IDs of every registered rule, in registration order.
func ruleIDs(registry rules.RuleRegistry) []string {
	var ids []string
	for _, r := range registry.All() {
		ids = append(ids, r.ID())
	}
	return ids
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rule catalog",
		Run: func(cmd *cobra.Command, _ []string) {
			printRules(cmd.OutOrStdout(), newDefaultRegistry().All())
		},
	}
}

// printRules renders the catalog listing, one rule per line in registration
// order.
func printRules(w io.Writer, all []rules.Rule) {
	header := fmt.Sprintf("%-28s  %-13s  %-8s  %s", "ID", "DOMAIN", "SEVERITY", "NAME")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	for _, r := range all {
		fmt.Fprintf(w, "%-28s  %-13s  %-8s  %s\n", r.ID(), r.Domain(), r.Severity(), r.Name())
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}
