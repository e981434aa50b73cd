package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bicepcheck/bicepcheck/internal/policy"
)

// defaultPolicyPath is the conventional policy location probed by doctor
// when --policy is not set.
const defaultPolicyPath = "bicepcheck.yaml"

// DoctorResult is the structured output of bicepcheck doctor. It can be
// serialised to JSON via --format=json or rendered as a human-readable
// listing (default).
type DoctorResult struct {
	Catalog struct {
		Rules   int      `json:"rules"`
		Domains []string `json:"domains"`
	} `json:"catalog"`

	Policy struct {
		Path    string   `json:"path,omitempty"`
		Present bool     `json:"present"`
		Valid   bool     `json:"valid"`
		Errors  []string `json:"errors,omitempty"`
	} `json:"policy"`

	OverallHealthy bool `json:"overall_healthy"`
}

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "doctor",
		Short:         "Validate the rule catalog and policy file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			policyPath, _ := cmd.Flags().GetString("policy")
			result, err := runDoctor(cmd.OutOrStdout(), format, policyPath)
			if err != nil {
				// Rendering failure; let Cobra/main handle it.
				return err
			}
			if !result.OverallHealthy {
				// Exit directly so no error text reaches main.go's
				// fmt.Fprintln(os.Stderr, err) path.
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "table", `Output format: "table" or "json"`)
	cmd.Flags().String("policy", defaultPolicyPath, "Policy file to validate")
	return cmd
}

// runDoctor collects all diagnostic results, renders them to w in the
// requested format, and returns the result.
// The returned error covers only rendering failures (e.g. JSON encode error).
// Callers must inspect result.OverallHealthy to determine whether the
// configuration is healthy; runDoctor itself never returns an error for an
// unhealthy result so that no error text leaks to callers (such as main).
func runDoctor(w io.Writer, format, policyPath string) (DoctorResult, error) {
	result := collectDoctorResult(policyPath)

	switch format {
	case "json":
		if err := json.NewEncoder(w).Encode(result); err != nil {
			return result, fmt.Errorf("encode doctor result: %w", err)
		}
	default:
		renderDoctorTable(result, w)
	}

	return result, nil
}

// collectDoctorResult wires the catalog and probes the policy file.
// It performs no rendering; callers decide how to present the result.
func collectDoctorResult(policyPath string) DoctorResult {
	var result DoctorResult

	// Catalog: building the registry exercises every pattern compile and the
	// duplicate-ID check.
	registry := newDefaultRegistry()
	seen := make(map[string]struct{})
	for _, r := range registry.All() {
		result.Catalog.Rules++
		if _, ok := seen[r.Domain()]; !ok {
			seen[r.Domain()] = struct{}{}
			result.Catalog.Domains = append(result.Catalog.Domains, r.Domain())
		}
	}

	// Policy: stat → load → validate (file is optional).
	result.Policy.Path = policyPath
	_, statErr := os.Stat(policyPath)
	if statErr == nil {
		result.Policy.Present = true
		cfg, loadErr := policy.LoadPolicy(policyPath)
		if loadErr != nil {
			result.Policy.Errors = []string{loadErr.Error()}
		} else {
			errs := policy.Validate(cfg, ruleIDs(registry))
			if len(errs) == 0 {
				result.Policy.Valid = true
			} else {
				for _, e := range errs {
					result.Policy.Errors = append(result.Policy.Errors, e.Error())
				}
			}
		}
	} else if !os.IsNotExist(statErr) {
		// Stat error other than "not found": treat as present but unreadable.
		result.Policy.Present = true
		result.Policy.Errors = []string{statErr.Error()}
	}

	result.OverallHealthy = result.Catalog.Rules > 0 &&
		(!result.Policy.Present || result.Policy.Valid)

	return result
}

// renderDoctorTable writes the human-readable diagnostic output from result to w.
func renderDoctorTable(result DoctorResult, w io.Writer) {
	fmt.Fprintln(w, "Configuration Diagnostics")

	fmt.Fprintln(w, "\nCatalog:")
	doctorPrint(w, "Rules registered", fmt.Sprintf("%d", result.Catalog.Rules), "")
	doctorPrint(w, "Domains", strings.Join(result.Catalog.Domains, ", "), "")

	fmt.Fprintln(w, "\nPolicy:")
	if !result.Policy.Present {
		doctorPrint(w, result.Policy.Path+" present", "Not found (optional)", "")
	} else {
		doctorPrint(w, result.Policy.Path+" present", "YES", "")
		if result.Policy.Valid {
			doctorPrint(w, "Policy valid", "OK", "")
		} else {
			for _, e := range result.Policy.Errors {
				doctorPrint(w, "Policy valid", "FAIL", e)
			}
		}
	}
}

// doctorPrint writes a single diagnostic check line to w.
// When detail is non-empty it is appended in parentheses.
func doctorPrint(w io.Writer, label, status, detail string) {
	if detail != "" {
		fmt.Fprintf(w, "  %s: %s (%s)\n", label, status, detail)
	} else {
		fmt.Fprintf(w, "  %s: %s\n", label, status)
	}
}
