// Package render provides deep-dive presentation helpers for saved scan
// reports. It is a pure rendering package: no rule evaluation, no template
// reading, no policy decisions.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// FindingsForRule returns the findings in findings whose RuleID equals
// ruleID, preserving report order, or nil when the rule produced none.
func FindingsForRule(findings []models.Finding, ruleID string) []models.Finding {
	var matched []models.Finding
	for _, f := range findings {
		if f.RuleID == ruleID {
			matched = append(matched, f)
		}
	}
	return matched
}

// RenderRuleExplanation writes a structured breakdown of a single rule's
// findings to w. findings is the full report finding set; only findings whose
// RuleID equals ruleID are rendered (strict filtering). Findings are grouped
// by file path and file paths are sorted ascending for stable output.
//
// Example output:
//
//	RULE STORAGE_SECURE_TRANSFER
//	Domain: security
//	Severity: error
//
//	Findings (2):
//
//	  ✓ infra/main.bicep
//	    - Storage account should enforce secure transfer (HTTPS)
func RenderRuleExplanation(w io.Writer, ruleID string, findings []models.Finding) {
	matched := FindingsForRule(findings, ruleID)

	// Header. Domain is omitted for findings that carry none, such as
	// template read failures.
	fmt.Fprintf(w, "RULE %s\n", ruleID)
	if len(matched) > 0 {
		if d := matched[0].Domain; d != "" {
			fmt.Fprintf(w, "Domain: %s\n", d)
		}
		fmt.Fprintf(w, "Severity: %s\n", matched[0].Severity)
	}
	fmt.Fprintln(w)

	// Group by file path preserving first-seen order, then sort paths for
	// stability.
	fileFindings := make(map[string][]*models.Finding)
	var fileOrder []string
	seenFile := make(map[string]bool)

	for i := range matched {
		f := &matched[i]
		if !seenFile[f.FilePath] {
			seenFile[f.FilePath] = true
			fileOrder = append(fileOrder, f.FilePath)
		}
		fileFindings[f.FilePath] = append(fileFindings[f.FilePath], f)
	}

	sort.Strings(fileOrder)

	fmt.Fprintf(w, "Findings (%d):\n", len(matched))

	for _, fp := range fileOrder {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  ✓ %s\n", fp)
		for _, f := range fileFindings[fp] {
			fmt.Fprintf(w, "    - %s\n", f.Message)
		}
	}
}

// WriteExplainJSON writes the rule breakdown as indented JSON to w.
//
// When matched is non-empty, the output is:
//
//	{"rule_id": "...", "findings": [ ...finding objects... ]}
//
// When matched is empty (the rule produced no findings in the report), the
// output is:
//
//	{"error": "No findings for rule RULE_ID"}
func WriteExplainJSON(w io.Writer, ruleID string, matched []models.Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if len(matched) == 0 {
		return enc.Encode(map[string]string{
			"error": fmt.Sprintf("No findings for rule %s", ruleID),
		})
	}
	return enc.Encode(map[string]any{
		"rule_id":  ruleID,
		"findings": matched,
	})
}
