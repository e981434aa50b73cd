// Package output renders completed scan reports for humans and machines:
// the classic text summary, a fixed-width table, and indented JSON.
package output

import (
	"fmt"
	"io"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// remediationTips are printed under failing text reports, most impactful
// first.
var remediationTips = []string{
	"Use Azure Key Vault for secrets management",
	"Enable HTTPS-only for web applications",
	"Use managed identities instead of service principals",
	"Follow Azure naming conventions",
	"Avoid hardcoded secrets in templates",
}

// RenderText writes the classic check report: an errors block, a warnings
// block, a success line when the scan found nothing at all, and remediation
// tips when the run is failing. Findings print in emission order as
// "<path>: <message>".
func RenderText(w io.Writer, report *models.ScanReport, failed bool) {
	errs := filterBySeverity(report.Findings, models.SeverityError)
	warns := filterBySeverity(report.Findings, models.SeverityWarning)

	if len(errs) > 0 {
		fmt.Fprintln(w, "\n❌ ERRORS:")
		for _, f := range errs {
			fmt.Fprintf(w, "  %s: %s\n", f.FilePath, f.Message)
		}
	}

	if len(warns) > 0 {
		fmt.Fprintln(w, "\n⚠️  WARNINGS:")
		for _, f := range warns {
			fmt.Fprintf(w, "  %s: %s\n", f.FilePath, f.Message)
		}
	}

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(w, "\n✅ All checks passed!")
	}

	if failed {
		fmt.Fprintln(w, "\n💡 Tips:")
		for _, tip := range remediationTips {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}
}

// filterBySeverity returns the findings of one severity, preserving order.
func filterBySeverity(findings []models.Finding, sev models.Severity) []models.Finding {
	var out []models.Finding
	for _, f := range findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
