package policy

import (
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// severityRank orders severities for threshold comparisons. Higher is worse.
var severityRank = map[models.Severity]int{
	models.SeverityWarning: 1,
	models.SeverityError:   2,
}

// ShouldFail reports whether the scan must exit non-zero.
//
// The base verdict is policy-independent: any error-severity finding fails
// the run. Enforcement configuration can only tighten it, per domain: a
// fail_on_severity of "warning" makes that domain's warnings fail the run too.
//
// Unknown fail_on_severity values and findings without a recognised severity
// are ignored rather than failing the run; Validate reports them beforehand.
func ShouldFail(findings []models.Finding, cfg *PolicyConfig) bool {
	for _, f := range findings {
		if f.Severity == models.SeverityError {
			return true
		}
	}

	if cfg == nil {
		return false
	}

	for _, f := range findings {
		enfCfg, ok := cfg.Enforcement[f.Domain]
		if !ok || enfCfg.FailOnSeverity == "" {
			continue
		}
		threshold, ok := severityRank[models.Severity(strings.ToLower(enfCfg.FailOnSeverity))]
		if !ok {
			continue
		}
		if r, ok := severityRank[f.Severity]; ok && r >= threshold {
			return true
		}
	}

	return false
}
