package policy

import (
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// ApplyPolicy filters and rewrites findings according to cfg. A nil cfg
// returns findings unchanged. Relative order of surviving findings is
// preserved.
//
// Per finding, in order: domain-level disable, rule-level disable, severity
// override, then the domain's min_severity floor (applied to the final,
// possibly overridden severity). Findings without a domain, such as template
// read failures, are only subject to rule-level configuration.
func ApplyPolicy(findings []models.Finding, cfg *PolicyConfig) []models.Finding {
	if cfg == nil {
		return findings
	}

	var result []models.Finding

	for _, f := range findings {
		dcfg, hasDomain := cfg.Domains[f.Domain]

		// Domain-level disable
		if hasDomain && !dcfg.Enabled {
			continue
		}

		ruleCfg, hasRule := cfg.Rules[f.RuleID]

		// Rule-level disable
		if hasRule && ruleCfg.Enabled != nil && !*ruleCfg.Enabled {
			continue
		}

		// Severity override
		if hasRule && ruleCfg.Severity != "" {
			f.Severity = models.Severity(strings.ToLower(ruleCfg.Severity))
		}

		// Domain severity floor
		if hasDomain && dcfg.MinSeverity != "" {
			floor, ok := severityRank[models.Severity(strings.ToLower(dcfg.MinSeverity))]
			if ok && severityRank[f.Severity] < floor {
				continue
			}
		}

		result = append(result, f)
	}

	return result
}
