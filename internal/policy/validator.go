package policy

import (
	"fmt"
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// validDomains is the set of recognised checker domain names.
var validDomains = map[string]struct{}{
	models.DomainSecurity:     {},
	models.DomainNaming:       {},
	models.DomainSecrets:      {},
	models.DomainDependencies: {},
}

// validSeverities is the set of allowed severity strings (lower-case
// canonical form).
var validSeverities = map[string]struct{}{
	string(models.SeverityError):   {},
	string(models.SeverityWarning): {},
}

const domainList = "security, naming, secrets, dependencies"
const severityList = "error, warning"

// Validate checks cfg for semantic correctness and returns all validation
// errors found. An empty slice means the config is valid.
//
// Checks performed:
//   - version must be 1
//   - domain names must be one of: security, naming, secrets, dependencies
//   - domain min_severity must be a valid severity value if set
//   - rule IDs must appear in availableRuleIDs
//   - rule severity overrides must be valid severity values if set
//   - enforcement domain names must be valid domain names
//   - enforcement fail_on_severity must be a valid severity value if set
//
// All errors are collected before returning; Validate never stops at the
// first error.
func Validate(cfg *PolicyConfig, availableRuleIDs []string) []error {
	if cfg == nil {
		return []error{fmt.Errorf("policy config is nil")}
	}

	// Build a lookup set for fast rule ID membership tests.
	knownIDs := make(map[string]struct{}, len(availableRuleIDs))
	for _, id := range availableRuleIDs {
		knownIDs[id] = struct{}{}
	}

	var errs []error

	// Version check.
	if cfg.Version != 1 {
		errs = append(errs, fmt.Errorf("version: unsupported value %d; must be 1", cfg.Version))
	}

	// Domain checks.
	for name, dcfg := range cfg.Domains {
		if _, ok := validDomains[name]; !ok {
			errs = append(errs, fmt.Errorf("domains.%s: unknown domain; valid values: %s", name, domainList))
		}
		if dcfg.MinSeverity != "" {
			lower := strings.ToLower(dcfg.MinSeverity)
			if _, ok := validSeverities[lower]; !ok {
				errs = append(errs, fmt.Errorf("domains.%s.min_severity: invalid value %q; valid values: %s", name, dcfg.MinSeverity, severityList))
			}
		}
	}

	// Rule checks.
	for ruleID, rcfg := range cfg.Rules {
		if _, ok := knownIDs[ruleID]; !ok {
			errs = append(errs, fmt.Errorf("rules.%s: unknown rule ID", ruleID))
		}
		if rcfg.Severity != "" {
			lower := strings.ToLower(rcfg.Severity)
			if _, ok := validSeverities[lower]; !ok {
				errs = append(errs, fmt.Errorf("rules.%s.severity: invalid value %q; valid values: %s", ruleID, rcfg.Severity, severityList))
			}
		}
	}

	// Enforcement checks.
	for domain, enfCfg := range cfg.Enforcement {
		if _, ok := validDomains[domain]; !ok {
			errs = append(errs, fmt.Errorf("enforcement.%s: unknown domain; valid values: %s", domain, domainList))
		}
		if enfCfg.FailOnSeverity != "" {
			lower := strings.ToLower(enfCfg.FailOnSeverity)
			if _, ok := validSeverities[lower]; !ok {
				errs = append(errs, fmt.Errorf("enforcement.%s.fail_on_severity: invalid value %q; valid values: %s", domain, enfCfg.FailOnSeverity, severityList))
			}
		}
	}

	return errs
}
