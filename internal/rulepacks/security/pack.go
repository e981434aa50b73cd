// Package security provides the Azure security configuration rule pack.
// It groups the pattern-driven security rules into a single New() function
// that the CLI wires into a DefaultRuleRegistry before scanning.
//
// Convention: every rule pack lives in internal/rulepacks/<domain>/pack.go
// and exposes a single New() func returning []rules.Rule.
// Future security rules should be added to the slice returned by New().
package security

import (
	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/rules"
)

// New returns the default Azure security rule pack. Catalog order is
// emission order, so new entries go at the end.
func New() []rules.Rule {
	return []rules.Rule{
		// Advisory: documents the least-privilege guidance without firing
		// either way.
		rules.NewPatternRule(rules.PatternSpec{
			ID:       "KV_LEAST_PRIVILEGE",
			Name:     "Key Vault least-privilege access policies",
			Domain:   models.DomainSecurity,
			Pattern:  `accessPolicies.*permissions.*secrets.*\[.*get.*list.*\]`,
			Message:  "Key Vault should use least privilege access policies",
			Severity: models.SeverityWarning,
		}),
		rules.NewPatternRule(rules.PatternSpec{
			ID:       "STORAGE_SECURE_TRANSFER",
			Name:     "Storage account secure transfer",
			Domain:   models.DomainSecurity,
			Pattern:  `supportsHttpsTrafficOnly.*true`,
			Message:  "Storage accounts should require secure transfer (HTTPS)",
			Severity: models.SeverityError,
			Required: true,
		}),
		rules.NewPatternRule(rules.PatternSpec{
			ID:       "APP_SERVICE_HTTPS_ONLY",
			Name:     "App Service HTTPS only",
			Domain:   models.DomainSecurity,
			Pattern:  `httpsOnly.*true`,
			Message:  "App Services should enforce HTTPS only",
			Severity: models.SeverityError,
			Required: true,
		}),
		// Advisory.
		rules.NewPatternRule(rules.PatternSpec{
			ID:       "MANAGED_IDENTITY",
			Name:     "Managed identity usage",
			Domain:   models.DomainSecurity,
			Pattern:  `identity.*type.*SystemAssigned|UserAssigned`,
			Message:  "Resources should use managed identity instead of service principals",
			Severity: models.SeverityWarning,
		}),
		rules.NewPatternRule(rules.PatternSpec{
			ID:       "NSG_UNRESTRICTED_ACCESS",
			Name:     "NSG unrestricted access",
			Domain:   models.DomainSecurity,
			Pattern:  `securityRules.*access.*Allow.*\*.*\*`,
			Message:  "NSG rules should not allow unrestricted access (*:*)",
			Severity: models.SeverityError,
			Invert:   true,
		}),
		rules.NewPatternRule(rules.PatternSpec{
			ID:       "SQL_FIREWALL_OPEN_RANGE",
			Name:     "SQL Server open firewall range",
			Domain:   models.DomainSecurity,
			Pattern:  `firewallRules.*startIpAddress.*0\.0\.0\.0.*endIpAddress.*255\.255\.255\.255`,
			Message:  "SQL Server should not allow unrestricted firewall access (0.0.0.0-255.255.255.255)",
			Severity: models.SeverityError,
			Invert:   true,
		}),
	}
}
