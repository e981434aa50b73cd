// Package naming provides the Azure naming convention rule pack.
//
// Convention: every rule pack lives in internal/rulepacks/<domain>/pack.go
// and exposes a single New() func returning []rules.Rule.
package naming

import "github.com/bicepcheck/bicepcheck/internal/rules"

// New returns the naming convention rule pack. The single rule covers the
// whole resource-type table; per-declaration findings keep document order.
func New() []rules.Rule {
	return []rules.Rule{
		rules.NamingConventionRule{},
	}
}
