// Package dependencies provides the resource dependency rule pack.
//
// Convention: every rule pack lives in internal/rulepacks/<domain>/pack.go
// and exposes a single New() func returning []rules.Rule.
package dependencies

import "github.com/bicepcheck/bicepcheck/internal/rules"

// New returns the resource dependency rule pack.
func New() []rules.Rule {
	return []rules.Rule{
		rules.KeyVaultAccessPolicyRule{}, // warning: Key Vault consumers without access policies
		rules.AppServiceVNetRule{},       // warning: web app without VNet route-all
	}
}
