// Package secrets provides the hardcoded-credential rule pack.
//
// Convention: every rule pack lives in internal/rulepacks/<domain>/pack.go
// and exposes a single New() func returning []rules.Rule.
package secrets

import "github.com/bicepcheck/bicepcheck/internal/rules"

// New returns the hardcoded-credential rule pack. Every rule is an error:
// a credential in a template ends up in source control.
//
// The password rule requires a literal of at least 8 characters to cut
// trivial false positives; the others accept any non-empty quoted literal.
func New() []rules.Rule {
	return []rules.Rule{
		rules.NewSecretRule("HARDCODED_PASSWORD", "Hardcoded password", "password", "Possible hardcoded password", 8),
		rules.NewSecretRule("HARDCODED_CONNECTION_STRING", "Hardcoded connection string", "connectionString", "Possible hardcoded connection string", 1),
		rules.NewSecretRule("HARDCODED_API_KEY", "Hardcoded API key", "apiKey", "Possible hardcoded API key", 1),
		rules.NewSecretRule("HARDCODED_SECRET", "Hardcoded secret", "secret", "Possible hardcoded secret", 1),
		rules.NewSecretRule("HARDCODED_TOKEN", "Hardcoded token", "token", "Possible hardcoded token", 1),
	}
}
