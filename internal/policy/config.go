// Package policy loads, validates, and applies the optional YAML policy file.
// A policy tunes the built-in rule catalog without recompiling: rules can be
// disabled or reclassified, whole domains switched off, and the run verdict
// tightened per domain.
package policy

// PolicyConfig is the root of the policy file.
type PolicyConfig struct {
	Version     int                          `yaml:"version"`
	Domains     map[string]DomainConfig      `yaml:"domains"`
	Rules       map[string]RuleConfig        `yaml:"rules"`
	Enforcement map[string]EnforcementConfig `yaml:"enforcement"`
}

// DomainConfig tunes one checker domain as a whole.
type DomainConfig struct {
	Enabled bool `yaml:"enabled"`

	// MinSeverity drops the domain's findings below the given severity.
	// Empty keeps everything.
	MinSeverity string `yaml:"min_severity,omitempty"`
}

// RuleConfig tunes one rule by ID.
type RuleConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Severity string `yaml:"severity,omitempty"`

	// Params carries numeric per-rule overrides (e.g. min_length for the
	// hardcoded-password rule). Keys a rule does not read are ignored.
	Params map[string]float64 `yaml:"params,omitempty"`
}

// EnforcementConfig tightens the verdict for one domain.
type EnforcementConfig struct {
	// FailOnSeverity fails the run when the domain emits a finding at or
	// above this severity. Error findings always fail the run regardless of
	// enforcement configuration.
	FailOnSeverity string `yaml:"fail_on_severity,omitempty"`
}
