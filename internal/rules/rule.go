package rules

import (
	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/policy"
)

// RuleContext carries the full text of a single template under evaluation.
// It is the sole input to Rule.Evaluate and must contain everything a rule
// needs; rules must never read files or external state themselves.
type RuleContext struct {
	// FilePath is the template path as given on the command line. Rules tag
	// their findings with it.
	FilePath string

	// Content is the template's full text.
	Content string

	// Policy holds the active PolicyConfig for threshold overrides. May be nil
	// when no policy file is loaded; rules must treat nil as "use defaults".
	Policy *policy.PolicyConfig
}

// Rule is a single deterministic template check.
// Rules must be stateless and safe to call concurrently.
// They must never read files, call the network, or mutate shared state.
type Rule interface {
	// ID returns the unique, stable identifier for this rule (e.g. "APP_SERVICE_HTTPS_ONLY").
	ID() string

	// Name returns a short human-readable rule name.
	Name() string

	// Domain returns the checker domain this rule belongs to
	// (security, naming, secrets, dependencies).
	Domain() string

	// Severity returns the severity findings from this rule carry by default.
	// Policy files may override it per finding after evaluation.
	Severity() models.Severity

	// Evaluate inspects the provided template and returns zero or more findings.
	// An empty slice means no issue was detected.
	Evaluate(ctx RuleContext) []models.Finding
}

// RuleRegistry manages the set of active rules and drives evaluation.
type RuleRegistry interface {
	// Register adds a rule to the registry. Panics on duplicate ID.
	Register(rule Rule)

	// All returns all registered rules in registration order.
	All() []Rule

	// EvaluateAll runs every registered rule against ctx and merges results.
	EvaluateAll(ctx RuleContext) []models.Finding
}
