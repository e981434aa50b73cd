package rules

import (
	"fmt"
	"regexp"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// PatternSpec declares one pattern-driven rule. Rule packs build their
// catalogs as literal PatternSpec slices so the whole rule table is visible
// in one place.
//
// Exactly one of three behaviours applies:
//
//   - Invert set: a match IS the violation (the pattern describes a bad
//     configuration). Required is ignored.
//   - Required set, Invert unset: absence of a match is the violation (the
//     pattern describes a mandatory setting).
//   - Neither set: the rule is advisory. It never produces findings and
//     exists only as documented guidance in the catalog.
type PatternSpec struct {
	ID       string
	Name     string
	Domain   string
	Pattern  string
	Message  string
	Severity models.Severity
	Invert   bool
	Required bool
}

// PatternRule applies one compiled pattern to the full template text and
// emits at most one finding per file.
type PatternRule struct {
	spec    PatternSpec
	matcher *regexp.Regexp
}

// NewPatternRule compiles spec.Pattern case-insensitively with `.` also
// matching newlines, so multi-line property blocks are covered. An invalid
// pattern panics: catalogs are literal data and a bad entry is a wiring
// mistake, caught at startup like a duplicate rule ID.
func NewPatternRule(spec PatternSpec) PatternRule {
	return PatternRule{
		spec:    spec,
		matcher: regexp.MustCompile(`(?is)` + spec.Pattern),
	}
}

// ID returns the unique rule identifier.
func (r PatternRule) ID() string { return r.spec.ID }

// Name returns the human-readable rule name.
func (r PatternRule) Name() string { return r.spec.Name }

// Domain returns the checker domain the rule belongs to.
func (r PatternRule) Domain() string { return r.spec.Domain }

// Severity returns the default severity of the rule's findings.
func (r PatternRule) Severity() models.Severity { return r.spec.Severity }

// Evaluate implements Rule. Advisory rules (neither Invert nor Required)
// always return nil.
func (r PatternRule) Evaluate(ctx RuleContext) []models.Finding {
	matched := r.matcher.MatchString(ctx.Content)

	violated := false
	switch {
	case r.spec.Invert:
		violated = matched
	case r.spec.Required:
		violated = !matched
	}
	if !violated {
		return nil
	}

	return []models.Finding{{
		ID:       fmt.Sprintf("%s-%s", r.spec.ID, ctx.FilePath),
		RuleID:   r.spec.ID,
		FilePath: ctx.FilePath,
		Domain:   r.spec.Domain,
		Severity: r.spec.Severity,
		Message:  r.spec.Message,
	}}
}
