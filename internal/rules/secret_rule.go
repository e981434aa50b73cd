package rules

import (
	"fmt"
	"regexp"

	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/policy"
)

// secretPattern builds the matcher for one credential keyword: the keyword,
// an assignment separator, and a quoted literal of at least minLen
// characters. Matching is case-insensitive. The keyword and the opening
// quote must share a line; the quoted literal itself may span lines.
func secretPattern(keyword string, minLen int) string {
	return fmt.Sprintf(`(?i)%s.*[:=].*['"][^'"]{%d,}['"]`, keyword, minLen)
}

// SecretRule flags an apparent hardcoded credential: a keyword such as
// "password" assigned a quoted literal value. It emits at most one finding
// per template no matter how many occurrences the file contains; one hit is
// enough to send the author looking.
//
// The minimum literal length is policy-tunable through the "min_length"
// param, so teams can raise the password threshold without recompiling.
type SecretRule struct {
	id      string
	name    string
	keyword string
	message string
	minLen  int
	matcher *regexp.Regexp
}

// NewSecretRule compiles the matcher for keyword with the given default
// minimum literal length. minLen values below 1 are treated as 1.
func NewSecretRule(id, name, keyword, message string, minLen int) SecretRule {
	if minLen < 1 {
		minLen = 1
	}
	return SecretRule{
		id:      id,
		name:    name,
		keyword: keyword,
		message: message,
		minLen:  minLen,
		matcher: regexp.MustCompile(secretPattern(keyword, minLen)),
	}
}

// ID returns the unique rule identifier.
func (r SecretRule) ID() string { return r.id }

// Name returns the human-readable rule name.
func (r SecretRule) Name() string { return r.name }

// Domain returns the secrets checker domain.
func (r SecretRule) Domain() string { return models.DomainSecrets }

// Severity returns the default severity. Hardcoded credentials are always
// errors.
func (r SecretRule) Severity() models.Severity { return models.SeverityError }

// Evaluate implements Rule.
func (r SecretRule) Evaluate(ctx RuleContext) []models.Finding {
	matcher := r.matcher
	if n := int(policy.GetThreshold(r.id, "min_length", float64(r.minLen), ctx.Policy)); n > 0 && n != r.minLen {
		// The keyword already compiled at construction, so rebuilding with a
		// different quantifier cannot fail.
		matcher = regexp.MustCompile(secretPattern(r.keyword, n))
	}

	if !matcher.MatchString(ctx.Content) {
		return nil
	}

	return []models.Finding{{
		ID:       fmt.Sprintf("%s-%s", r.id, ctx.FilePath),
		RuleID:   r.id,
		FilePath: ctx.FilePath,
		Domain:   models.DomainSecrets,
		Severity: models.SeverityError,
		Message:  r.message,
	}}
}
