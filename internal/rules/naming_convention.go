package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/bicep"
	"github.com/bicepcheck/bicepcheck/internal/models"
)

const namingConventionRuleID = "NAMING_CONVENTION"

// namingPatterns maps bare Azure resource types (without the @api-version
// suffix) to the pattern their declared names must match. Types absent from
// the table are not subject to naming checks.
var namingPatterns = map[string]*regexp.Regexp{
	"Microsoft.Resources/resourceGroups":    regexp.MustCompile(`^rg-[a-z0-9-]+$`),
	"Microsoft.Storage/storageAccounts":     regexp.MustCompile(`^st[a-z0-9]{3,22}$`),
	"Microsoft.KeyVault/vaults":             regexp.MustCompile(`^kv-[a-z0-9-]+$`),
	"Microsoft.Web/sites":                   regexp.MustCompile(`^app-[a-z0-9-]+$`),
	"Microsoft.Web/serverfarms":             regexp.MustCompile(`^asp-[a-z0-9-]+$`),
	"Microsoft.Sql/servers":                 regexp.MustCompile(`^sql-[a-z0-9-]+$`),
	"Microsoft.DocumentDB/databaseAccounts": regexp.MustCompile(`^cosmos-[a-z0-9-]+$`),
}

// NamingConventionRule checks the declared name of every resource whose type
// appears in the naming table. Names are resolved per declaration span, so a
// template with several resources attributes each name to its own block.
// Violations are always warnings; a resource with no literal name (e.g. one
// named through a parameter) is skipped.
type NamingConventionRule struct{}

// ID returns the unique rule identifier.
func (NamingConventionRule) ID() string { return namingConventionRuleID }

// Name returns the human-readable rule name.
func (NamingConventionRule) Name() string { return "Azure resource naming conventions" }

// Domain returns the naming checker domain.
func (NamingConventionRule) Domain() string { return models.DomainNaming }

// Severity returns the default severity. Naming violations never fail a run
// on their own.
func (NamingConventionRule) Severity() models.Severity { return models.SeverityWarning }

// Evaluate implements Rule. One finding is produced per violating
// declaration, in document order.
func (NamingConventionRule) Evaluate(ctx RuleContext) []models.Finding {
	var findings []models.Finding
	for _, d := range bicep.Declarations(ctx.Content) {
		// The naming category is about the resource type, not the API
		// version pinned in the declaration.
		baseType := d.Type
		if i := strings.IndexByte(baseType, '@'); i >= 0 {
			baseType = baseType[:i]
		}

		pattern, ok := namingPatterns[baseType]
		if !ok || d.DeclaredName == "" {
			continue
		}
		if pattern.MatchString(d.DeclaredName) {
			continue
		}

		findings = append(findings, models.Finding{
			ID:       fmt.Sprintf("%s-%s-%s", namingConventionRuleID, ctx.FilePath, d.LogicalName),
			RuleID:   namingConventionRuleID,
			FilePath: ctx.FilePath,
			Domain:   models.DomainNaming,
			Severity: models.SeverityWarning,
			Message: fmt.Sprintf("Resource '%s' of type '%s' should follow naming convention: %s",
				d.LogicalName, d.Type, pattern),
		})
	}
	return findings
}
