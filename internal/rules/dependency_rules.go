package rules

import (
	"fmt"
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// Dependency rules look at which resource types co-occur in a template.
// All checks are case-sensitive substring tests: Azure resource types are
// canonically cased in templates, and property keys are camelCase.

const kvAccessPolicyRuleID = "KV_DEPENDENT_ACCESS_POLICY"

// KeyVaultAccessPolicyRule warns when a template declares a Key Vault
// alongside a resource that typically consumes its secrets (a web app or a
// container group) but contains no access policy block at all.
type KeyVaultAccessPolicyRule struct{}

// ID returns the unique rule identifier.
func (KeyVaultAccessPolicyRule) ID() string { return kvAccessPolicyRuleID }

// Name returns the human-readable rule name.
func (KeyVaultAccessPolicyRule) Name() string { return "Key Vault consumers without access policies" }

// Domain returns the dependencies checker domain.
func (KeyVaultAccessPolicyRule) Domain() string { return models.DomainDependencies }

// Severity returns the default severity.
func (KeyVaultAccessPolicyRule) Severity() models.Severity { return models.SeverityWarning }

// Evaluate implements Rule.
func (KeyVaultAccessPolicyRule) Evaluate(ctx RuleContext) []models.Finding {
	if !strings.Contains(ctx.Content, "Microsoft.KeyVault/vaults") {
		return nil
	}
	consumer := strings.Contains(ctx.Content, "Microsoft.Web/sites") ||
		strings.Contains(ctx.Content, "Microsoft.ContainerInstance/containerGroups")
	if !consumer || strings.Contains(ctx.Content, "accessPolicies") {
		return nil
	}

	return []models.Finding{{
		ID:       fmt.Sprintf("%s-%s", kvAccessPolicyRuleID, ctx.FilePath),
		RuleID:   kvAccessPolicyRuleID,
		FilePath: ctx.FilePath,
		Domain:   models.DomainDependencies,
		Severity: models.SeverityWarning,
		Message:  "Resources using Key Vault should have proper access policies defined",
	}}
}

const appServiceVNetRuleID = "APP_SERVICE_VNET_INTEGRATION"

// AppServiceVNetRule warns when a web app is declared without VNet route-all
// integration.
type AppServiceVNetRule struct{}

// ID returns the unique rule identifier.
func (AppServiceVNetRule) ID() string { return appServiceVNetRuleID }

// Name returns the human-readable rule name.
func (AppServiceVNetRule) Name() string { return "App Service VNet integration" }

// Domain returns the dependencies checker domain.
func (AppServiceVNetRule) Domain() string { return models.DomainDependencies }

// Severity returns the default severity.
func (AppServiceVNetRule) Severity() models.Severity { return models.SeverityWarning }

// Evaluate implements Rule.
func (AppServiceVNetRule) Evaluate(ctx RuleContext) []models.Finding {
	if !strings.Contains(ctx.Content, "Microsoft.Web/sites") {
		return nil
	}
	if strings.Contains(ctx.Content, "vnetRouteAllEnabled") {
		return nil
	}

	return []models.Finding{{
		ID:       fmt.Sprintf("%s-%s", appServiceVNetRuleID, ctx.FilePath),
		RuleID:   appServiceVNetRuleID,
		FilePath: ctx.FilePath,
		Domain:   models.DomainDependencies,
		Severity: models.SeverityWarning,
		Message:  "App Services should consider VNet integration for enhanced security",
	}}
}
