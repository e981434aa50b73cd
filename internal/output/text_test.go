package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/output"
)

func renderTextToString(report *models.ScanReport, failed bool) string {
	var buf bytes.Buffer
	output.RenderText(&buf, report, failed)
	return buf.String()
}

func TestRenderText_ErrorsAndWarningsBlocks(t *testing.T) {
	report := &models.ScanReport{
		Findings: []models.Finding{
			{FilePath: "main.bicep", Severity: models.SeverityError, Message: "App Services should enforce HTTPS only"},
			{FilePath: "main.bicep", Severity: models.SeverityWarning, Message: "App Services should consider VNet integration for enhanced security"},
		},
	}
	out := renderTextToString(report, true)

	if !strings.Contains(out, "❌ ERRORS:") {
		t.Errorf("expected errors block\ngot:\n%s", out)
	}
	if !strings.Contains(out, "  main.bicep: App Services should enforce HTTPS only\n") {
		t.Errorf("expected indented error entry\ngot:\n%s", out)
	}
	if !strings.Contains(out, "⚠️  WARNINGS:") {
		t.Errorf("expected warnings block\ngot:\n%s", out)
	}
	if strings.Contains(out, "All checks passed") {
		t.Errorf("success line must not appear alongside findings\ngot:\n%s", out)
	}
}

func TestRenderText_ErrorsBeforeWarnings(t *testing.T) {
	report := &models.ScanReport{
		Findings: []models.Finding{
			{FilePath: "a.bicep", Severity: models.SeverityWarning, Message: "warn"},
			{FilePath: "a.bicep", Severity: models.SeverityError, Message: "boom"},
		},
	}
	out := renderTextToString(report, true)
	errIdx := strings.Index(out, "ERRORS:")
	warnIdx := strings.Index(out, "WARNINGS:")
	if errIdx < 0 || warnIdx < 0 || errIdx > warnIdx {
		t.Errorf("errors block must precede warnings block\ngot:\n%s", out)
	}
}

func TestRenderText_AllChecksPassed(t *testing.T) {
	out := renderTextToString(&models.ScanReport{}, false)
	if !strings.Contains(out, "✅ All checks passed!") {
		t.Errorf("expected success line\ngot:\n%s", out)
	}
	if strings.Contains(out, "ERRORS:") || strings.Contains(out, "WARNINGS:") {
		t.Errorf("no blocks expected for clean report\ngot:\n%s", out)
	}
}

// TestRenderText_WarningsOnlyNoSuccessLine verifies that warnings alone
// suppress the success line even though the run passes.
func TestRenderText_WarningsOnlyNoSuccessLine(t *testing.T) {
	report := &models.ScanReport{
		Findings: []models.Finding{
			{FilePath: "a.bicep", Severity: models.SeverityWarning, Message: "warn"},
		},
	}
	out := renderTextToString(report, false)
	if strings.Contains(out, "All checks passed") {
		t.Errorf("success line must not appear with warnings present\ngot:\n%s", out)
	}
	if strings.Contains(out, "Tips:") {
		t.Errorf("tips must not appear on a passing run\ngot:\n%s", out)
	}
}

func TestRenderText_TipsOnFailure(t *testing.T) {
	report := &models.ScanReport{
		Findings: []models.Finding{
			{FilePath: "a.bicep", Severity: models.SeverityError, Message: "boom"},
		},
	}
	out := renderTextToString(report, true)
	if !strings.Contains(out, "💡 Tips:") {
		t.Errorf("expected tips block on failure\ngot:\n%s", out)
	}
	for _, tip := range []string{
		"Use Azure Key Vault for secrets management",
		"Enable HTTPS-only for web applications",
		"Use managed identities instead of service principals",
		"Follow Azure naming conventions",
		"Avoid hardcoded secrets in templates",
	} {
		if !strings.Contains(out, "  - "+tip+"\n") {
			t.Errorf("expected tip %q\ngot:\n%s", tip, out)
		}
	}
}
