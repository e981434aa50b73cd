package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/policy"
	deppack "github.com/bicepcheck/bicepcheck/internal/rulepacks/dependencies"
	namingpack "github.com/bicepcheck/bicepcheck/internal/rulepacks/naming"
	secretspack "github.com/bicepcheck/bicepcheck/internal/rulepacks/secrets"
	secpack "github.com/bicepcheck/bicepcheck/internal/rulepacks/security"
	"github.com/bicepcheck/bicepcheck/internal/rules"
)

// fullRegistry wires every rule pack in checker order, mirroring the CLI.
func fullRegistry() rules.RuleRegistry {
	reg := rules.NewDefaultRuleRegistry()
	for _, packRules := range [][]rules.Rule{
		secpack.New(),
		namingpack.New(),
		secretspack.New(),
		deppack.New(),
	} {
		for _, r := range packRules {
			reg.Register(r)
		}
	}
	return reg
}

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// cleanTemplate satisfies every default rule: both required settings present,
// conforming names, VNet integration, and no embedded credentials.
const cleanTemplate = `resource storage 'Microsoft.Storage/storageAccounts@2023-01-01' = {
  name: 'stappdata'
  properties: {
    supportsHttpsTrafficOnly: true
  }
}
resource site 'Microsoft.Web/sites@2023-12-01' = {
  name: 'app-frontend'
  properties: {
    httpsOnly: true
    vnetRouteAllEnabled: true
  }
}
`

// violatingTemplate trips one rule in each checker domain.
const violatingTemplate = `resource storage 'Microsoft.Storage/storageAccounts@2023-01-01' = {
  name: 'BadName'
}
resource site 'Microsoft.Web/sites@2023-12-01' = {
  name: 'app-frontend'
}
var password = 'hunter2hunter2'
`

func TestScan_CleanTemplate(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "main.bicep", cleanTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{Paths: []string{path}})

	if len(report.Findings) != 0 {
		t.Fatalf("want 0 findings for clean template, got %d: %v", len(report.Findings), report.Findings)
	}
	if report.Summary.FilesChecked != 1 || report.Summary.FilesSkipped != 0 {
		t.Errorf("summary: %+v", report.Summary)
	}
	if len(report.Files) != 1 || report.Files[0] != path {
		t.Errorf("files: %v", report.Files)
	}
}

// TestScan_EmissionOrder pins the full ordering contract: rules fire in
// registration order within one file, so the domains appear as security,
// naming, secrets, dependencies.
func TestScan_EmissionOrder(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "main.bicep", violatingTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{Paths: []string{path}})

	want := []string{
		"STORAGE_SECURE_TRANSFER",
		"APP_SERVICE_HTTPS_ONLY",
		"NAMING_CONVENTION",
		"HARDCODED_PASSWORD",
		"APP_SERVICE_VNET_INTEGRATION",
	}
	if len(report.Findings) != len(want) {
		t.Fatalf("want %d findings, got %d: %v", len(want), len(report.Findings), report.Findings)
	}
	for i, id := range want {
		if report.Findings[i].RuleID != id {
			t.Errorf("finding %d: got %q; want %q", i, report.Findings[i].RuleID, id)
		}
	}
}

func TestScan_FilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	second := writeTemplate(t, dir, "second.bicep", violatingTemplate)
	first := writeTemplate(t, dir, "first.bicep", violatingTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{Paths: []string{second, first}})

	if len(report.Findings) != 10 {
		t.Fatalf("want 10 findings, got %d", len(report.Findings))
	}
	for i, f := range report.Findings[:5] {
		if f.FilePath != second {
			t.Errorf("finding %d: file %q; want %q", i, f.FilePath, second)
		}
	}
	for i, f := range report.Findings[5:] {
		if f.FilePath != first {
			t.Errorf("finding %d: file %q; want %q", i+5, f.FilePath, first)
		}
	}
	if !reflect.DeepEqual(report.Files, []string{second, first}) {
		t.Errorf("files: %v", report.Files)
	}
}

func TestScan_NonTemplateArgumentsSkipped(t *testing.T) {
	dir := t.TempDir()
	readme := writeTemplate(t, dir, "README.md", "# docs\n")
	tmpl := writeTemplate(t, dir, "main.bicep", cleanTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{Paths: []string{readme, tmpl}})

	if report.Summary.FilesSkipped != 1 {
		t.Errorf("skipped: got %d; want 1", report.Summary.FilesSkipped)
	}
	if report.Summary.FilesChecked != 1 {
		t.Errorf("checked: got %d; want 1", report.Summary.FilesChecked)
	}
	if len(report.Findings) != 0 {
		t.Errorf("skipped file must produce no findings, got %v", report.Findings)
	}
}

// TestScan_ReadFailureBecomesFinding verifies an unreadable template turns
// into an error finding and the scan continues with the remaining arguments.
func TestScan_ReadFailureBecomesFinding(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.bicep")
	tmpl := writeTemplate(t, dir, "main.bicep", cleanTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{Paths: []string{missing, tmpl}})

	if len(report.Findings) != 1 {
		t.Fatalf("want 1 finding, got %d: %v", len(report.Findings), report.Findings)
	}
	f := report.Findings[0]
	if f.RuleID != ReadFailureRuleID {
		t.Errorf("rule: got %q; want %q", f.RuleID, ReadFailureRuleID)
	}
	if f.Severity != models.SeverityError {
		t.Errorf("severity: got %q; want error", f.Severity)
	}
	if !strings.HasPrefix(f.Message, "cannot read template:") {
		t.Errorf("message: got %q", f.Message)
	}
	if f.Domain != "" {
		t.Errorf("read failures carry no domain, got %q", f.Domain)
	}
	if report.Summary.FilesChecked != 1 {
		t.Errorf("checked: got %d; want 1 (the readable template)", report.Summary.FilesChecked)
	}
}

func TestScan_ProgressLines(t *testing.T) {
	dir := t.TempDir()
	a := writeTemplate(t, dir, "a.bicep", cleanTemplate)
	b := writeTemplate(t, dir, "b.bicep", cleanTemplate)
	missing := filepath.Join(dir, "gone.bicep")

	var progress bytes.Buffer
	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	eng.Scan(ScanOptions{Paths: []string{a, "notes.txt", missing, b}, Progress: &progress})

	want := "Checking " + a + "...\nChecking " + b + "...\n"
	if progress.String() != want {
		t.Errorf("progress:\ngot  %q\nwant %q", progress.String(), want)
	}
}

// TestScan_Idempotent verifies two scans over identical inputs produce
// identical finding slices and summaries.
func TestScan_Idempotent(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "main.bicep", violatingTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	first := eng.Scan(ScanOptions{Paths: []string{path}})
	second := eng.Scan(ScanOptions{Paths: []string{path}})

	if !reflect.DeepEqual(first.Findings, second.Findings) {
		t.Errorf("findings differ between identical scans:\n%v\n%v", first.Findings, second.Findings)
	}
	if first.Summary != second.Summary {
		t.Errorf("summaries differ: %+v vs %+v", first.Summary, second.Summary)
	}
}

func TestScan_PolicyDomainDisable(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "main.bicep", violatingTemplate)

	cfg := &policy.PolicyConfig{
		Version: 1,
		Domains: map[string]policy.DomainConfig{
			"naming": {Enabled: false},
		},
	}
	eng := NewDefaultEngine(fullRegistry(), cfg, nil)
	report := eng.Scan(ScanOptions{Paths: []string{path}})

	for _, f := range report.Findings {
		if f.Domain == models.DomainNaming {
			t.Errorf("naming finding survived a disabled domain: %v", f)
		}
	}
	if len(report.Findings) != 4 {
		t.Errorf("want 4 findings with naming disabled, got %d", len(report.Findings))
	}
}

func TestScan_PolicySeverityOverride(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "main.bicep", violatingTemplate)

	cfg := &policy.PolicyConfig{
		Version: 1,
		Rules: map[string]policy.RuleConfig{
			"NAMING_CONVENTION": {Severity: "error"},
		},
	}
	eng := NewDefaultEngine(fullRegistry(), cfg, nil)
	report := eng.Scan(ScanOptions{Paths: []string{path}})

	for _, f := range report.Findings {
		if f.RuleID == "NAMING_CONVENTION" && f.Severity != models.SeverityError {
			t.Errorf("override not applied: %v", f)
		}
	}
}

func TestScan_SummaryCounts(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "main.bicep", violatingTemplate)

	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{Paths: []string{path}})

	s := report.Summary
	if s.TotalFindings != 5 {
		t.Errorf("total: got %d; want 5", s.TotalFindings)
	}
	// Two missing required settings plus the hardcoded password.
	if s.ErrorFindings != 3 {
		t.Errorf("errors: got %d; want 3", s.ErrorFindings)
	}
	if s.WarningFindings != 2 {
		t.Errorf("warnings: got %d; want 2", s.WarningFindings)
	}
}

func TestScan_NoPaths(t *testing.T) {
	eng := NewDefaultEngine(fullRegistry(), nil, nil)
	report := eng.Scan(ScanOptions{})

	if len(report.Findings) != 0 || report.Summary.FilesChecked != 0 {
		t.Errorf("empty scan must produce an empty report, got %+v", report.Summary)
	}
	if report.ReportID == "" {
		t.Error("report ID must still be assigned")
	}
}
