package models

import "time"

// Severity represents the impact level of a finding.
// The engine recognises exactly two levels: error findings fail the run,
// warning findings are advisory and never change the exit status on their own.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Checker domain names. Every rule belongs to exactly one domain; the domain
// is the unit of policy-level enable/disable and enforcement tuning.
const (
	DomainSecurity     = "security"
	DomainNaming       = "naming"
	DomainSecrets      = "secrets"
	DomainDependencies = "dependencies"
)

// Finding is a single detected issue in one template file.
// It is the atomic output unit of the rule engine.
//
// Findings carry no timestamps: two scans over identical inputs must produce
// identical finding slices.
type Finding struct {
	ID       string   `json:"id"`
	RuleID   string   `json:"rule_id"`
	FilePath string   `json:"file_path"`
	Domain   string   `json:"domain,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ScanSummary aggregates counts across all findings of a scan.
type ScanSummary struct {
	TotalFindings   int `json:"total_findings"`
	ErrorFindings   int `json:"error_findings"`
	WarningFindings int `json:"warning_findings"`
	FilesChecked    int `json:"files_checked"`
	FilesSkipped    int `json:"files_skipped"`
}

// ScanReport is the top-level output of a scan run. Each run produces a fresh
// report; nothing accumulates across runs.
//
// Findings appear in emission order: file argument order first, then rule
// registration order within each file. The engine never re-sorts them.
type ScanReport struct {
	ReportID    string      `json:"report_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Files       []string    `json:"files"`
	Summary     ScanSummary `json:"summary"`
	Findings    []Finding   `json:"findings"`
}
