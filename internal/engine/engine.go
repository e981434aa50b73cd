package engine

import (
	"io"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// ReportFormat controls the CLI output format.
type ReportFormat string

const (
	ReportFormatText  ReportFormat = "text"
	ReportFormatTable ReportFormat = "table"
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatSARIF ReportFormat = "sarif"
)

// ReadFailureRuleID tags findings synthesised by the engine when a template
// cannot be read. It is not a registry rule and cannot be disabled by policy.
const ReadFailureRuleID = "TEMPLATE_READ"

// ScanOptions configures a single scan run.
// It is the sole input to Engine.Scan.
type ScanOptions struct {
	// Paths are the command-line file arguments, in order. Entries without
	// the template extension are skipped silently.
	Paths []string

	// Progress receives the per-file "Checking <path>..." lines as templates
	// are picked up. Nil disables progress output (machine-readable formats).
	Progress io.Writer
}

// Engine is the central orchestration interface.
// It sequences the registered rules over each qualifying template and
// assembles a fresh ScanReport per run.
//
// Scan never fails as a whole: unreadable templates become error findings
// and the run continues with the remaining files.
type Engine interface {
	Scan(opts ScanOptions) *models.ScanReport
}
