package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bicepcheck/bicepcheck/internal/bicep"
	"github.com/bicepcheck/bicepcheck/internal/models"
	"github.com/bicepcheck/bicepcheck/internal/policy"
	"github.com/bicepcheck/bicepcheck/internal/rules"
)

// DefaultEngine is the production implementation of Engine.
// It coordinates template loading, rule evaluation, policy application, and
// report assembly. Its only I/O is reading the template files it is given;
// it never touches the network.
type DefaultEngine struct {
	registry rules.RuleRegistry
	policy   *policy.PolicyConfig
	log      *zap.SugaredLogger
}

// NewDefaultEngine constructs a DefaultEngine wired to the supplied registry
// and optional policy config. A nil logger is replaced with a no-op logger.
func NewDefaultEngine(registry rules.RuleRegistry, policyCfg *policy.PolicyConfig, log *zap.SugaredLogger) *DefaultEngine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &DefaultEngine{
		registry: registry,
		policy:   policyCfg,
		log:      log,
	}
}

// Scan implements Engine. Paths are processed strictly in argument order:
// non-template arguments are skipped, unreadable templates become
// error-severity findings, and readable templates run through every
// registered rule. Policy filtering happens once, after all files.
func (e *DefaultEngine) Scan(opts ScanOptions) *models.ScanReport {
	var (
		findings []models.Finding
		files    []string
		skipped  int
	)

	for _, path := range opts.Paths {
		if !bicep.IsTemplate(path) {
			skipped++
			e.log.Debugw("skipping non-template argument", "path", path)
			continue
		}

		doc, err := bicep.Load(path)
		if err != nil {
			e.log.Debugw("template read failed", "path", path, "error", err)
			findings = append(findings, readFailureFinding(path, err))
			continue
		}

		files = append(files, path)
		if opts.Progress != nil {
			fmt.Fprintf(opts.Progress, "Checking %s...\n", path)
		}

		findings = append(findings, e.registry.EvaluateAll(rules.RuleContext{
			FilePath: doc.Path,
			Content:  doc.Content,
			Policy:   e.policy,
		})...)
	}

	findings = policy.ApplyPolicy(findings, e.policy)
	return buildReport(files, skipped, findings)
}

// readFailureFinding converts a template read error into the error-severity
// finding that keeps the run going.
func readFailureFinding(path string, err error) models.Finding {
	return models.Finding{
		ID:       fmt.Sprintf("%s-%s", ReadFailureRuleID, path),
		RuleID:   ReadFailureRuleID,
		FilePath: path,
		Severity: models.SeverityError,
		Message:  fmt.Sprintf("cannot read template: %v", err),
	}
}

// buildReport assembles the final ScanReport. Findings stay in emission
// order; the engine never merges or re-sorts them, so two scans over
// identical inputs differ only in report metadata.
func buildReport(files []string, skipped int, findings []models.Finding) *models.ScanReport {
	return &models.ScanReport{
		ReportID:    fmt.Sprintf("scan-%d", time.Now().UnixNano()),
		GeneratedAt: time.Now().UTC(),
		Files:       files,
		Summary:     computeSummary(findings, len(files), skipped),
		Findings:    findings,
	}
}

// computeSummary aggregates finding counts per severity plus file totals.
func computeSummary(findings []models.Finding, checked, skipped int) models.ScanSummary {
	s := models.ScanSummary{
		TotalFindings: len(findings),
		FilesChecked:  checked,
		FilesSkipped:  skipped,
	}
	for _, f := range findings {
		switch f.Severity {
		case models.SeverityError:
			s.ErrorFindings++
		case models.SeverityWarning:
			s.WarningFindings++
		}
	}
	return s
}
