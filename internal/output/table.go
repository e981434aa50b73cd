package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// ANSI color codes for severity output (used when Colored=true).
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[0;33m"
)

// TableOptions controls how RenderTable renders findings.
type TableOptions struct {
	// Colored wraps severity labels with ANSI codes. Default false (CI-safe).
	Colored bool
}

// ColorSeverity wraps a severity string with ANSI codes when colored is true.
// When colored is false the string is returned unchanged (CI-safe default).
func ColorSeverity(sev models.Severity, colored bool) string {
	s := string(sev)
	if !colored {
		return s
	}
	switch sev {
	case models.SeverityError:
		return ansiRed + s + ansiReset
	case models.SeverityWarning:
		return ansiYellow + s + ansiReset
	default:
		return s
	}
}

// ShortenMessage truncates msg to at most max runes, appending "..." when truncated.
// max is treated as at least 4 to guarantee space for the ellipsis.
func ShortenMessage(msg string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(msg)
	if len(runes) <= max {
		return msg
	}
	return string(runes[:max-3]) + "..."
}

// severityCell returns the severity padded to width characters.
// When colored, ANSI codes wrap only the text; trailing padding spaces are plain
// so subsequent columns stay visually aligned regardless of terminal ANSI support.
func severityCell(sev models.Severity, width int, colored bool) string {
	text := string(sev)
	if !colored {
		return fmt.Sprintf("%-*s", width, text)
	}
	var code string
	switch sev {
	case models.SeverityError:
		code = ansiRed
	case models.SeverityWarning:
		code = ansiYellow
	default:
		return fmt.Sprintf("%-*s", width, text)
	}
	spaces := width - len(text)
	if spaces < 0 {
		spaces = 0
	}
	return code + text + ansiReset + strings.Repeat(" ", spaces)
}

// truncateField shortens s to at most max bytes for path/label columns.
// A single-char ellipsis replaces the last byte when truncation occurs.
func truncateField(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// RenderTable writes a formatted findings table to w, preceded by a one-line
// scan summary. The separator line width is derived from the header row so
// all rows align correctly.
//
// Column order:
//
//	FILE  SEVERITY  RULE  DOMAIN  MESSAGE
func RenderTable(w io.Writer, report *models.ScanReport, opts TableOptions) {
	s := report.Summary
	fmt.Fprintf(w, "Files: %d checked, %d skipped. Findings: %d (%d errors, %d warnings)\n\n",
		s.FilesChecked, s.FilesSkipped, s.TotalFindings, s.ErrorFindings, s.WarningFindings)

	if len(report.Findings) == 0 {
		fmt.Fprintln(w, "No findings.")
		return
	}

	// Fixed column display widths.
	const (
		wFile     = 30
		wSeverity = 9
		wRule     = 28
		wDomain   = 13
		wMessage  = 60
	)

	var hb strings.Builder
	hb.WriteString(fmt.Sprintf("%-*s", wFile, "FILE"))
	hb.WriteString(fmt.Sprintf("  %-*s", wSeverity, "SEVERITY"))
	hb.WriteString(fmt.Sprintf("  %-*s", wRule, "RULE"))
	hb.WriteString(fmt.Sprintf("  %-*s", wDomain, "DOMAIN"))
	hb.WriteString(fmt.Sprintf("  %-*s", wMessage, "MESSAGE"))
	header := hb.String()

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, f := range report.Findings {
		var rb strings.Builder
		rb.WriteString(fmt.Sprintf("%-*s", wFile, truncateField(f.FilePath, wFile)))
		rb.WriteString("  " + severityCell(f.Severity, wSeverity, opts.Colored))
		rb.WriteString(fmt.Sprintf("  %-*s", wRule, truncateField(f.RuleID, wRule)))
		rb.WriteString(fmt.Sprintf("  %-*s", wDomain, truncateField(f.Domain, wDomain)))
		rb.WriteString(fmt.Sprintf("  %-*s", wMessage, ShortenMessage(f.Message, wMessage)))
		fmt.Fprintln(w, rb.String())
	}
}
