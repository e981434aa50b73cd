package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

// WriteJSON writes the full report as indented JSON to w.
func WriteJSON(w io.Writer, report *models.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteReportFile serialises report as indented JSON and writes it to path,
// creating or overwriting the file. It does not affect stdout output.
func WriteReportFile(path string, report *models.ScanReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report file %q: %w", path, err)
	}
	return nil
}
