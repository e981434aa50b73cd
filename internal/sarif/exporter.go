// Package sarif renders scan reports as SARIF 2.1.0 logs so findings can be
// ingested by code-scanning surfaces (GitHub code scanning, VS Code SARIF
// viewers).
package sarif

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/bicepcheck/bicepcheck/internal/models"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// New builds a SARIF 2.1.0 log from a scan report. Results keep the report's
// finding order. The checker carries no line information, so every result
// points at line 1 of its file.
func New(report *models.ScanReport, toolName, toolVersion string) *Log {
	results := make([]Result, 0, len(report.Findings))
	for _, f := range report.Findings {
		fileURI := toURI(f.FilePath)
		if strings.TrimSpace(fileURI) == "" {
			fileURI = "UNKNOWN"
		}

		results = append(results, Result{
			RuleID: f.RuleID,
			Level:  sevToLevel(f.Severity),
			Message: Message{
				Text: strings.TrimSpace(f.Message),
			},
			Locations: []Location{
				{
					PhysicalLocation: PhysicalLocation{
						ArtifactLocation: ArtifactLocation{
							URI: fileURI,
						},
						Region: Region{
							StartLine: 1,
						},
					},
				},
			},
		})
	}

	return &Log{
		Version: "2.1.0",
		// RTM schema recognised by GitHub and VS Code.
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: results,
			},
		},
	}
}

// Write marshals the log as indented JSON to w.
func (l *Log) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

func sevToLevel(s models.Severity) string {
	switch s {
	case models.SeverityError:
		return "error"
	case models.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// toURI normalises a template path into a repo-relative SARIF artifact URI.
func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
