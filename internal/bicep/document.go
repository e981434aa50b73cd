// Package bicep provides the minimal template handling the checker needs:
// extension gating, file loading, and extraction of resource declarations.
// Templates are treated as flat annotated text; nothing in this package
// attempts to parse the Bicep grammar.
package bicep

import (
	"os"
	"strings"
)

// Extension is the file suffix that marks a Bicep template.
const Extension = ".bicep"

// IsTemplate reports whether path names a Bicep template. The check is a
// case-sensitive suffix match; anything else is not a template and must be
// skipped, not rejected.
func IsTemplate(path string) bool {
	return strings.HasSuffix(path, Extension)
}

// Document is one loaded template: its path as given on the command line and
// its full text content. Documents are transient; they live only for the
// duration of a single evaluation pass.
type Document struct {
	Path    string
	Content string
}

// Load reads the template at path into a Document. The returned error is the
// underlying read error; callers convert it into a finding rather than
// aborting the run.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Content: string(data)}, nil
}
