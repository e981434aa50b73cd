package bicep

import "regexp"

// declPattern captures the logical (symbolic) name and the fully qualified
// type of each resource declaration header, e.g.
//
//	resource storage 'Microsoft.Storage/storageAccounts@2023-01-01' = {
//
// Logical names and types are matched case-sensitively.
var declPattern = regexp.MustCompile(`resource\s+(\w+)\s+'([^']+)'\s+=\s+\{`)

// namePattern captures a literal name property value within a declaration
// body. Names supplied via parameters or expressions carry no quotes and are
// deliberately not matched.
var namePattern = regexp.MustCompile(`name:\s*'([^']+)'`)

// ResourceDeclaration is one extracted resource block.
type ResourceDeclaration struct {
	// LogicalName is the symbolic identifier after the resource keyword.
	LogicalName string

	// Type is the fully qualified resource type, including any @api-version
	// suffix the template carries.
	Type string

	// DeclaredName is the first literal name property between this
	// declaration header and the next one (or the end of the document).
	// Empty when the block declares no literal name.
	DeclaredName string
}

// Declarations extracts every resource declaration from content in order of
// appearance. Name lookup is confined to each declaration's span so that one
// resource's name is never attributed to another.
func Declarations(content string) []ResourceDeclaration {
	matches := declPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	decls := make([]ResourceDeclaration, 0, len(matches))
	for i, m := range matches {
		spanEnd := len(content)
		if i+1 < len(matches) {
			spanEnd = matches[i+1][0]
		}

		d := ResourceDeclaration{
			LogicalName: content[m[2]:m[3]],
			Type:        content[m[4]:m[5]],
		}
		if nm := namePattern.FindStringSubmatch(content[m[0]:spanEnd]); nm != nil {
			d.DeclaredName = nm[1]
		}
		decls = append(decls, d)
	}
	return decls
}
