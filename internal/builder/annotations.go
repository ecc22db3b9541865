// internal/builder/annotations.go
package builder

import (
	"fmt"
	"strings"

	"github.com/sebastian-peter/tscfg/internal/model"
)

// defineFromComments extracts the `@define` directive from the comment
// lines preceding a key. It returns nil when no line carries one, and a
// DefinitionError when a line is unparseable or more than one line
// carries a directive.
func defineFromComments(name string, comments []string) (model.DefineCase, error) {
	var directives []string
	for _, line := range comments {
		if strings.HasPrefix(strings.TrimSpace(line), "@define") {
			directives = append(directives, strings.TrimSpace(line))
		}
	}
	switch len(directives) {
	case 0:
		return nil, nil
	case 1:
		return parseDefine(name, directives[0])
	default:
		return nil, &model.DefinitionError{Name: name, Reason: "multiple @define's"}
	}
}

// parseDefine parses the suffix of a single `@define` line.
func parseDefine(name, line string) (model.DefineCase, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "@define"))
	switch rest {
	case "":
		return model.PlainDefine{}, nil
	case "abstract":
		return model.AbstractDefine{}, nil
	case "enum":
		return model.EnumDefine{}, nil
	}
	fields := strings.Fields(rest)
	if len(fields) == 2 && fields[0] == "extends" {
		return model.ExtendsDefine{Parent: fields[1]}, nil
	}
	return nil, &model.DefinitionError{
		Name:   name,
		Reason: fmt.Sprintf("cannot parse directive %q", line),
	}
}

// optionalFromComments reports whether any comment line marks the key
// `@optional`.
func optionalFromComments(comments []string) bool {
	for _, line := range comments {
		if strings.HasPrefix(strings.TrimSpace(line), "@optional") {
			return true
		}
	}
	return false
}

// extendsTarget returns the parent name when the comment block carries a
// single `@define extends <Parent>` directive.
func extendsTarget(comments []string) (string, bool) {
	dc, err := defineFromComments("", comments)
	if err != nil {
		return "", false
	}
	if ext, ok := dc.(model.ExtendsDefine); ok {
		return ext.Parent, true
	}
	return "", false
}

// isParentComments reports whether the joined comment block marks the
// key as a parent definition (abstract or extending one).
func isParentComments(joined string) bool {
	return strings.Contains(joined, "@define abstract") ||
		strings.Contains(joined, "@define extends ")
}

// isEnumComments reports whether the joined comment block marks the key
// as an enumeration.
func isEnumComments(joined string) bool {
	return strings.Contains(joined, "@define enum")
}
