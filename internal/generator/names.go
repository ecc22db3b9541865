// internal/generator/names.go
package generator

import "strings"

// goKeywords are escaped with a trailing underscore when they show up
// as generated identifiers.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// goName converts a config key into an exported CamelCase identifier.
func goName(s string) string {
	var out []rune
	capNext := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == '$' || r == '"':
			capNext = true
		case r >= '0' && r <= '9':
			if len(out) == 0 {
				out = append(out, 'N')
			}
			out = append(out, r)
			capNext = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			if capNext && r >= 'a' && r <= 'z' {
				r = r - 'a' + 'A'
			}
			out = append(out, r)
			capNext = false
		}
	}
	if len(out) == 0 {
		return "X"
	}
	name := string(out)
	if goKeywords[strings.ToLower(name)] {
		name += "_"
	}
	return name
}

// constName converts an enum value into an exported constant suffix.
func constName(prefix, value string) string {
	return prefix + goName(strings.ToLower(value))
}

// formatComment renders a raw comment block as Go line comments.
func formatComment(comment string) string {
	if comment == "" {
		return ""
	}
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = "// " + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
