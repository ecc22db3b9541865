// internal/typespec/typespec.go
package typespec

import (
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sebastian-peter/tscfg/internal/model"
)

// Spec is the result of parsing one type-spec string.
type Spec struct {
	Type     model.BasicType
	Optional bool
	Default  *string
}

// atomicTypes is the fixed table of base type names.
var atomicTypes = map[string]model.BasicKind{
	"string":   model.StringT,
	"boolean":  model.BoolT,
	"int":      model.IntT,
	"long":     model.LongT,
	"double":   model.DoubleT,
	"duration": model.DurationT,
	"size":     model.SizeT,
}

// unitNames maps every accepted spelling of a time unit to its unit.
var unitNames = map[string]model.DurationUnit{
	"ns": model.Nanoseconds, "nano": model.Nanoseconds, "nanos": model.Nanoseconds,
	"nanosecond": model.Nanoseconds, "nanoseconds": model.Nanoseconds,
	"us": model.Microseconds, "micro": model.Microseconds, "micros": model.Microseconds,
	"microsecond": model.Microseconds, "microseconds": model.Microseconds,
	"ms": model.Milliseconds, "milli": model.Milliseconds, "millis": model.Milliseconds,
	"millisecond": model.Milliseconds, "milliseconds": model.Milliseconds,
	"s": model.Seconds, "second": model.Seconds, "seconds": model.Seconds,
	"m": model.Minutes, "minute": model.Minutes, "minutes": model.Minutes,
	"h": model.Hours, "hour": model.Hours, "hours": model.Hours,
	"d": model.Days, "day": model.Days, "days": model.Days,
}

// durationLiteralRe matches HOCON duration literals: a number followed
// by a unit spelling, e.g. `10ms`, `5 seconds`.
var durationLiteralRe = regexp.MustCompile(
	`^\s*[0-9]+(?:\.[0-9]+)?\s*(nanoseconds?|nanos?|microseconds?|micros?|milliseconds?|millis?|seconds?|minutes?|hours?|days?|ns|us|ms|[smhd])\s*$`)

// UnitFromName resolves a unit spelling (any accepted form, any case)
// to its DurationUnit.
func UnitFromName(name string) (model.DurationUnit, bool) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}

// IsDurationLiteral reports whether s is a bare HOCON duration literal.
func IsDurationLiteral(s string) bool {
	return durationLiteralRe.MatchString(s)
}

// IsSizeLiteral reports whether s is a bare HOCON size literal such as
// `4KiB`. A unit suffix is required; a plain number is not a size.
func IsSizeLiteral(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || t[0] < '0' || t[0] > '9' {
		return false
	}
	if !strings.ContainsFunc(t, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) {
		return false
	}
	_, err := humanize.ParseBytes(t)
	return err == nil
}

// Parse applies the type-spec grammar to a leaf value string. The
// boolean result is false when the string is not a type spec at all, in
// which case the caller treats the literal as a plain default.
func Parse(value string) (Spec, bool) {
	// Bare literals take precedence over the generic grammar.
	if IsDurationLiteral(value) {
		def := value
		return Spec{Type: model.Duration(model.Milliseconds), Optional: true, Default: &def}, true
	}
	if IsSizeLiteral(value) {
		def := value
		return Spec{Type: model.Basic(model.SizeT), Optional: true, Default: &def}, true
	}

	typePart := value
	var def *string
	if i := strings.Index(value, "|"); i >= 0 {
		typePart = strings.TrimSpace(value[:i])
		d := strings.TrimSpace(value[i+1:])
		def = &d
	}

	typePart = strings.ToLower(strings.TrimSpace(typePart))
	isOpt := def != nil
	if strings.HasSuffix(typePart, "?") {
		typePart = strings.TrimSpace(strings.TrimSuffix(typePart, "?"))
		isOpt = true
	}

	base := typePart
	var qualifier string
	if i := strings.Index(typePart, ":"); i >= 0 {
		base = strings.TrimSpace(typePart[:i])
		qualifier = strings.TrimSpace(typePart[i+1:])
	}

	kind, ok := atomicTypes[base]
	if !ok {
		return Spec{}, false
	}

	t := model.Basic(kind)
	if kind == model.DurationT {
		t = model.Duration(model.Milliseconds)
		if qualifier != "" {
			if unit, ok := UnitFromName(qualifier); ok {
				t = model.Duration(unit)
			}
		}
	}
	return Spec{Type: t, Optional: isOpt, Default: def}, true
}
