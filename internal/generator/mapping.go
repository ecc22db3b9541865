// internal/generator/mapping.go
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sebastian-peter/tscfg/internal/model"
	"github.com/sebastian-peter/tscfg/internal/typespec"
)

// fileData is everything the template needs to render one source file.
type fileData struct {
	Package   string
	Enums     []*enumSpec
	Structs   []*structSpec
	NeedsTime bool
}

type enumSpec struct {
	Name   string
	Consts []enumConst
	Values []string
}

type enumConst struct {
	Name  string
	Value string
}

type structSpec struct {
	Name    string
	Comment string
	Fields  []*fieldSpec
}

// fieldSpec drives the per-field constructor snippet. Mode selects the
// template branch: scalar, scalarptr, object, objectopt, or slice.
type fieldSpec struct {
	GoName  string
	Key     string
	GoType  string
	Comment string
	Mode    string

	Conv        string // conversion helper name for scalar modes
	ConvArg     string // extra helper argument (duration unit)
	Cast        string // named type to cast the converted value into
	EnumValid   string // validity map name when the field is an enum
	ElemConv    string // element conversion expression for slices
	StructName  string // nested constructor name for object modes
	DefaultExpr string
	HasDefault  bool
	Optional    bool
}

// mapper walks the IR and accumulates the specs for rendering. Objects
// and enums reached through a define are shared IR nodes; the caches
// make sure each one renders exactly once under one name.
type mapper struct {
	enums       []*enumSpec
	structs     []*structSpec
	usedNames   map[string]bool
	structNames map[*model.ObjectType]string
	enumSpecs   map[*model.EnumObjectType]*enumSpec
	needsTime   bool
}

// buildFileData flattens the model into template data.
func buildFileData(pkg, rootName string, result *model.BuildResult) (*fileData, error) {
	m := &mapper{
		usedNames:   make(map[string]bool),
		structNames: make(map[*model.ObjectType]string),
		enumSpecs:   make(map[*model.EnumObjectType]*enumSpec),
	}
	if _, err := m.addStruct(rootName, "", result.Root.Members, nil); err != nil {
		return nil, err
	}
	return &fileData{
		Package:   pkg,
		Enums:     m.enums,
		Structs:   m.structs,
		NeedsTime: m.needsTime,
	}, nil
}

// uniqueName reserves a type name, suffixing on collision.
func (m *mapper) uniqueName(base string) string {
	name := base
	for i := 2; m.usedNames[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	m.usedNames[name] = true
	return name
}

// addStruct registers a struct for an object's members, flattening the
// parent-class members of an extender in front of its own.
func (m *mapper) addStruct(name, comment string, members, parentMembers *model.Members) (string, error) {
	structName := m.uniqueName(name)
	spec := &structSpec{Name: structName, Comment: formatComment(comment)}
	// Reserve the slot now so nested structs render after their owner.
	m.structs = append(m.structs, spec)

	add := func(src *model.Members) error {
		for _, key := range src.Names() {
			f, err := m.fieldFor(structName, key, src.Get(key))
			if err != nil {
				return err
			}
			if f != nil {
				spec.Fields = append(spec.Fields, f)
			}
		}
		return nil
	}
	if parentMembers != nil {
		if err := add(parentMembers); err != nil {
			return "", err
		}
	}
	if err := add(members); err != nil {
		return "", err
	}
	return structName, nil
}

// fieldFor computes the field spec for one member, creating nested
// struct and enum specs on the way. It returns nil for members that
// have no concrete representation.
func (m *mapper) fieldFor(owner, key string, ann *model.AnnType) (*fieldSpec, error) {
	f := &fieldSpec{
		GoName:     goName(key),
		Key:        key,
		Optional:   ann.Optional,
		HasDefault: ann.Default != nil,
	}
	if ann.Comments != nil {
		f.Comment = formatComment(*ann.Comments)
	}

	switch t := ann.Type.(type) {
	case model.BasicType:
		if err := m.scalarField(f, t, ann.Default); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", owner, key, err)
		}

	case *model.ObjectType:
		sub, ok := m.structNames[t]
		if !ok && ann.ParentClassMembers == nil {
			var err error
			sub, err = m.addStruct(owner+goName(key), "", t.Members, nil)
			if err != nil {
				return nil, err
			}
			m.structNames[t] = sub
		} else if !ok {
			// An extender's struct is unique to the field: the parent
			// members are flattened in, so it is never shared.
			var err error
			sub, err = m.addStruct(owner+goName(key), "", t.Members, ann.ParentClassMembers)
			if err != nil {
				return nil, err
			}
		}
		f.GoType = sub
		f.StructName = sub
		if ann.Optional {
			f.Mode = "objectopt"
		} else {
			f.Mode = "object"
		}

	case *model.EnumObjectType:
		enum, ok := m.enumSpecs[t]
		if !ok {
			enum = m.addEnum(owner+goName(key), t.Values)
			m.enumSpecs[t] = enum
		}
		f.GoType = enum.Name
		f.Conv = "asString"
		f.Cast = enum.Name
		f.EnumValid = "valid" + enum.Name
		if ann.Default != nil {
			f.DefaultExpr = fmt.Sprintf("%s(%s)", enum.Name, strconv.Quote(unescape(*ann.Default)))
		}
		if ann.Optional && ann.Default == nil {
			f.Mode = "scalarptr"
			f.GoType = "*" + f.GoType
		} else {
			f.Mode = "scalar"
		}

	case *model.ListType:
		elemType, elemConv, err := m.elemInfo(owner, key, t.Elem)
		if err != nil {
			return nil, err
		}
		f.GoType = "[]" + elemType
		f.ElemConv = elemConv
		f.Mode = "slice"

	case *model.AbstractObjectType:
		// Parent-class placeholders never surface as concrete fields.
		return nil, nil

	default:
		return nil, fmt.Errorf("%s.%s: unsupported type %T", owner, key, ann.Type)
	}
	return f, nil
}

// scalarField fills in the conversion and default for a basic type.
func (m *mapper) scalarField(f *fieldSpec, t model.BasicType, def *string) error {
	switch t.Kind {
	case model.StringT:
		f.GoType, f.Conv = "string", "asString"
		if def != nil {
			f.DefaultExpr = strconv.Quote(unescape(*def))
		}
	case model.BoolT:
		f.GoType, f.Conv = "bool", "asBool"
		if def != nil {
			f.DefaultExpr = *def
		}
	case model.IntT:
		f.GoType, f.Conv = "int32", "asInt32"
		if def != nil {
			f.DefaultExpr = *def
		}
	case model.LongT:
		f.GoType, f.Conv = "int64", "asInt64"
		if def != nil {
			f.DefaultExpr = *def
		}
	case model.DoubleT:
		f.GoType, f.Conv = "float64", "asFloat64"
		if def != nil {
			f.DefaultExpr = *def
		}
	case model.DurationT:
		m.needsTime = true
		f.GoType, f.Conv = "time.Duration", "asDuration"
		f.ConvArg = unitExpr(t.Unit)
		if def != nil {
			d, err := durationDefault(*def, t.Unit)
			if err != nil {
				return err
			}
			f.DefaultExpr = d
		}
	case model.SizeT:
		f.GoType, f.Conv = "int64", "asSizeBytes"
		if def != nil {
			n, err := humanize.ParseBytes(*def)
			if err != nil {
				return fmt.Errorf("cannot parse size default %q: %w", *def, err)
			}
			f.DefaultExpr = strconv.FormatUint(n, 10)
		}
	default:
		return fmt.Errorf("unsupported basic kind %s", t.Kind)
	}
	if f.Optional && !f.HasDefault {
		f.Mode = "scalarptr"
		f.GoType = "*" + f.GoType
	} else {
		f.Mode = "scalar"
	}
	return nil
}

// elemInfo resolves a list's element type and conversion expression.
func (m *mapper) elemInfo(owner, key string, elem model.Type) (string, string, error) {
	switch t := elem.(type) {
	case model.BasicType:
		probe := &fieldSpec{}
		if err := m.scalarField(probe, t, nil); err != nil {
			return "", "", err
		}
		conv := probe.Conv
		if probe.ConvArg != "" {
			conv = fmt.Sprintf("func(v any) (%s, error) { return %s(v, %s) }", probe.GoType, probe.Conv, probe.ConvArg)
		}
		return probe.GoType, conv, nil

	case *model.ObjectType:
		sub, ok := m.structNames[t]
		if !ok {
			var err error
			sub, err = m.addStruct(owner+goName(key)+"Item", "", t.Members, nil)
			if err != nil {
				return "", "", err
			}
			m.structNames[t] = sub
		}
		conv := fmt.Sprintf(
			"func(v any) (%s, error) { sub, ok := v.(map[string]any); if !ok { return %s{}, fmt.Errorf(\"expected an object\") }; return New%s(sub) }",
			sub, sub, sub)
		return sub, conv, nil

	case *model.EnumObjectType:
		enum, ok := m.enumSpecs[t]
		if !ok {
			enum = m.addEnum(owner+goName(key), t.Values)
			m.enumSpecs[t] = enum
		}
		conv := fmt.Sprintf(
			"func(v any) (%s, error) { s, err := asString(v); if err != nil { return \"\", err }; vv := %s(s); if !valid%s[vv] { return \"\", fmt.Errorf(\"invalid value %%q\", s) }; return vv, nil }",
			enum.Name, enum.Name, enum.Name)
		return enum.Name, conv, nil

	case *model.ListType:
		innerType, innerConv, err := m.elemInfo(owner, key, t.Elem)
		if err != nil {
			return "", "", err
		}
		conv := fmt.Sprintf("func(v any) ([]%s, error) { return asSlice(v, %s) }", innerType, innerConv)
		return "[]" + innerType, conv, nil

	default:
		return "", "", fmt.Errorf("%s.%s: unsupported list element type %T", owner, key, elem)
	}
}

// addEnum registers a named string enumeration.
func (m *mapper) addEnum(name string, values []string) *enumSpec {
	spec := &enumSpec{Name: m.uniqueName(name), Values: values}
	for _, v := range values {
		spec.Consts = append(spec.Consts, enumConst{
			Name:  constName(spec.Name, v),
			Value: v,
		})
	}
	m.enums = append(m.enums, spec)
	return spec
}

// unitExpr renders a duration unit as a time package expression.
func unitExpr(u model.DurationUnit) string {
	switch u {
	case model.Nanoseconds:
		return "time.Nanosecond"
	case model.Microseconds:
		return "time.Microsecond"
	case model.Milliseconds:
		return "time.Millisecond"
	case model.Seconds:
		return "time.Second"
	case model.Minutes:
		return "time.Minute"
	case model.Hours:
		return "time.Hour"
	case model.Days:
		return "24 * time.Hour"
	default:
		return "time.Millisecond"
	}
}

// durationDefault renders a duration default as a Go expression. The
// default is either a duration literal (`5 s`) or a bare number in the
// field's unit.
func durationDefault(def string, unit model.DurationUnit) (string, error) {
	trimmed := strings.TrimSpace(def)
	if typespec.IsDurationLiteral(trimmed) {
		num, name := splitDurationLiteral(trimmed)
		u, ok := typespec.UnitFromName(name)
		if !ok {
			return "", fmt.Errorf("cannot parse duration default %q", def)
		}
		return scaledDuration(num, u)
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return scaledDuration(trimmed, unit)
	}
	return "", fmt.Errorf("cannot parse duration default %q", def)
}

// splitDurationLiteral separates the numeric prefix from the unit name.
func splitDurationLiteral(s string) (string, string) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// scaledDuration renders `num * unit` with fractional values collapsed
// to a nanosecond count.
func scaledDuration(num string, unit model.DurationUnit) (string, error) {
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", fmt.Errorf("cannot parse duration value %q", num)
	}
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d * %s", int64(f), unitExpr(unit)), nil
	}
	nanos := int64(f * float64(unitNanos(unit)))
	return fmt.Sprintf("time.Duration(%d)", nanos), nil
}

func unitNanos(u model.DurationUnit) int64 {
	switch u {
	case model.Nanoseconds:
		return 1
	case model.Microseconds:
		return 1e3
	case model.Milliseconds:
		return 1e6
	case model.Seconds:
		return 1e9
	case model.Minutes:
		return 60 * 1e9
	case model.Hours:
		return 3600 * 1e9
	case model.Days:
		return 24 * 3600 * 1e9
	default:
		return 1e6
	}
}

// unescape reverses the escaping the builder applies to default string
// literals before they are re-quoted for Go source.
func unescape(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}
