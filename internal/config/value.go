// internal/config/value.go
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	NullKind ValueKind = iota
	StringKind
	BoolKind
	NumberKind
	ListKind
	ObjectKind
)

// String returns the kind's name for diagnostics and logging.
func (k ValueKind) String() string {
	switch k {
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case BoolKind:
		return "boolean"
	case NumberKind:
		return "number"
	case ListKind:
		return "list"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Origin records where a value came from: its source range and the raw
// comment lines (delimiters stripped) that immediately preceded its key.
type Origin struct {
	Range    hcl.Range
	Comments []string
}

// Line returns the 1-based line the value starts on.
func (o Origin) Line() int {
	return o.Range.Start.Line
}

// Value is one node of a parsed configuration document.
type Value struct {
	kind   ValueKind
	val    cty.Value // scalar payload; cty.NilVal for lists and objects
	raw    string    // raw source text of a scalar token
	elems  []*Value  // list elements, in document order
	names  []string  // object member names, in document order
	byName map[string]*Value
	origin Origin
}

// NewString builds a string leaf.
func NewString(s, raw string, origin Origin) *Value {
	return &Value{kind: StringKind, val: cty.StringVal(s), raw: raw, origin: origin}
}

// NewBool builds a boolean leaf.
func NewBool(b bool, raw string, origin Origin) *Value {
	return &Value{kind: BoolKind, val: cty.BoolVal(b), raw: raw, origin: origin}
}

// NewNumber builds a numeric leaf. The raw literal text is authoritative
// for narrowing decisions downstream; the cty payload exists for typed
// consumers.
func NewNumber(n cty.Value, raw string, origin Origin) *Value {
	return &Value{kind: NumberKind, val: n, raw: raw, origin: origin}
}

// NewNull builds a null leaf.
func NewNull(origin Origin) *Value {
	return &Value{kind: NullKind, val: cty.NullVal(cty.DynamicPseudoType), raw: "null", origin: origin}
}

// NewList builds a list node from its elements.
func NewList(elems []*Value, origin Origin) *Value {
	return &Value{kind: ListKind, elems: elems, origin: origin}
}

// NewObject builds an empty object node; members are added with SetMember.
func NewObject(origin Origin) *Value {
	return &Value{kind: ObjectKind, byName: make(map[string]*Value), origin: origin}
}

// Kind returns the value's kind.
func (v *Value) Kind() ValueKind { return v.kind }

// Origin returns the value's origin metadata.
func (v *Value) Origin() Origin { return v.origin }

// SetOrigin replaces the origin. The frontend uses it to re-home comment
// blocks onto values created before their comments were known.
func (v *Value) SetOrigin(o Origin) { v.origin = o }

// Cty returns the typed payload. For lists and objects the payload is
// assembled on demand from the children.
func (v *Value) Cty() cty.Value {
	switch v.kind {
	case ListKind:
		if len(v.elems) == 0 {
			return cty.EmptyTupleVal
		}
		vals := make([]cty.Value, len(v.elems))
		for i, e := range v.elems {
			vals[i] = e.Cty()
		}
		return cty.TupleVal(vals)
	case ObjectKind:
		if len(v.names) == 0 {
			return cty.EmptyObjectVal
		}
		vals := make(map[string]cty.Value, len(v.names))
		for _, n := range v.names {
			vals[n] = v.byName[n].Cty()
		}
		return cty.ObjectVal(vals)
	default:
		return v.val
	}
}

// Unwrapped renders the value the way its native form prints: string
// content without quotes, `true`/`false`, the numeric literal as written,
// and bracketed/braced children for lists and objects.
func (v *Value) Unwrapped() string {
	switch v.kind {
	case StringKind:
		return v.val.AsString()
	case BoolKind:
		if v.val.True() {
			return "true"
		}
		return "false"
	case NumberKind:
		return v.raw
	case NullKind:
		return "null"
	case ListKind:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.Unwrapped()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ObjectKind:
		parts := make([]string, len(v.names))
		for i, n := range v.names {
			parts[i] = n + "=" + v.byName[n].Unwrapped()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// Render produces the compact rendering used in warning messages, e.g.
// `[int,string]` for a two-element list of type specs.
func (v *Value) Render() string {
	switch v.kind {
	case ListKind:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.Render()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ObjectKind:
		parts := make([]string, len(v.names))
		for i, n := range v.names {
			parts[i] = n + "=" + v.byName[n].Render()
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return v.Unwrapped()
	}
}

// Elements returns a list's elements in document order.
func (v *Value) Elements() []*Value { return v.elems }

// MemberNames returns an object's member names in document order.
func (v *Value) MemberNames() []string { return v.names }

// Member returns the named member of an object, or nil.
func (v *Value) Member(name string) *Value {
	if v.byName == nil {
		return nil
	}
	return v.byName[name]
}

// SetMember adds or replaces a member of an object node, keeping first
// insertion order on replacement.
func (v *Value) SetMember(name string, member *Value) {
	if _, ok := v.byName[name]; !ok {
		v.names = append(v.names, name)
	}
	v.byName[name] = member
}
