// internal/model/types.go
package model

import "fmt"

// BasicKind enumerates the atomic types of the schema language.
type BasicKind int

const (
	StringT BasicKind = iota
	BoolT
	IntT
	LongT
	DoubleT
	DurationT
	SizeT
)

// String returns the canonical upper-case name of the kind.
func (k BasicKind) String() string {
	switch k {
	case StringT:
		return "STRING"
	case BoolT:
		return "BOOLEAN"
	case IntT:
		return "INTEGER"
	case LongT:
		return "LONG"
	case DoubleT:
		return "DOUBLE"
	case DurationT:
		return "DURATION"
	case SizeT:
		return "SIZE"
	default:
		return fmt.Sprintf("BasicKind(%d)", int(k))
	}
}

// DurationUnit is the time unit a DURATION field is expressed in.
type DurationUnit int

const (
	Nanoseconds DurationUnit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

// String returns the short unit suffix, e.g. "ms".
func (u DurationUnit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	case Hours:
		return "h"
	case Days:
		return "d"
	default:
		return fmt.Sprintf("DurationUnit(%d)", int(u))
	}
}

// Type is the sealed sum of IR types. Exactly the types in this file
// implement it; consumers switch exhaustively over the variants.
type Type interface {
	isType()
}

// BasicType is an atomic type. Unit is meaningful only when Kind is
// DurationT; its zero value is Nanoseconds, so duration types are built
// with Duration and an explicit unit.
type BasicType struct {
	Kind BasicKind
	Unit DurationUnit
}

func (BasicType) isType() {}

// String renders the type for diagnostics, e.g. `DURATION(s)`.
func (t BasicType) String() string {
	if t.Kind == DurationT {
		return fmt.Sprintf("DURATION(%s)", t.Unit)
	}
	return t.Kind.String()
}

// Basic is shorthand for a BasicType without a duration unit.
func Basic(kind BasicKind) BasicType {
	return BasicType{Kind: kind}
}

// Duration builds the DURATION basic type with an explicit unit.
func Duration(unit DurationUnit) BasicType {
	return BasicType{Kind: DurationT, Unit: unit}
}

// ObjectType is a concrete object with ordered, named members.
type ObjectType struct {
	Members *Members
}

func (*ObjectType) isType() {}

// AbstractObjectType is a parent-class object introduced by
// `@define abstract`. It is never instantiated at the root; concrete
// extenders reference its members through AnnType.ParentClassMembers.
type AbstractObjectType struct {
	Members *Members
}

func (*AbstractObjectType) isType() {}

// EnumObjectType is a closed set of string values introduced by
// `@define enum`.
type EnumObjectType struct {
	Values []string
}

func (*EnumObjectType) isType() {}

// ListType is a homogeneous list; the element type is decided by the
// first element of the literal.
type ListType struct {
	Elem Type
}

func (*ListType) isType() {}

// AnnType annotates a member's type with everything the emitters need:
// optionality, the default literal, the raw comment block, and, for
// members extending an abstract define, the parent's member view.
type AnnType struct {
	Type               Type
	Optional           bool
	Default            *string
	Comments           *string
	ParentClassMembers *Members
}

// Members is an ordered mapping from member name to its annotated type.
// Iteration order is insertion order, which the builder arranges to be
// the document order of the schema (defines first).
type Members struct {
	names  []string
	byName map[string]*AnnType
}

// NewMembers creates an empty member mapping.
func NewMembers() *Members {
	return &Members{byName: make(map[string]*AnnType)}
}

// Add inserts or replaces a member, keeping first insertion order.
func (m *Members) Add(name string, t *AnnType) {
	if _, ok := m.byName[name]; !ok {
		m.names = append(m.names, name)
	}
	m.byName[name] = t
}

// Names returns the member names in order. Callers must not mutate the
// returned slice.
func (m *Members) Names() []string {
	return m.names
}

// Get returns the named member, or nil.
func (m *Members) Get(name string) *AnnType {
	if m == nil {
		return nil
	}
	return m.byName[name]
}

// Len returns the number of members.
func (m *Members) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}
