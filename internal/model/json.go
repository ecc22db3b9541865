// internal/model/json.go
package model

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// JSON rendering of the IR, used by the CLI's --dump-model flag. Member
// order is document order, so Members marshals by hand instead of going
// through a Go map.

// MarshalJSON implements json.Marshaler.
func (t BasicType) MarshalJSON() ([]byte, error) {
	if t.Kind == DurationT {
		return json.Marshal(struct {
			Basic string `json:"basic"`
			Unit  string `json:"unit"`
		}{t.Kind.String(), t.Unit.String()})
	}
	return json.Marshal(struct {
		Basic string `json:"basic"`
	}{t.Kind.String()})
}

// MarshalJSON implements json.Marshaler.
func (t *ObjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Object *Members `json:"object"`
	}{t.Members})
}

// MarshalJSON implements json.Marshaler.
func (t *AbstractObjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Abstract *Members `json:"abstract"`
	}{t.Members})
}

// MarshalJSON implements json.Marshaler.
func (t *EnumObjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Enum []string `json:"enum"`
	}{t.Values})
}

// MarshalJSON implements json.Marshaler.
func (t *ListType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		List Type `json:"list"`
	}{t.Elem})
}

// MarshalJSON implements json.Marshaler.
func (a *AnnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type               Type     `json:"type"`
		Optional           bool     `json:"optional"`
		Default            *string  `json:"default,omitempty"`
		Comments           *string  `json:"comments,omitempty"`
		ParentClassMembers *Members `json:"parentClassMembers,omitempty"`
	}{a.Type, a.Optional, a.Default, a.Comments, a.ParentClassMembers})
}

// MarshalJSON implements json.Marshaler, emitting members in insertion
// order.
func (m *Members) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (w Warning) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Line    int    `json:"line"`
		Source  string `json:"source"`
		Message string `json:"message"`
	}{w.Line, w.Source, w.Message()})
}

// MarshalJSON implements json.Marshaler.
func (r *BuildResult) MarshalJSON() ([]byte, error) {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []Warning{}
	}
	return json.Marshal(struct {
		Root     *ObjectType `json:"objectType"`
		Warnings []Warning   `json:"warnings"`
	}{r.Root, warnings})
}
