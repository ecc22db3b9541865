// Package config defines the format-agnostic representation of a parsed
// configuration document, the surface between the HOCON frontend and the
// schema compiler.
//
// A document is a tree of Value nodes, each carrying a typed cty payload,
// the raw source text it was read from, and an Origin with the source
// range and the comment lines that preceded the key. Config wraps an
// object Value and exposes path-based access plus the flat leaf entry
// set the struct builder consumes. Concrete frontends, such as for
// HOCON, are provided in separate packages.
package config
