// internal/keys/doc.go

/*
Package keys provides the dotted-path vocabulary used throughout the
compiler: splitting a path into its parent and simple (last) segment,
and the structured Key type for code that needs to walk segments.

Segments quoted in the source (e.g. `"a.b"`) are treated as opaque: a
dot inside double quotes never acts as a separator.
*/
package keys
