// internal/hocon/doc.go

/*
Package hocon is the HOCON frontend of the compiler. It parses the
subset of HOCON that schema documents use — `#`/`//` comments, optional
root braces, nested objects and dotted-path keys, `=`/`:` separators,
quoted and unquoted strings, numbers, booleans, null, and arrays — into
the format-agnostic config.Value tree.

Unlike general-purpose HOCON libraries, the parser keeps per-key origin
metadata: the source range of every value and the raw comment lines
attached to it, both the contiguous block preceding the key and a
trailing comment on the same line. The schema compiler reads its
`@define`/`@optional` annotations from exactly these comments.

Substitutions, includes, value concatenation and multi-line strings are
not supported; the compiler consumes fully resolved documents.
*/
package hocon
