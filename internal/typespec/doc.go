// internal/typespec/doc.go

/*
Package typespec parses the lightweight type DSL carried by leaf string
values of a schema document:

	spec      := typePart [ "|" default ]
	typePart  := baseSpec [ "?" ]
	baseSpec  := type [ ":" qualifier ]
	type      := "string" | "boolean" | "int" | "long" | "double" |
	             "duration" | "size"

The qualifier is only meaningful for duration, where it names the unit
("seconds", "ms", ...). Two literal forms are also accepted bare:
duration literals such as `10ms` or `5 seconds`, and size literals such
as `4KiB`, each implying the corresponding type with itself as default.
*/
package typespec
