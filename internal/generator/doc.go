/*
Package generator emits the typed Go accessor layer for a built model:
one struct per object with typed fields, a constructor per struct that
reads values from a decoded configuration map applying defaults and
reporting missing required keys, a named string type with validation per
enumeration, and self-contained conversion helpers, so generated files
depend only on the standard library.

Members inherited through `@define extends` are flattened into the
extender's struct. Optional scalar and enum fields without a default
become pointers; optional object and list fields stay values and are
left zero when the key is absent. Fields with a default get the default
applied when the key is absent.

Rendering goes through an embedded text/template and gofmt; when
formatting fails the raw output is still written so it can be inspected.
*/
package generator
