/*
Package builder turns a parsed configuration document into the typed
intermediate representation of package model.

The build runs in two stages per object. First the flat leaf entry set
is folded back into a structural tree (struct builder), and each child
is enriched with the `@define` directive from its preceding comments
(annotation reader). Then the children are visited in document order
with define-carrying members moved to the front, so a later sibling can
reference an earlier `@define` by name. Each visit infers the child's
type: leaf strings go through define resolution and the type-spec DSL,
numbers through the narrowing rule, lists through first-element typing,
and nested objects recurse with an extended namespace scope.

Warnings accumulate in the Builder and come back sorted by line inside
the BuildResult; errors abort the build immediately.
*/
package builder
