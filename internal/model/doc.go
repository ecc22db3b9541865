// Package model defines the intermediate representation the schema
// compiler produces: the Type sum (basic types, objects, abstract
// objects, enumerations, lists), the AnnType field annotation wrapping a
// type with optionality, default, comments and the parent-class member
// view, the DefineCase tags read from `@define` comments, the warning
// set, and the BuildResult handed to emitters.
//
// Everything here is pure data. The traversal that produces it lives in
// the builder package, so emitters and tools can depend on the IR
// without pulling in the compiler pipeline.
//
// Every IR node is immutable once returned by a build; consumers may
// share them freely across goroutines.
package model
