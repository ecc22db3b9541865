// Package app wires the compiler pipeline together: it builds the
// application logger, parses the schema document through the HOCON
// frontend, runs the model build, reports warnings, and hands the
// result to the generator or dumps it as JSON.
package app
