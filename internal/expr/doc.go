// Package expr provides the expression capability used by the case compiler.
//
// The compiler only depends on the Compiler and Evaluable interfaces: it
// compiles rule conditions, listener expressions and field expressions once,
// at compile time, and hands the Evaluable to the runtime, which evaluates it
// later against the variables of a live case execution.
//
// HCLCompiler is the default implementation. Expression text is parsed as an
// HCL template, so the usual case expression notation works unchanged:
//
//	${amount > 1000}          evaluates to a bool
//	${upper(customer.name)}   evaluates to a string
//	aPriority                 a literal string
//	Review of ${caseId}       a string with an interpolation
//
// A template consisting of a single interpolation yields the raw value of
// the wrapped expression rather than its string form.
package expr
