// Package listener defines the compiled form of case execution listeners and
// variable listeners.
//
// A declaration names one of three delegation strategies:
//
//   - ClassDelegate keeps a type name and field declarations. The object is
//     created through an Instantiator when the listener is invoked, never at
//     compile time.
//   - DelegateExpression keeps a compiled expression that must evaluate to an
//     object implementing CaseExecutionListener or VariableListener. Objects
//     are handed to expressions as capsule values, see BeanVal.
//   - ExpressionListener keeps a compiled expression that is the listener body.
//
// The compiler only builds these values; Notify is called by the runtime.
package listener
