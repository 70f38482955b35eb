// Package errors provides structured error types for the ffi-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: symbol name, type tag, argument position,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInvoke, errors.KindArgumentType).
//		Symbol("strlen").
//		Arg(1).
//		Tag("char*").
//		Detail("char* requires a string or nil").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ArgumentCount("add", 2, 3)
//	err := errors.NameResolution("no_such_symbol", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
