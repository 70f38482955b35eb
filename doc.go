// Package ffiruntime provides dynamic invocation of native shared
// libraries through caller-declared signatures.
//
// Nothing is known about a library's entry points at build time: the
// caller opens a library by path, declares each symbol with a return
// tag and ordered argument tags, and invokes it with plain Go values.
// Marshaling in both directions is driven entirely by the declared
// tags.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	ffiruntime/          Root package documentation
//	├── runtime/         High-level API: open, declare, invoke, close
//	├── engine/          Call descriptors, ABI preparation, loader bindings
//	├── types/           Type tags, value coercion, call slot marshaling
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
//	lib, err := runtime.Open("libm.so.6")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	sym, err := lib.Declare(types.Double, "pow", types.Double, types.Double)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sym.Invoke(2.0, 10.0)
//	fmt.Println(result) // 1024
//
// # Type System
//
// Signatures are built from a fixed set of C scalar tags: the integer
// types from char through unsigned long long plus the fixed-width
// int8..uint64 aliases, float, double, size_t, ssize_t, void* and
// char*. Up to 32 arguments per symbol. There is no support for
// structs, unions, arrays, variadic calls, or callbacks.
//
// # Thread Safety
//
// A Library and its Symbols carry no locking. Calls are synchronous
// and block the calling goroutine until the native routine returns.
package ffiruntime
