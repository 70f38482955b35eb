// Package runtime provides the high-level API for calling native shared
// libraries through caller-declared signatures.
//
// # Quick Start
//
//	lib, err := runtime.Open("libm.so.6")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	// Declare a signature: return tag, symbol name, argument tags
//	_, err = lib.Declare(types.Double, "pow", types.Double, types.Double)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Invoke by name
//	result, err := lib.Invoke("pow", 2.0, 10.0)
//	fmt.Println(result) // 1024
//
// # Declaration
//
// Nothing is known about a library's entry points at build time; every
// signature is declared by the caller as a return tag plus up to 32
// ordered argument tags drawn from the fixed set in the types package.
// Declared symbols form an append-only table per library; re-declaring
// a name is rejected.
//
// # Value Mapping
//
// Caller values are coerced per declared tag:
//
//	Tag class       Accepts                     Returns
//	──────────────────────────────────────────────────────────
//	integer tags    any Go integer (wraps)      int64 / uint64
//	float, double   any Go numeric              float32 / float64
//	void*           nil, types.Pointer          types.Pointer or nil
//	char*           string or nil               copied string or nil
//	void            -                           nil
//
// A char* return is copied eagerly up to its terminator; a null native
// pointer becomes nil, not an empty string.
//
// # Lifecycle
//
// Close releases every declared symbol and unloads the handle. It is
// idempotent; any other operation on a closed library fails with
// AlreadyClosed.
//
// # Thread Safety
//
// A Library and its Symbols assume one logical caller at a time and
// carry no locking. Invocation blocks the calling goroutine until the
// native routine returns; a hung native call hangs that goroutine, with
// no cancellation mechanism.
package runtime
