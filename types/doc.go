// Package types is the type registry for the FFI bridge: a closed, ordered
// enumeration of abstract C type tags plus the marshal procedures that move
// caller values into raw argument slots and raw return slots back into
// caller values.
//
// The enumeration order and the 32-argument ceiling are protocol constants
// shared with the declaration surface; both are fixed.
//
// Marshaling rules per category:
//
//	Category        In                          Out
//	─────────────────────────────────────────────────────────────
//	scalar-integer  any Go integer (wraps)      int64 / uint64
//	scalar-float    any Go numeric              float32 / float64
//	pointer         nil, Pointer, uintptr       Pointer or nil
//	string          string or nil               copied string or nil
//	void            (not allowed)               nil
//
// Integer marshaling never range-checks: out-of-range values wrap per
// native truncation, mirroring C integer conversion. String returns are
// copied eagerly; the native memory is not assumed to remain valid after
// the call returns.
package types
