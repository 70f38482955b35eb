// Package engine provides the low-level native call layer.
//
// This package wraps the platform loader (dlopen on unix-likes via purego,
// LoadLibrary on windows) and libffi (via the jupiterrider/ffi binding) to
// provide untyped calls through caller-declared signatures.
//
// # Architecture
//
// The engine package provides two concerns:
//
//	Load / Resolve / Unload - native library handles and entry points
//	Descriptor              - a built call interface for one signature
//
// # Call Flow
//
//  1. NewDescriptor() validates the tag sequence and prepares the
//     calling-convention plan (ffi_prep_cif) exactly once
//  2. Resolve() turns a symbol name into a native address
//  3. Descriptor.Call() performs the untyped call with one raw slot
//     address per argument and a return-slot address
//
// The plan keeps pointers to the global ABI type singletons and to the
// descriptor's own argument-type array; neither is ever mutated after
// construction.
//
// # Thread Safety
//
// A Descriptor is immutable and safe for concurrent Call use; library
// handle lifecycle (load/unload) carries no locking and must be
// synchronized by the caller.
//
// Most users should use the runtime package for a simpler API.
// This package is for advanced use cases requiring direct control.
package engine
