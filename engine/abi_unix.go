//go:build !windows

package engine

import "github.com/jupiterrider/ffi"

// LP64: long is 64-bit on the unix targets purego supports.
var (
	typeLong  = &ffi.TypeSint64
	typeULong = &ffi.TypeUint64
)
