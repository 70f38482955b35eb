//go:build windows

package engine

import "github.com/jupiterrider/ffi"

// LLP64: long stays 32-bit on 64-bit windows.
var (
	typeLong  = &ffi.TypeSint32
	typeULong = &ffi.TypeUint32
)
