//go:build !windows

package types

// LP64: long is pointer-sized on the unix targets purego supports.
const longIs64 = true
