//go:build windows

package types

// LLP64: long stays 32-bit on 64-bit windows.
const longIs64 = false
