//go:build darwin || linux || freebsd

package engine

import "github.com/ebitengine/purego"

// dlOpen loads a shared library eagerly (all symbols bound at load time)
// and locally (its symbols are not visible to subsequently loaded
// libraries).
func dlOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlClose(handle uintptr) error {
	return purego.Dlclose(handle)
}
