//go:build windows

package engine

import "golang.org/x/sys/windows"

func dlOpen(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlClose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
