package engine

// Load opens the shared library at path and returns the native handle.
func Load(path string) (uintptr, error) {
	handle, err := dlOpen(path)
	if err != nil {
		return 0, err
	}
	debugf("loaded %s handle=%#x", path, handle)
	return handle, nil
}

// Resolve looks up an entry point by name in an open library. The error
// carries the native resolver's text.
func Resolve(handle uintptr, name string) (uintptr, error) {
	addr, err := dlSym(handle, name)
	if err != nil {
		return 0, err
	}
	debugf("resolved %s addr=%#x", name, addr)
	return addr, nil
}

// Unload closes a native library handle.
func Unload(handle uintptr) error {
	debugf("unloading handle=%#x", handle)
	return dlClose(handle)
}
