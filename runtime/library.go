package runtime

import (
	"github.com/wippyai/ffi-runtime/engine"
	"github.com/wippyai/ffi-runtime/errors"
)

// Library is one opened native library together with the symbols declared
// against it. The symbol list is append-only while the library is open;
// ownership is tree-shaped (Library owns Symbols, each Symbol owns its
// descriptor), so closing releases everything.
//
// Library carries no locking. A single logical caller at a time is
// assumed; multi-threaded hosts must synchronize externally.
type Library struct {
	path    string
	symbols []*Symbol
	handle  uintptr
}

// Open loads the shared library at path. Loading is eager (all entry
// points bound immediately) and local (symbols are not made visible to
// sibling loads). The path is kept for diagnostics.
func Open(path string) (*Library, error) {
	handle, err := engine.Load(path)
	if err != nil {
		return nil, errors.OpenFailed(path, err)
	}
	return &Library{handle: handle, path: path}, nil
}

// Path returns the path the library was opened with, or the empty string
// after close.
func (l *Library) Path() string {
	return l.path
}

// Closed reports whether the library has been closed.
func (l *Library) Closed() bool {
	return l.handle == 0
}

// Close releases every declared symbol and unloads the native handle.
// It is idempotent: closing an already closed library is a no-op success.
// If the native unload reports an error it is returned as CloseFailed,
// but the in-memory state is released regardless; the library is
// logically closed either way and the failure is not retried.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}

	handle := l.handle
	path := l.path
	l.handle = 0
	l.path = ""
	for _, sym := range l.symbols {
		sym.lib = nil
	}
	l.symbols = nil

	if err := engine.Unload(handle); err != nil {
		return errors.CloseFailed(path, err)
	}
	return nil
}
