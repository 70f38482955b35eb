package runtime

import (
	"runtime"
	"unsafe"

	"github.com/wippyai/ffi-runtime/errors"
	"github.com/wippyai/ffi-runtime/types"
)

// Invoke calls a declared symbol by name. See Symbol.Invoke.
func (l *Library) Invoke(name string, args ...any) (any, error) {
	if l.Closed() {
		return nil, errors.AlreadyClosed(errors.PhaseInvoke)
	}
	sym, ok := l.Lookup(name)
	if !ok {
		return nil, errors.New(errors.PhaseInvoke, errors.KindNameResolution).
			Symbol(name).
			Detail("symbol not declared").
			Build()
	}
	return sym.Invoke(args...)
}

// Invoke marshals args against the declared signature, performs the
// native call, and marshals the return value back. The call is
// synchronous: it blocks until the native routine returns, with no
// timeout or cancellation. No native call is made if validation of the
// argument count or any argument value fails.
func (s *Symbol) Invoke(args ...any) (any, error) {
	if s.lib == nil || s.lib.Closed() {
		return nil, errors.AlreadyClosed(errors.PhaseInvoke)
	}

	tags := s.desc.Args()
	if len(args) != len(tags) {
		return nil, errors.ArgumentCount(s.name, len(tags), len(args))
	}

	slots := make([]types.Slot, len(args))
	argPtrs := make([]unsafe.Pointer, len(args))
	for i, v := range args {
		p, ok := types.MarshalIn(tags[i], v, &slots[i])
		if !ok {
			return nil, errors.ArgumentType(i+1, tags[i].String(), v)
		}
		argPtrs[i] = p
	}

	var ret types.RetSlot
	s.desc.Call(s.addr, ret.Pointer(s.desc.Ret()), argPtrs)

	out, ok := types.MarshalOut(s.desc.Ret(), &ret)
	// Pinned argument storage must survive the call and the eager copy of
	// a returned string, which may point into an argument buffer.
	runtime.KeepAlive(slots)
	if !ok {
		return nil, errors.UnsupportedReturn(s.name, s.desc.Ret().String())
	}
	return out, nil
}
