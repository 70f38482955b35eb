package runtime

import (
	"github.com/wippyai/ffi-runtime/engine"
	"github.com/wippyai/ffi-runtime/errors"
	"github.com/wippyai/ffi-runtime/types"
)

// Symbol is one resolved entry point: its name, native address, and the
// call descriptor built from the declared signature. A Symbol lives for
// the lifetime of its owning Library.
type Symbol struct {
	lib  *Library
	desc *engine.Descriptor
	name string
	addr uintptr
}

// Name returns the declared symbol name.
func (s *Symbol) Name() string {
	return s.name
}

// Addr returns the resolved native address as an opaque handle.
func (s *Symbol) Addr() types.Pointer {
	return types.Pointer(s.addr)
}

// Ret returns the declared return tag.
func (s *Symbol) Ret() types.Tag {
	return s.desc.Ret()
}

// Args returns the declared argument tags in order.
func (s *Symbol) Args() []types.Tag {
	return s.desc.Args()
}

// Declare validates the signature, builds its call descriptor, resolves
// name against the library, and appends the new symbol to the table.
// Tag validation happens before any native resolution is attempted; a
// failure at any step leaves the table untouched.
//
// Re-declaring a name is rejected with DuplicateSymbol rather than
// shadowing the earlier entry.
func (l *Library) Declare(ret types.Tag, name string, args ...types.Tag) (*Symbol, error) {
	if l.Closed() {
		return nil, errors.AlreadyClosed(errors.PhaseDeclare)
	}
	if _, ok := l.Lookup(name); ok {
		return nil, errors.DuplicateSymbol(name)
	}

	desc, err := engine.NewDescriptor(ret, args)
	if err != nil {
		return nil, err
	}

	addr, err := engine.Resolve(l.handle, name)
	if err != nil {
		return nil, errors.NameResolution(name, err)
	}

	sym := &Symbol{
		lib:  l,
		desc: desc,
		name: name,
		addr: addr,
	}
	l.symbols = append(l.symbols, sym)
	return sym, nil
}

// Lookup scans the table in declaration order and returns the first
// symbol with an exactly matching name.
func (l *Library) Lookup(name string) (*Symbol, bool) {
	for _, sym := range l.symbols {
		if sym.name == name {
			return sym, true
		}
	}
	return nil, false
}

// Symbols returns the declared names in declaration order.
func (l *Library) Symbols() []string {
	names := make([]string, len(l.symbols))
	for i, sym := range l.symbols {
		names[i] = sym.name
	}
	return names
}
