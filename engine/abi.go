package engine

import (
	"unsafe"

	"github.com/jupiterrider/ffi"

	"github.com/wippyai/ffi-runtime/errors"
	"github.com/wippyai/ffi-runtime/types"
)

// size_t and ssize_t follow the platform pointer width.
var typeSize, typeSSize = sizeTypes()

func sizeTypes() (*ffi.Type, *ffi.Type) {
	if unsafe.Sizeof(uintptr(0)) == 4 {
		return &ffi.TypeUint32, &ffi.TypeSint32
	}
	return &ffi.TypeUint64, &ffi.TypeSint64
}

// ffiType maps a type tag to its ABI descriptor. The descriptors are
// package-level singletons shared globally and never mutated, so every
// call-interface built from them stays valid for the process lifetime.
func ffiType(tag types.Tag) *ffi.Type {
	switch tag {
	case types.Void:
		return &ffi.TypeVoid
	case types.VoidPtr, types.CharPtr:
		return &ffi.TypePointer
	case types.Char, types.SChar, types.Int8:
		return &ffi.TypeSint8
	case types.UChar, types.Uint8:
		return &ffi.TypeUint8
	case types.Short, types.Int16:
		return &ffi.TypeSint16
	case types.UShort, types.Uint16:
		return &ffi.TypeUint16
	case types.Int, types.Int32:
		return &ffi.TypeSint32
	case types.Uint, types.Uint32:
		return &ffi.TypeUint32
	case types.Int64, types.LongLong:
		return &ffi.TypeSint64
	case types.Uint64, types.ULongLong:
		return &ffi.TypeUint64
	case types.Long:
		return typeLong
	case types.ULong:
		return typeULong
	case types.Float:
		return &ffi.TypeFloat
	case types.Double:
		return &ffi.TypeDouble
	case types.Size:
		return typeSize
	case types.SSize:
		return typeSSize
	}
	return nil
}

func statusMessage(status ffi.Status) string {
	switch status {
	case ffi.BadTypedef:
		return "bad type definition"
	case ffi.BadAbi:
		return "unsupported ABI"
	case ffi.BadArgType:
		return "invalid argument type"
	default:
		return "unknown status"
	}
}

// Descriptor is a built call interface for one declared signature: the
// return tag, the ordered argument tags, and the calling-convention plan
// prepared once at construction. It is immutable after NewDescriptor
// returns; the argument type array shares the descriptor's lifetime, as
// the prepared plan keeps pointers into it.
type Descriptor struct {
	ret      types.Tag
	args     []types.Tag
	argTypes []*ffi.Type
	cif      ffi.Cif
}

// NewDescriptor validates the declared tags and prepares the call
// interface for the platform's default calling convention. Building is
// deterministic: equal tag sequences always produce an identical plan.
func NewDescriptor(ret types.Tag, args []types.Tag) (*Descriptor, error) {
	if len(args) > types.MaxArgs {
		return nil, errors.TooManyArguments(len(args), types.MaxArgs)
	}
	if !ret.Valid() {
		return nil, errors.UnknownType(errors.PhaseBuild, ret.String())
	}

	d := &Descriptor{
		ret:      ret,
		args:     append([]types.Tag(nil), args...),
		argTypes: make([]*ffi.Type, len(args)),
	}
	for i, arg := range args {
		if !arg.Valid() {
			return nil, errors.UnknownType(errors.PhaseBuild, arg.String())
		}
		if arg == types.Void {
			return nil, errors.VoidArgument(i + 1)
		}
		d.argTypes[i] = ffiType(arg)
	}

	status := ffi.PrepCif(&d.cif, ffi.DefaultAbi, uint32(len(args)), ffiType(ret), d.argTypes...)
	if status != ffi.OK {
		return nil, errors.AbiPreparation(statusMessage(status))
	}

	debugf("prepared cif ret=%s nargs=%d", ret, len(args))
	return d, nil
}

// Ret returns the declared return tag.
func (d *Descriptor) Ret() types.Tag {
	return d.ret
}

// Args returns the declared argument tags in order. The slice is shared;
// callers must not modify it.
func (d *Descriptor) Args() []types.Tag {
	return d.args
}

// NArgs returns the declared argument count.
func (d *Descriptor) NArgs() int {
	return len(d.args)
}

// Call performs the untyped native call through the prepared interface.
// ret must point at storage laid out for the return tag (nil for void)
// and args must hold one slot address per declared argument. The call
// blocks until the native routine returns.
func (d *Descriptor) Call(fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) {
	ffi.Call(&d.cif, fn, ret, args...)
}
