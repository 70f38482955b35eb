package types

import "unsafe"

// Slot is the storage for one marshaled argument. It generalizes the raw
// scalar union of the C world into one field per native width; marshaling
// writes exactly one field and hands back its address for the untyped call.
//
// A Slot must stay reachable until the native call returns: for char*
// arguments it pins the NUL-terminated copy of the caller's string.
type Slot struct {
	pin []byte
	ptr uintptr
	i64 int64
	u64 uint64
	f64 float64
	i32 int32
	u32 uint32
	f32 float32
	i16 int16
	u16 uint16
	i8  int8
	u8  uint8
}

// coerceInt converts any Go integer, or a float holding an exactly integral
// value, to a 64-bit pattern. Out-of-range values are not rejected here;
// they wrap when truncated to the tag's native width.
func coerceInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uintptr:
		return int64(n), true
	case float32:
		if float32(int64(n)) == n {
			return int64(n), true
		}
	case float64:
		if float64(int64(n)) == n {
			return int64(n), true
		}
	}
	return 0, false
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// MarshalIn converts a caller value into s according to tag and returns the
// address of the written field, suitable as one entry of the untyped call's
// argument vector. It reports false when the value cannot be coerced.
// void is never a valid argument tag.
func MarshalIn(tag Tag, v any, s *Slot) (unsafe.Pointer, bool) {
	switch tag {
	case Void:
		return nil, false

	case VoidPtr:
		switch p := v.(type) {
		case nil:
			s.ptr = 0
		case Pointer:
			s.ptr = uintptr(p)
		case uintptr:
			s.ptr = p
		case unsafe.Pointer:
			s.ptr = uintptr(p)
		default:
			return nil, false
		}
		return unsafe.Pointer(&s.ptr), true

	case CharPtr:
		switch str := v.(type) {
		case nil:
			s.ptr = 0
		case string:
			s.pin = append([]byte(str), 0)
			s.ptr = uintptr(unsafe.Pointer(&s.pin[0]))
		default:
			return nil, false
		}
		return unsafe.Pointer(&s.ptr), true

	case Float:
		f, ok := coerceFloat(v)
		if !ok {
			return nil, false
		}
		s.f32 = float32(f)
		return unsafe.Pointer(&s.f32), true

	case Double:
		f, ok := coerceFloat(v)
		if !ok {
			return nil, false
		}
		s.f64 = f
		return unsafe.Pointer(&s.f64), true
	}

	n, ok := coerceInt(v)
	if !ok {
		return nil, false
	}

	switch tag {
	case Char, SChar, Int8:
		s.i8 = int8(n)
		return unsafe.Pointer(&s.i8), true
	case UChar, Uint8:
		s.u8 = uint8(n)
		return unsafe.Pointer(&s.u8), true
	case Short, Int16:
		s.i16 = int16(n)
		return unsafe.Pointer(&s.i16), true
	case UShort, Uint16:
		s.u16 = uint16(n)
		return unsafe.Pointer(&s.u16), true
	case Int, Int32:
		s.i32 = int32(n)
		return unsafe.Pointer(&s.i32), true
	case Uint, Uint32:
		s.u32 = uint32(n)
		return unsafe.Pointer(&s.u32), true
	case Int64, LongLong, SSize:
		s.i64 = n
		return unsafe.Pointer(&s.i64), true
	case Uint64, ULongLong, Size:
		s.u64 = uint64(n)
		return unsafe.Pointer(&s.u64), true
	case Long:
		if longIs64 {
			s.i64 = n
			return unsafe.Pointer(&s.i64), true
		}
		s.i32 = int32(n)
		return unsafe.Pointer(&s.i32), true
	case ULong:
		if longIs64 {
			s.u64 = uint64(n)
			return unsafe.Pointer(&s.u64), true
		}
		s.u32 = uint32(n)
		return unsafe.Pointer(&s.u32), true
	}

	return nil, false
}

// RetSlot receives the raw native return value. Integer returns narrower
// than a word arrive widened by the calling convention, so the integer view
// is always a full word; floats and pointers are written at exact width.
type RetSlot struct {
	word uint64
	f64  float64
	ptr  uintptr
	f32  float32
}

// Pointer returns the address the untyped call should write the return
// value to, or nil for void.
func (r *RetSlot) Pointer(tag Tag) unsafe.Pointer {
	switch tag.Class() {
	case ClassVoid:
		return nil
	case ClassFloat:
		if tag == Float {
			return unsafe.Pointer(&r.f32)
		}
		return unsafe.Pointer(&r.f64)
	case ClassPointer, ClassString:
		return unsafe.Pointer(&r.ptr)
	default:
		return unsafe.Pointer(&r.word)
	}
}

// MarshalOut converts the raw return slot into a caller-visible value:
// int64/uint64 for integer tags (sign- or zero-extended per tag), float32
// or float64 at native width, Pointer or nil for void*, and an eagerly
// copied string or nil for char*. void yields nil. It reports false for a
// tag with no marshal procedure, which is unreachable for valid tags.
func MarshalOut(tag Tag, r *RetSlot) (any, bool) {
	switch tag {
	case Void:
		return nil, true
	case VoidPtr:
		if r.ptr == 0 {
			return nil, true
		}
		return Pointer(r.ptr), true
	case CharPtr:
		if r.ptr == 0 {
			return nil, true
		}
		return goString(r.ptr), true
	case Float:
		return r.f32, true
	case Double:
		return r.f64, true
	case Char, SChar, Int8:
		return int64(int8(r.word)), true
	case UChar, Uint8:
		return uint64(uint8(r.word)), true
	case Short, Int16:
		return int64(int16(r.word)), true
	case UShort, Uint16:
		return uint64(uint16(r.word)), true
	case Int, Int32:
		return int64(int32(r.word)), true
	case Uint, Uint32:
		return uint64(uint32(r.word)), true
	case Int64, LongLong, SSize:
		return int64(r.word), true
	case Uint64, ULongLong, Size:
		return r.word, true
	case Long:
		if longIs64 {
			return int64(r.word), true
		}
		return int64(int32(r.word)), true
	case ULong:
		if longIs64 {
			return r.word, true
		}
		return uint64(uint32(r.word)), true
	}
	return nil, false
}

// goString copies a NUL-terminated native string into Go memory. The copy
// is eager; the native pointer is not assumed to remain valid afterwards.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
