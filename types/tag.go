package types

// Tag identifies one abstract C type in the declaration protocol.
//
// The enumeration is closed and its numeric order is part of the wire
// protocol shared with descriptors built elsewhere; do not renumber.
type Tag uint8

const (
	Void Tag = iota
	VoidPtr
	CharPtr
	Char
	SChar
	UChar
	Short
	UShort
	Int8
	Uint8
	Int16
	Uint16
	Int
	Uint
	Int32
	Uint32
	Int64
	Uint64
	Long
	ULong
	LongLong
	ULongLong
	Float
	Double
	Size
	SSize

	numTags
)

// MaxArgs is the hard ceiling on argument tags per signature. The bound is
// a protocol parameter shared with descriptors built elsewhere.
const MaxArgs = 32

var tagNames = [...]string{
	Void:      "void",
	VoidPtr:   "void*",
	CharPtr:   "char*",
	Char:      "char",
	SChar:     "signed char",
	UChar:     "unsigned char",
	Short:     "short",
	UShort:    "unsigned short",
	Int8:      "int8",
	Uint8:     "uint8",
	Int16:     "int16",
	Uint16:    "uint16",
	Int:       "int",
	Uint:      "unsigned int",
	Int32:     "int32",
	Uint32:    "uint32",
	Int64:     "int64",
	Uint64:    "uint64",
	Long:      "long",
	ULong:     "unsigned long",
	LongLong:  "long long",
	ULongLong: "unsigned long long",
	Float:     "float",
	Double:    "double",
	Size:      "size_t",
	SSize:     "ssize_t",
}

func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return "unknown"
}

// Valid reports whether t is a member of the fixed enumeration.
func (t Tag) Valid() bool {
	return t < numTags
}

// Resolve maps a protocol type name to its tag.
func Resolve(name string) (Tag, bool) {
	for t, n := range tagNames {
		if n == name {
			return Tag(t), true
		}
	}
	return numTags, false
}

// Names returns the protocol type names in enumeration order.
func Names() []string {
	names := make([]string, len(tagNames))
	copy(names, tagNames[:])
	return names
}

// Class is the marshaling category of a tag.
type Class uint8

const (
	ClassVoid Class = iota
	ClassInteger
	ClassFloat
	ClassPointer
	ClassString
)

func (c Class) String() string {
	switch c {
	case ClassVoid:
		return "void"
	case ClassInteger:
		return "scalar-integer"
	case ClassFloat:
		return "scalar-float"
	case ClassPointer:
		return "pointer"
	case ClassString:
		return "string"
	}
	return "unknown"
}

// Class returns the marshaling category used to select marshal procedures.
func (t Tag) Class() Class {
	switch t {
	case Void:
		return ClassVoid
	case VoidPtr:
		return ClassPointer
	case CharPtr:
		return ClassString
	case Float, Double:
		return ClassFloat
	default:
		return ClassInteger
	}
}

// Signed reports whether an integer tag carries a sign. char maps to the
// signed variant, matching ffi_type_schar in the descriptor layer.
func (t Tag) Signed() bool {
	switch t {
	case Char, SChar, Short, Int8, Int16, Int, Int32, Int64, Long, LongLong, SSize:
		return true
	}
	return false
}

// Pointer is the caller-visible opaque handle for a native address.
// It carries no type information beyond "pointer".
type Pointer uintptr
