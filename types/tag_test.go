package types

import "testing"

// The numeric order of the enumeration is a protocol constant. This pins
// every value so an accidental renumbering fails loudly.
func TestTag_Order(t *testing.T) {
	want := []struct {
		tag  Tag
		pos  uint8
		name string
	}{
		{Void, 0, "void"},
		{VoidPtr, 1, "void*"},
		{CharPtr, 2, "char*"},
		{Char, 3, "char"},
		{SChar, 4, "signed char"},
		{UChar, 5, "unsigned char"},
		{Short, 6, "short"},
		{UShort, 7, "unsigned short"},
		{Int8, 8, "int8"},
		{Uint8, 9, "uint8"},
		{Int16, 10, "int16"},
		{Uint16, 11, "uint16"},
		{Int, 12, "int"},
		{Uint, 13, "unsigned int"},
		{Int32, 14, "int32"},
		{Uint32, 15, "uint32"},
		{Int64, 16, "int64"},
		{Uint64, 17, "uint64"},
		{Long, 18, "long"},
		{ULong, 19, "unsigned long"},
		{LongLong, 20, "long long"},
		{ULongLong, 21, "unsigned long long"},
		{Float, 22, "float"},
		{Double, 23, "double"},
		{Size, 24, "size_t"},
		{SSize, 25, "ssize_t"},
	}

	if int(numTags) != len(want) {
		t.Fatalf("enumeration has %d tags, want %d", numTags, len(want))
	}
	for _, w := range want {
		if uint8(w.tag) != w.pos {
			t.Errorf("%s = %d, want %d", w.name, w.tag, w.pos)
		}
		if w.tag.String() != w.name {
			t.Errorf("tag %d String() = %q, want %q", w.tag, w.tag.String(), w.name)
		}
	}
}

func TestResolve(t *testing.T) {
	for i, name := range Names() {
		tag, ok := Resolve(name)
		if !ok {
			t.Errorf("Resolve(%q) failed", name)
			continue
		}
		if tag != Tag(i) {
			t.Errorf("Resolve(%q) = %d, want %d", name, tag, i)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, name := range []string{"", "quaternion", "VOID", "int*", "char *"} {
		if tag, ok := Resolve(name); ok {
			t.Errorf("Resolve(%q) = %v, want failure", name, tag)
		}
	}
}

func TestTag_Class(t *testing.T) {
	tests := []struct {
		tag  Tag
		want Class
	}{
		{Void, ClassVoid},
		{VoidPtr, ClassPointer},
		{CharPtr, ClassString},
		{Char, ClassInteger},
		{Uint16, ClassInteger},
		{Long, ClassInteger},
		{Size, ClassInteger},
		{SSize, ClassInteger},
		{Float, ClassFloat},
		{Double, ClassFloat},
	}
	for _, tt := range tests {
		if got := tt.tag.Class(); got != tt.want {
			t.Errorf("%s.Class() = %s, want %s", tt.tag, got, tt.want)
		}
	}
}

func TestTag_Signed(t *testing.T) {
	signed := []Tag{Char, SChar, Short, Int8, Int16, Int, Int32, Int64, Long, LongLong, SSize}
	unsigned := []Tag{UChar, UShort, Uint8, Uint16, Uint, Uint32, Uint64, ULong, ULongLong, Size}

	for _, tag := range signed {
		if !tag.Signed() {
			t.Errorf("%s should be signed", tag)
		}
	}
	for _, tag := range unsigned {
		if tag.Signed() {
			t.Errorf("%s should be unsigned", tag)
		}
	}
}

func TestTag_Valid(t *testing.T) {
	if !SSize.Valid() {
		t.Error("ssize_t should be valid")
	}
	if numTags.Valid() {
		t.Error("sentinel should not be valid")
	}
	if Tag(200).Valid() {
		t.Error("out-of-range tag should not be valid")
	}
}
