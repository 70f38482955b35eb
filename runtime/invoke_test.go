//go:build linux || darwin

package runtime

import (
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/wippyai/ffi-runtime/errors"
	"github.com/wippyai/ffi-runtime/types"
)

func TestInvoke_Abs(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Int, "abs", types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("abs", -5)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got != 5 {
		t.Errorf("abs(-5) = %d, want 5", got)
	}
}

func TestInvoke_Atoi(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Int, "atoi", types.CharPtr); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("atoi", "42")
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got != 42 {
		t.Errorf("atoi(\"42\") = %d, want 42", got)
	}
}

func TestInvoke_Strlen(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Size, "strlen", types.CharPtr); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("strlen", "hello")
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(uint64); got != 5 {
		t.Errorf("strlen(\"hello\") = %d, want 5", got)
	}
}

func TestInvoke_Labs(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Long, "labs", types.Long); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("labs", -123456789)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got != 123456789 {
		t.Errorf("labs = %d, want 123456789", got)
	}
}

func TestInvoke_Toupper(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Int, "toupper", types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("toupper", 'a')
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got != 'A' {
		t.Errorf("toupper('a') = %c, want A", rune(got))
	}
}

func TestInvoke_Strncmp(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Int, "strncmp", types.CharPtr, types.CharPtr, types.Size); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("strncmp", "abc", "abd", 2)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got != 0 {
		t.Errorf("strncmp(abc, abd, 2) = %d, want 0", got)
	}

	out, err = lib.Invoke("strncmp", "abc", "abd", 3)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got >= 0 {
		t.Errorf("strncmp(abc, abd, 3) = %d, want negative", got)
	}
}

func TestInvoke_Pow(t *testing.T) {
	lib, err := Open(mathPath())
	if err != nil {
		t.Fatalf("open %s: %v", mathPath(), err)
	}
	defer lib.Close()

	if _, err := lib.Declare(types.Double, "pow", types.Double, types.Double); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("pow", 2.0, 10.0)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(float64); got != 1024 {
		t.Errorf("pow(2, 10) = %v, want 1024", got)
	}
}

func TestInvoke_Sqrtf(t *testing.T) {
	lib, err := Open(mathPath())
	if err != nil {
		t.Fatalf("open %s: %v", mathPath(), err)
	}
	defer lib.Close()

	if _, err := lib.Declare(types.Float, "sqrtf", types.Float); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("sqrtf", 2.25)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(float32); got != 1.5 {
		t.Errorf("sqrtf(2.25) = %v, want 1.5", got)
	}
}

// A null char* return is a nil value, not an empty string.
func TestInvoke_NullStringReturn(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.CharPtr, "getenv", types.CharPtr); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("getenv", "FFI_RUNTIME_SURELY_UNSET_4242")
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out != nil {
		t.Errorf("getenv(unset) = %#v, want nil", out)
	}
}

func TestInvoke_StringReturn(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.CharPtr, "strerror", types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("strerror", 2)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	msg, ok := out.(string)
	if !ok || msg == "" {
		t.Errorf("strerror(2) = %#v, want non-empty string", out)
	}
}

// The returned pointer aliases the argument buffer; the eager copy must
// capture it before the call's pinned storage is released.
func TestInvoke_Strchr(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.CharPtr, "strchr", types.CharPtr, types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("strchr", "hello world", 'w')
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(string); got != "world" {
		t.Errorf("strchr = %q, want %q", got, "world")
	}

	out, err = lib.Invoke("strchr", "hello", 'z')
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out != nil {
		t.Errorf("strchr(no match) = %#v, want nil", out)
	}
}

func TestInvoke_VoidReturn(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Void, "srand", types.Uint); err != nil {
		t.Fatalf("declare: %v", err)
	}

	out, err := lib.Invoke("srand", 7)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out != nil {
		t.Errorf("void return = %#v, want nil", out)
	}
}

func TestInvoke_MallocFree(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.VoidPtr, "malloc", types.Size); err != nil {
		t.Fatalf("declare malloc: %v", err)
	}
	if _, err := lib.Declare(types.Void, "free", types.VoidPtr); err != nil {
		t.Fatalf("declare free: %v", err)
	}

	out, err := lib.Invoke("malloc", 16)
	if err != nil {
		t.Fatalf("malloc: %v", err)
	}
	p, ok := out.(types.Pointer)
	if !ok || p == 0 {
		t.Fatalf("malloc(16) = %#v, want non-null pointer", out)
	}

	if _, err := lib.Invoke("free", p); err != nil {
		t.Fatalf("free: %v", err)
	}
	// Null is a valid void* argument.
	if _, err := lib.Invoke("free", nil); err != nil {
		t.Fatalf("free(nil): %v", err)
	}
}

func TestInvoke_ArgumentCountMismatch(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Int, "abs", types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}

	if _, err := lib.Invoke("abs"); !isKind(err, errors.PhaseInvoke, errors.KindArgumentCount) {
		t.Errorf("no args: got %v, want argument_count", err)
	}
	if _, err := lib.Invoke("abs", 1, 2); !isKind(err, errors.PhaseInvoke, errors.KindArgumentCount) {
		t.Errorf("extra args: got %v, want argument_count", err)
	}
}

func TestInvoke_ArgumentTypeError(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Declare(types.Int, "abs", types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}

	_, err := lib.Invoke("abs", "minus five")
	if !isKind(err, errors.PhaseInvoke, errors.KindArgumentType) {
		t.Fatalf("got %v, want argument_type", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("not a structured error")
	}
	if e.Arg != 1 || e.Tag != "int" {
		t.Errorf("argument %d tag %q, want argument 1 tag \"int\"", e.Arg, e.Tag)
	}
}

func TestInvoke_Undeclared(t *testing.T) {
	lib := openLibc(t)
	if _, err := lib.Invoke("never_declared"); !isKind(err, errors.PhaseInvoke, errors.KindNameResolution) {
		t.Errorf("got %v, want name_resolution", err)
	}
}

// Build a one-function library with the system compiler and call it, the
// end-to-end declaration scenario.
func TestInvoke_CompiledAdd(t *testing.T) {
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("cc not available")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "add.c")
	if err := os.WriteFile(src, []byte("int add(int a, int b) { return a + b; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	so := filepath.Join(dir, "libadd.so")
	if out, err := exec.Command(cc, "-shared", "-fPIC", "-o", so, src).CombinedOutput(); err != nil {
		t.Skipf("cc failed: %v\n%s", err, out)
	}

	lib, err := Open(so)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer lib.Close()

	if _, err := lib.Declare(types.Int, "add", types.Int, types.Int); err != nil {
		t.Fatalf("declare: %v", err)
	}
	out, err := lib.Invoke("add", 2, 3)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := out.(int64); got != 5 {
		t.Errorf("add(2, 3) = %d, want 5", got)
	}
}
