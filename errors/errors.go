package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseOpen    Phase = "open"    // library loading
	PhaseDeclare Phase = "declare" // symbol declaration
	PhaseBuild   Phase = "build"   // call descriptor construction
	PhaseInvoke  Phase = "invoke"  // native invocation
	PhaseClose   Phase = "close"   // library unloading
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownType       Kind = "unknown_type"
	KindTooManyArguments  Kind = "too_many_arguments"
	KindVoidArgument      Kind = "void_argument"
	KindAbiPreparation    Kind = "abi_preparation"
	KindNameResolution    Kind = "name_resolution"
	KindArgumentCount     Kind = "argument_count"
	KindArgumentType      Kind = "argument_type"
	KindUnsupportedReturn Kind = "unsupported_return"
	KindOpenFailed        Kind = "open_failed"
	KindCloseFailed       Kind = "close_failed"
	KindAlreadyClosed     Kind = "already_closed"
	KindDuplicateSymbol   Kind = "duplicate_symbol"
	KindAllocation        Kind = "allocation"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	Tag    string
	Detail string
	Arg    int // 1-indexed argument position, 0 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" symbol ")
		b.WriteString(fmt.Sprintf("%q", e.Symbol))
	}
	if e.Arg > 0 {
		b.WriteString(fmt.Sprintf(" argument %d", e.Arg))
	}
	if e.Tag != "" {
		b.WriteString(" (")
		b.WriteString(e.Tag)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Symbol sets the symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Tag sets the type tag name
func (b *Builder) Tag(t string) *Builder {
	b.err.Tag = t
	return b
}

// Arg sets the 1-indexed argument position
func (b *Builder) Arg(i int) *Builder {
	b.err.Arg = i
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownType creates an error for a type name outside the fixed tag set
func UnknownType(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownType,
		Tag:    name,
		Detail: fmt.Sprintf("unknown type %q", name),
	}
}

// TooManyArguments creates an error for a signature exceeding the argument ceiling
func TooManyArguments(got, limit int) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindTooManyArguments,
		Detail: fmt.Sprintf("%d argument types exceed the maximum of %d", got, limit),
		Value:  got,
	}
}

// VoidArgument creates an error for void declared at an argument position
func VoidArgument(pos int) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindVoidArgument,
		Arg:    pos,
		Detail: "void cannot be used as argument type",
	}
}

// AbiPreparation creates an error for a rejected call-interface preparation
func AbiPreparation(status string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindAbiPreparation,
		Detail: fmt.Sprintf("failed to prepare call interface (%s)", status),
	}
}

// NameResolution creates an error for an entry point missing from the library
func NameResolution(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseDeclare,
		Kind:   KindNameResolution,
		Symbol: name,
		Detail: "failed to resolve symbol",
		Cause:  cause,
	}
}

// ArgumentCount creates an error for a call with the wrong number of arguments
func ArgumentCount(symbol string, want, got int) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindArgumentCount,
		Symbol: symbol,
		Detail: fmt.Sprintf("expected %d arguments but got %d", want, got),
		Value:  got,
	}
}

// ArgumentType creates an error for a value that cannot be coerced to its declared tag
func ArgumentType(pos int, tag string, value any) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindArgumentType,
		Arg:    pos,
		Tag:    tag,
		Detail: fmt.Sprintf("%s requires a compatible value, got %T", tag, value),
		Value:  value,
	}
}

// UnsupportedReturn creates an error for a return tag with no marshal procedure
func UnsupportedReturn(symbol, tag string) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindUnsupportedReturn,
		Symbol: symbol,
		Tag:    tag,
		Detail: "unsupported return type",
	}
}

// OpenFailed creates an error for a library that could not be loaded
func OpenFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindOpenFailed,
		Detail: fmt.Sprintf("failed to open library %q", path),
		Cause:  cause,
	}
}

// CloseFailed creates an error for a native unload that reported failure
func CloseFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseClose,
		Kind:   KindCloseFailed,
		Detail: fmt.Sprintf("failed to close library %q", path),
		Cause:  cause,
	}
}

// AlreadyClosed creates an error for an operation on a closed library
func AlreadyClosed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAlreadyClosed,
		Detail: "library is closed",
	}
}

// DuplicateSymbol creates an error for re-declaring an already declared name
func DuplicateSymbol(name string) *Error {
	return &Error{
		Phase:  PhaseDeclare,
		Kind:   KindDuplicateSymbol,
		Symbol: name,
		Detail: "symbol already declared",
	}
}

// Allocation creates an error for a failed native allocation
func Allocation(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %s", what),
	}
}
