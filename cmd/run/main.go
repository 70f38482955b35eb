package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/ffi-runtime/runtime"
	"github.com/wippyai/ffi-runtime/types"
)

func main() {
	var (
		libPath     = flag.String("lib", "", "Path to shared library")
		symName     = flag.String("sym", "", "Symbol to declare and call")
		retTag      = flag.String("ret", "int", "Return type tag")
		argTags     = flag.String("args", "", "Argument type tags (comma-separated)")
		listTags    = flag.Bool("list", false, "List supported type tags and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *listTags {
		for _, name := range types.Names() {
			fmt.Println(name)
		}
		return
	}

	if *libPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -lib <library> -sym <name> [-ret tag] [-args tag,tag,...] value...")
		fmt.Fprintln(os.Stderr, "       run -lib <library> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       run -list  (list type tags)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*libPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*libPath, *symName, *retTag, *argTags, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(libPath, symName, retStr, argsStr string, values []string) error {
	if symName == "" {
		return fmt.Errorf("no symbol specified, use -sym")
	}

	ret, ok := types.Resolve(retStr)
	if !ok {
		return fmt.Errorf("unknown return tag %q", retStr)
	}
	args, err := parseTags(argsStr)
	if err != nil {
		return err
	}
	if len(values) != len(args) {
		return fmt.Errorf("signature has %d argument(s), got %d value(s)", len(args), len(values))
	}

	lib, err := runtime.Open(libPath)
	if err != nil {
		return err
	}
	defer lib.Close()

	sym, err := lib.Declare(ret, symName, args...)
	if err != nil {
		return err
	}
	fmt.Printf("Library:  %s\n", lib.Path())
	fmt.Printf("Declared: %s\n", formatSig(symName, ret, args))

	callArgs := make([]any, len(values))
	for i, v := range values {
		a, err := parseValue(args[i], v)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		callArgs[i] = a
	}

	out, err := sym.Invoke(callArgs...)
	if err != nil {
		return err
	}
	fmt.Printf("Result:   %s\n", formatValue(out))
	return nil
}

// parseTags resolves a comma-separated tag list; an empty string means
// no arguments.
func parseTags(s string) ([]types.Tag, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tags := make([]types.Tag, len(parts))
	for i, p := range parts {
		tag, ok := types.Resolve(strings.TrimSpace(p))
		if !ok {
			return nil, fmt.Errorf("unknown type tag %q", strings.TrimSpace(p))
		}
		tags[i] = tag
	}
	return tags, nil
}

// parseValue converts one command-line token into a call argument for
// the given tag. "null" stands for a null pointer or string.
func parseValue(tag types.Tag, s string) (any, error) {
	switch tag.Class() {
	case types.ClassString:
		if s == "null" {
			return nil, nil
		}
		return s, nil
	case types.ClassPointer:
		if s == "null" || s == "0" {
			return nil, nil
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad pointer %q", s)
		}
		return types.Pointer(v), nil
	case types.ClassFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("bad %s %q", tag, s)
		}
		return v, nil
	case types.ClassInteger:
		if tag.Signed() {
			v, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("bad %s %q", tag, s)
			}
			return v, nil
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad %s %q", tag, s)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%s is not a value type", tag)
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case types.Pointer:
		return fmt.Sprintf("0x%x", uintptr(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatSig renders a declared signature C-style: "double pow(double, double)".
func formatSig(name string, ret types.Tag, args []types.Tag) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return ret.String() + " " + name + "(" + strings.Join(parts, ", ") + ")"
}
