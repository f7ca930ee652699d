package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger    interface{ Pkg() *packages.Package }
	Poser    interface{ Pos() token.Pos }
	Ender    interface{ End() token.Pos }
	Objecter interface{ Object() types.Object }
	Typer    interface{ Type() types.Type }
)

// wrapPrintfArgs wraps arguments which the %t and %b verbs understand.
func (f Formatter) wrapPrintfArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case token.Pos, token.Position, types.Object, types.Type, Poser, Objecter, Typer:
			wrapped[i] = formatArg{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

type formatArg struct {
	x   any
	fmt Formatter
}

func (f formatArg) typ() types.Type {
	switch x := f.x.(type) {
	case types.Type:
		return x
	case Typer:
		return x.Type()
	case types.Object:
		return x.Type()
	case Objecter:
		return x.Object().Type()
	}
	return nil
}

func (f formatArg) position() (token.Position, bool) {
	if f.fmt.Fset == nil {
		return token.Position{}, false
	}
	switch x := f.x.(type) {
	case token.Position:
		return x, true
	case token.Pos:
		return f.fmt.Fset.Position(x), true
	case Poser:
		return f.fmt.Fset.Position(x.Pos()), true
	case Objecter:
		return f.fmt.Fset.Position(x.Object().Pos()), true
	}
	return token.Position{}, false
}

// Format implements fmt.Formatter.
//
// Supported verbs:
//
//	%t: types.Type as written in the package (e.g., *os.PathError)
//	%b: token.Position in the file:line:column form
//
// Other verbs fall back to the fmt package.
func (f formatArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 't':
		typ := f.typ()
		if typ == nil {
			fmt.Fprintf(s, "[%%t cannot format %T]", f.x)
			return
		}
		_, _ = io.WriteString(s, f.fmt.Type(typ))

	case 'b':
		pos, ok := f.position()
		if !ok {
			fmt.Fprintf(s, "[%%b cannot format %T]", f.x)
			return
		}
		_, _ = io.WriteString(s, FormatPosition(pos))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapPrintfArgs(args)...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapPrintfArgs(args)...)
}
