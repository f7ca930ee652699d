package parse

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
)

// Visibility is the requested exportedness of a generated declaration.
type Visibility int

const (
	// VisUnset means the attribute was not written.
	VisUnset Visibility = iota

	// VisInherited follows the exportedness of the kind type.
	VisInherited

	VisExported
	VisUnexported
)

func (v Visibility) String() string {
	switch v {
	case VisInherited:
		return "inherited"
	case VisExported:
		return "exported"
	case VisUnexported:
		return "unexported"
	}
	return "unset"
}

// Or returns def if v is unset.
func (v Visibility) Or(def Visibility) Visibility {
	if v == VisUnset {
		return def
	}
	return v
}

// Exported reports whether an identifier with the visibility is exported.
// inherit is used for [VisInherited] and [VisUnset].
func (v Visibility) Exported(inherit bool) bool {
	switch v {
	case VisExported:
		return true
	case VisUnexported:
		return false
	}
	return inherit
}

// FragmentParser parses the Go syntax carried in string attributes. The
// attribute parser hands over the unquoted string and reports the returned
// error at the string literal.
type FragmentParser interface {
	ParseType(s string) (ast.Expr, error)
	ParseVisibility(s string) (Visibility, error)
}

// GoFragments is the default [FragmentParser] built on go/parser and
// go/scanner.
type GoFragments struct{}

// ParseType parses a type expression such as "error", "*os.PathError" or
// "map[string]int".
func (GoFragments) ParseType(s string) (ast.Expr, error) {
	expr, err := parser.ParseExpr(s)
	if err != nil {
		if list, ok := err.(scanner.ErrorList); ok && len(list) != 0 {
			return nil, fmt.Errorf("%q is not a type: %s", s, list[0].Msg)
		}
		return nil, fmt.Errorf("%q is not a type", s)
	}
	if !isTypeExpr(expr) {
		return nil, fmt.Errorf("%q is not a type", s)
	}
	return expr, nil
}

func isTypeExpr(expr ast.Expr) bool {
	switch expr := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := expr.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(expr.X)
	case *ast.ParenExpr:
		return isTypeExpr(expr.X)
	case *ast.IndexExpr:
		return isTypeExpr(expr.X) && isTypeExpr(expr.Index)
	case *ast.IndexListExpr:
		for _, index := range expr.Indices {
			if !isTypeExpr(index) {
				return false
			}
		}
		return isTypeExpr(expr.X)
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	}
	return false
}

// ParseVisibility parses a single identifier: exported, unexported or
// inherited.
func (GoFragments) ParseVisibility(s string) (Visibility, error) {
	var sc scanner.Scanner
	fset := token.NewFileSet()
	sc.Init(fset.AddFile("", -1, len(s)), []byte(s), nil, 0)

	_, tok, lit := sc.Scan()
	if tok == token.IDENT {
		if _, next, nextLit := sc.Scan(); next == token.EOF || next == token.SEMICOLON && nextLit == "\n" {
			switch lit {
			case "exported":
				return VisExported, nil
			case "unexported":
				return VisUnexported, nil
			case "inherited":
				return VisInherited, nil
			}
		}
	}
	return VisUnset, fmt.Errorf("%q is not a visibility; use exported, unexported or inherited", s)
}
