// Package typeinfo answers the questions kinderror asks about kind and
// source types.
package typeinfo

import (
	"go/token"
	"go/types"
)

// Type is a [types.Type] along with the parts of it inspected by kinderror.
type Type struct {
	T types.Type

	// Named is set if T is a defined type.
	Named *types.Named

	// Basic and Interface are set by the underlying type of T.
	Basic     *types.Basic
	Interface *types.Interface

	under types.Type
}

// TypeOf inspects t.
func TypeOf(t types.Type) Type {
	info := Type{T: t, under: t.Underlying()}
	if named, ok := types.Unalias(t).(*types.Named); ok {
		info.Named = named
	}
	switch u := info.under.(type) {
	case *types.Basic:
		info.Basic = u
	case *types.Interface:
		info.Interface = u
	}
	return info
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// errorInterface is the underlying interface of the predeclared error type.
var errorInterface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

// ImplementsError reports whether a value of the type can be used as an error.
func (t Type) ImplementsError() bool {
	return types.Implements(t.T, errorInterface)
}

// IsNillable reports whether a nil value of the type becomes a non-nil error
// when it is converted to the error interface. A nil interface converts to a
// nil error, so interfaces are not nillable in this sense.
func (t Type) IsNillable() bool {
	switch t.under.(type) {
	case *types.Pointer, *types.Map, *types.Slice, *types.Chan, *types.Signature:
		return true
	}
	return false
}

// Kind describes the shape of the type as a Go programmer would say it, such
// as "struct" or "map".
func (t Type) Kind() string {
	switch t.under.(type) {
	case *types.Basic:
		return "basic type"
	case *types.Array:
		return "array"
	case *types.Slice:
		return "slice"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "chan"
	case *types.Struct:
		return "struct"
	case *types.Interface:
		return "interface"
	case *types.Signature:
		return "func"
	case *types.Pointer:
		return "pointer"
	}
	return "type"
}

// Pkg returns the package declaring the type, or nil for an unnamed type.
func (t Type) Pkg() *types.Package {
	if t.Named == nil {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns where the type is declared. Pointers report their element type.
func (t Type) Pos() token.Pos {
	if t.Named != nil {
		return t.Named.Obj().Pos()
	}
	if ptr, ok := t.under.(*types.Pointer); ok {
		return TypeOf(ptr.Elem()).Pos()
	}
	return token.NoPos
}

// IsGeneric reports whether the type still has a type parameter. An
// instantiated generic type such as List[int] is not generic.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true
	case *types.Named:
		if t.TypeParams().Len() != 0 && t.TypeArgs().Len() == 0 {
			return true
		}
		for arg := range t.TypeArgs().Types() {
			if isGeneric(arg) {
				return true
			}
		}
	case *types.Pointer:
		return isGeneric(t.Elem())
	case *types.Slice:
		return isGeneric(t.Elem())
	case *types.Array:
		return isGeneric(t.Elem())
	case *types.Chan:
		return isGeneric(t.Elem())
	case *types.Map:
		return isGeneric(t.Key()) || isGeneric(t.Elem())
	case *types.Struct:
		for f := range t.Fields() {
			if isGeneric(f.Type()) {
				return true
			}
		}
	case *types.Signature:
		return t.TypeParams().Len() != 0
	}
	return false
}
