package parse

import (
	"go/types"
	"slices"

	"github.com/sublee/kinderror/internal/codefmt"
	"github.com/sublee/kinderror/internal/typeinfo"
)

// Enum is a kind type: a closed set of named variants.
//
// A constant enum is a defined type with a basic underlying type and at least
// one package-level constant of that type:
//
//	type ErrorKind int
//
//	const (
//		NotFound ErrorKind = iota
//		Denied
//	)
//
// A union enum is a defined interface type which is implemented by types in the
// same package. Union variants may carry payloads:
//
//	type ErrorKind interface{ errorKind() }
//
//	type FieldError struct{ Field string }
//
//	func (FieldError) errorKind() {}
type Enum struct {
	Obj  *types.TypeName
	Type typeinfo.Type

	// Union is true for a union enum.
	Union bool

	// Variants are *types.Const for a constant enum and *types.TypeName for a
	// union enum, in source order.
	Variants []types.Object
}

func (e *Enum) Object() types.Object { return e.Obj }

// ParseEnum inspects the annotated type. Types that are not enums are
// rejected with an error at the type name.
func (p *Parser) ParseEnum(d *Directive) (*Enum, error) {
	obj := d.Obj
	t := typeinfo.TypeOf(obj.Type())

	notEnum := func() error {
		return codefmt.Errorf(p, d, "kinderror only supports enum types, not %s %s", t.Kind(), obj.Name())
	}

	if obj.IsAlias() || !t.IsNamed() || t.IsGeneric() {
		return nil, notEnum()
	}

	scope := p.pkg.Types.Scope()
	enum := &Enum{Obj: obj, Type: t}

	switch {
	case t.IsBasic():
		for _, name := range scope.Names() {
			c, ok := scope.Lookup(name).(*types.Const)
			if ok && typeinfo.TypeOf(c.Type()).Identical(t) {
				enum.Variants = append(enum.Variants, c)
			}
		}

	case t.IsInterface():
		enum.Union = true
		iface := t.Interface
		if iface.NumMethods() == 0 || !iface.IsMethodSet() {
			// Empty interfaces and constraints do not close any set.
			return nil, notEnum()
		}
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn == obj || tn.IsAlias() {
				continue
			}
			if types.IsInterface(tn.Type()) {
				continue
			}
			if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() != 0 {
				continue
			}
			if types.Implements(tn.Type(), iface) || types.Implements(types.NewPointer(tn.Type()), iface) {
				enum.Variants = append(enum.Variants, tn)
			}
		}

	default:
		return nil, notEnum()
	}

	if len(enum.Variants) == 0 {
		return nil, codefmt.Errorf(p, d, "kinderror only supports enum types; %s has no variants", obj.Name())
	}

	slices.SortFunc(enum.Variants, func(a, b types.Object) int {
		return int(a.Pos() - b.Pos())
	})
	return enum, nil
}
