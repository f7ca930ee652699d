package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sublee/kinderror/internal/codefmt"
	"github.com/sublee/kinderror/internal/typeinfo"
)

// Plan is a validated directive. It holds everything needed to generate an
// error type for a kind type.
type Plan struct {
	Directive *Directive
	Enum      *Enum
	Attrs     *Attrs

	Source   typeinfo.Type
	SourceFn bool

	TypeName     string
	NewName      string
	KindFnName   string
	OriginFnName string

	Display Display
}

func (pl *Plan) Pos() token.Pos { return pl.Directive.Pos() }
func (pl *Plan) End() token.Pos { return pl.Directive.End() }

// NameAt returns where to report a conflict of the generated names: the name
// attribute if written, otherwise the kind type.
func (pl *Plan) NameAt() codefmt.Poser {
	if at := pl.Attrs.At("name"); at != nil {
		return at
	}
	return pl.Directive
}

// Names returns the package-level names the plan declares.
func (pl *Plan) Names() []string {
	return []string{pl.TypeName, pl.NewName}
}

// ParsePlan parses and validates a directive. The first failing stage stops
// the directive: a non-enum type is not checked for attributes, and invalid
// attributes are not validated further.
func (p *Parser) ParsePlan(d *Directive) (*Plan, error) {
	enum, err := p.ParseEnum(d)
	if err != nil {
		return nil, err
	}

	attrs, err := p.ParseAttrs(d)
	if err != nil {
		return nil, err
	}

	return p.Validate(d, enum, attrs)
}

// Validate checks the attributes against the package and resolves defaults.
func (p *Parser) Validate(d *Directive, enum *Enum, attrs *Attrs) (*Plan, error) {
	if attrs.Source == nil {
		return nil, codefmt.Errorf(p, d, "source attribute is required")
	}

	src, err := p.checkSource(d, attrs)
	if err != nil {
		return nil, err
	}

	if attrs.SourceFn && !src.ImplementsError() {
		return nil, codefmt.Errorf(p, attrs.At("source"), "source type %t does not implement error; set source_fn = false", src)
	}

	kindExported := d.Obj.Exported()
	typeExported := attrs.TypeVis.Exported(kindExported)

	name := DefaultName
	if !typeExported {
		name = DefaultUnexportedName
	}
	if attrs.Name != "" {
		name = attrs.Name
	}
	typeName := Recase(name, typeExported)
	if token.IsExported(typeName) != typeExported {
		return nil, codefmt.Errorf(p, attrs.At("name"), "generated type name %s cannot be exported; set name", typeName)
	}
	if isPredeclared(typeName) {
		at := attrs.At("name")
		if at == nil {
			at = d
		}
		return nil, codefmt.Errorf(p, at, "generated type name %s shadows predeclared identifier; set name", typeName)
	}

	tmpl := DefaultDisplay
	if attrs.IsSet("display") {
		tmpl = attrs.Display
	}
	display, err := CompileDisplay(tmpl)
	if err != nil {
		return nil, codefmt.Errorf(p, attrs.At("display"), "display: %s", err.Error())
	}

	return &Plan{
		Directive: d,
		Enum:      enum,
		Attrs:     attrs,

		Source:   src,
		SourceFn: attrs.SourceFn,

		TypeName:     typeName,
		NewName:      constructorName(name, attrs.NewVis.Exported(kindExported)),
		KindFnName:   accessorName("kind", attrs.KindFnVis.Or(VisExported).Exported(kindExported)),
		OriginFnName: accessorName("origin", attrs.OriginFnVis.Or(VisExported).Exported(kindExported)),

		Display: display,
	}, nil
}

// checkSource resolves the source type expression in the scope of the file
// declaring the kind type.
func (p *Parser) checkSource(d *Directive, attrs *Attrs) (typeinfo.Type, error) {
	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	err := types.CheckExpr(p.pkg.Fset, p.pkg.Types, d.Pos(), attrs.Source, info)
	if err != nil {
		msg := err.Error()
		var typeErr types.Error
		if errors.As(err, &typeErr) {
			msg = typeErr.Msg
		}
		return typeinfo.Type{}, codefmt.Errorf(p, attrs.At("source"), "source: %s", msg)
	}

	tv := info.Types[attrs.Source]
	if !tv.IsType() {
		return typeinfo.Type{}, codefmt.Errorf(p, attrs.At("source"), "source: %s is not a type", types.ExprString(attrs.Source))
	}

	src := typeinfo.TypeOf(tv.Type)
	if src.IsGeneric() {
		return typeinfo.Type{}, codefmt.Errorf(p, attrs.At("source"), "source: %s is generic; instantiate it", types.ExprString(attrs.Source))
	}
	return src, nil
}
