package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"unicode"

	"github.com/sublee/kinderror/internal/codefmt"
)

const (
	directivePrefix = "//kinderror:"
	directiveName   = "generate"
)

// Directive is a //kinderror:generate annotation on a type declaration.
type Directive struct {
	Spec *ast.TypeSpec
	Obj  *types.TypeName

	// Lines are the directive comments in source order. Their attribute
	// lists are concatenated.
	Lines []*ast.Comment
}

// Pos returns the position of the annotated type name.
func (d *Directive) Pos() token.Pos { return d.Spec.Name.Pos() }

// End returns the end position of the annotated type name.
func (d *Directive) End() token.Pos { return d.Spec.Name.End() }

// isDirective reports whether the comment belongs to kinderror.
func isDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, directivePrefix)
}

// splitDirective splits a directive comment into its name and the attribute
// list. offset is the byte offset of the attribute list in the comment text.
func splitDirective(c *ast.Comment) (name, attrs string, offset int) {
	rest := c.Text[len(directivePrefix):]
	i := strings.IndexFunc(rest, unicode.IsSpace)
	if i < 0 {
		return rest, "", len(c.Text)
	}
	return rest[:i], rest[i:], len(directivePrefix) + i
}

// ParseDirectives finds every type declaration annotated with
// //kinderror:generate in files not generated by kinderror. Directive
// comments that annotate nothing or are malformed are reported.
func (p *Parser) ParseDirectives() ([]*Directive, error) {
	var dirs []*Directive
	var errs error

	for _, file := range p.Files() {
		claimed := make(map[*ast.Comment]bool)

		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)

				doc := spec.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					doc = gen.Doc
				}
				if doc == nil {
					continue
				}

				var lines []*ast.Comment
				for _, c := range doc.List {
					if !isDirective(c) {
						continue
					}
					claimed[c] = true

					if name, _, _ := splitDirective(c); name != directiveName {
						errs = errors.Join(errs, codefmt.Errorf(p, c, "kinderror directive must be in the form %sgenerate key = value, ...", directivePrefix))
						continue
					}
					lines = append(lines, c)
				}
				if len(lines) == 0 {
					continue
				}

				obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
				if !ok {
					errs = errors.Join(errs, codefmt.Errorf(p, spec.Name, "cannot resolve type %s", spec.Name.Name))
					continue
				}
				dirs = append(dirs, &Directive{Spec: spec, Obj: obj, Lines: lines})
			}
		}

		for _, group := range file.Comments {
			for _, c := range group.List {
				if !isDirective(c) || claimed[c] {
					continue
				}
				if name, _, _ := splitDirective(c); name == directiveName {
					errs = errors.Join(errs, codefmt.Errorf(p, c, "%sgenerate must annotate a type declaration", directivePrefix))
				} else {
					errs = errors.Join(errs, codefmt.Errorf(p, c, "kinderror directive must be in the form %sgenerate key = value, ...", directivePrefix))
				}
			}
		}
	}

	return dirs, errs
}

// ParseAttrs parses and merges the attribute lists of every line of the
// directive.
func (p *Parser) ParseAttrs(d *Directive) (*Attrs, error) {
	attrs := NewAttrs()
	var errs error
	for _, c := range d.Lines {
		_, src, offset := splitDirective(c)
		err := ParseAttrs(p, p.frag, attrs, src, c.Slash+token.Pos(offset))
		errs = errors.Join(errs, err)
	}
	return attrs, errs
}
