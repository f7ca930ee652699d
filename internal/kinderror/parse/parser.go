package parse

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"
)

// GeneratorPath is the import path stamped into the header of generated files.
const GeneratorPath = "github.com/sublee/kinderror"

// Parser parses an AST of the underlying package to collect kinderror
// directives and turn them into generation plans.
type Parser struct {
	pkg  *packages.Package
	frag FragmentParser
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. String attributes holding Go syntax are parsed
// by [GoFragments] unless [Parser.SetFragmentParser] replaces it.
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg, frag: GoFragments{}}, nil
}

// SetFragmentParser replaces the parser used for type and visibility
// attributes.
func (p *Parser) SetFragmentParser(frag FragmentParser) {
	p.frag = frag
}

// Files returns the syntax trees of the package except files generated by
// kinderror.
func (p *Parser) Files() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if !IsGeneratedFile(file) {
			files = append(files, file)
		}
	}
	return files
}

// InGeneratedFile reports whether pos is located in a file generated by
// kinderror.
func (p *Parser) InGeneratedFile(pos token.Pos) bool {
	if !pos.IsValid() {
		return false
	}
	for _, file := range p.pkg.Syntax {
		if file.FileStart <= pos && pos <= file.FileEnd {
			return IsGeneratedFile(file)
		}
	}
	return false
}

// Filename returns the name of the file containing pos.
func (p *Parser) Filename(pos token.Pos) string {
	return p.pkg.Fset.Position(pos).Filename
}

// IsGeneratedFile checks if the file was generated by kinderror. The file must
// carry the standard "Code generated ... DO NOT EDIT." header naming
// kinderror.
func IsGeneratedFile(file *ast.File) bool {
	if !ast.IsGenerated(file) {
		return false
	}
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if strings.HasPrefix(comment.Text, "// Code generated by "+GeneratorPath) {
				return true
			}
		}
	}
	return false
}
