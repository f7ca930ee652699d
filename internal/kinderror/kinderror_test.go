package kinderrorinternal_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	kinderrorinternal "github.com/sublee/kinderror/internal/kinderror"
)

type file struct {
	name string
	src  string
}

// loadPackage type-checks a package from in-memory files without the go
// command.
func loadPackage(t *testing.T, files ...file) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	var syntax []*ast.File
	var names []string
	for _, f := range files {
		parsed, err := parser.ParseFile(fset, f.name, f.src, parser.ParseComments)
		require.NoError(t, err)
		syntax = append(syntax, parsed)
		names = append(names, f.name)
	}

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Scopes:    make(map[ast.Node]*types.Scope),
		Implicits: make(map[ast.Node]types.Object),
	}
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("example.com/kinds", fset, syntax, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      pkg.Name(),
		PkgPath:   pkg.Path(),
		GoFiles:   names,
		Fset:      fset,
		Syntax:    syntax,
		Types:     pkg,
		TypesInfo: info,
	}
}

func build(t *testing.T, files ...file) (*kinderrorinternal.KindError, error) {
	t.Helper()
	ke, err := kinderrorinternal.New(loadPackage(t, files...))
	require.NoError(t, err)
	return ke, ke.Build()
}

const basicSrc = `package kinds

//kinderror:generate source = "error"
type ErrorKind int

const (
	NotFound ErrorKind = iota
	Denied
)
`

func TestGenerate(t *testing.T) {
	ke, err := build(t, file{"kinds.go", basicSrc})
	require.NoError(t, err)
	require.Len(t, ke.Plans(), 1)

	code := string(ke.Generate())
	assert.Contains(t, code, "//go:build !kinderror\n\n// Code generated by github.com/sublee/kinderror. DO NOT EDIT.\n\npackage kinds\n")
	assert.Contains(t, code, "\t\"fmt\"\n")
	assert.Contains(t, code, "// kinds.go:\n")
	assert.Contains(t, code, "// Error is an error of kind ErrorKind caused by error.\n")
	assert.Contains(t, code, "type Error struct {\n\tkind   ErrorKind\n\tsource error\n}")
	assert.Contains(t, code, "func NewError(kind ErrorKind, source error) *Error {")
	assert.Contains(t, code, "func (e *Error) Kind() ErrorKind {")
	assert.Contains(t, code, "func (e *Error) Origin() error {")
	assert.Contains(t, code, `return fmt.Sprintf("error kind: %+v, source: %+v", e.kind, e.source)`)
	assert.Contains(t, code, `return fmt.Sprintf("&kinds.Error{kind:%#v, source:%#v}", e.kind, e.source)`)
	assert.Contains(t, code, "func (e *Error) Unwrap() error {\n\treturn e.source\n}")
	assert.Contains(t, code, "var _ error = (*Error)(nil)")

	// The output must be valid Go.
	_, err = parser.ParseFile(token.NewFileSet(), "kinderror_gen.go", code, parser.ParseComments)
	assert.NoError(t, err)
}

func TestGenerateNothing(t *testing.T) {
	ke, err := build(t, file{"kinds.go", "package kinds\n\ntype ErrorKind int\n"})
	require.NoError(t, err)
	assert.Empty(t, ke.Plans())
	assert.Nil(t, ke.Generate())
}

func TestGenerateSourceFnFalse(t *testing.T) {
	ke, err := build(t, file{"kinds.go", `package kinds

//kinderror:generate source = "int", source_fn = false, display = "status {source:03d}: 100%"
type Status uint8

const Retry Status = 1
`})
	require.NoError(t, err)

	code := string(ke.Generate())
	assert.Contains(t, code, "source int\n")
	assert.Contains(t, code, `return fmt.Sprintf("status %03d: 100%%", e.source)`)
	assert.NotContains(t, code, "Unwrap")
}

func TestGenerateLiteralDisplay(t *testing.T) {
	ke, err := build(t, file{"kinds.go", `package kinds

//kinderror:generate source = "error", display = "always 100% {{sure}}"
type ErrorKind int

const Oops ErrorKind = 0
`})
	require.NoError(t, err)

	code := string(ke.Generate())
	assert.Contains(t, code, `return "always 100% {sure}"`)
}

func TestGenerateImports(t *testing.T) {
	ke, err := build(t, file{"kinds.go", `package kinds

import "os"

var _ = os.Getpid

//kinderror:generate source = "*os.PathError", name = "FileError"
type FileKind int

const Open FileKind = 0
`})
	require.NoError(t, err)

	code := string(ke.Generate())
	assert.Contains(t, code, "\t\"fmt\"\n")
	assert.Regexp(t, `\t"(os|io/fs)"\n`, code)
	assert.Regexp(t, `func NewFileError\(kind FileKind, source \*(os|fs)\.PathError\) \*FileError \{`, code)

	// A nil pointer must not become a non-nil error.
	assert.Contains(t, code, "func (e *FileError) Unwrap() error {\n\tif e.source == nil {\n\t\treturn nil\n\t}")
}

func TestGenerateSortsBySource(t *testing.T) {
	ke, err := build(t,
		file{"a.go", "package kinds\n\n//kinderror:generate source = \"error\", name = \"AError\"\ntype AKind int\n\nconst A AKind = 0\n"},
		file{"b.go", "package kinds\n\n//kinderror:generate source = \"error\", name = \"BError\"\ntype BKind int\n\nconst B BKind = 0\n"},
	)
	require.NoError(t, err)
	require.Len(t, ke.Plans(), 2)
	assert.Equal(t, "AError", ke.Plans()[0].TypeName)
	assert.Equal(t, "BError", ke.Plans()[1].TypeName)

	code := string(ke.Generate())
	assert.Less(t, strings.Index(code, "// a.go:"), strings.Index(code, "// b.go:"))
}

func TestBuildRedeclared(t *testing.T) {
	_, err := build(t, file{"kinds.go", `package kinds

//kinderror:generate source = "error"
type ErrorKind int

const Oops ErrorKind = 0

type Error struct{}
`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kinds.go:4:6: Error redeclared\n\tprevious declaration at kinds.go:8:6")
}

func TestBuildRedeclaredByPlans(t *testing.T) {
	ke, err := build(t, file{"kinds.go", `package kinds

//kinderror:generate source = "error"
type AKind int

//kinderror:generate source = "error"
type BKind int

const (
	A AKind = 0
	B BKind = 0
)
`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kinds.go:7:6: Error redeclared\n\tprevious declaration at kinds.go:4:6")
	assert.Contains(t, err.Error(), "kinds.go:7:6: NewError redeclared")
	assert.Len(t, ke.Plans(), 1)
}

func TestBuildRedeclaredByImport(t *testing.T) {
	_, err := build(t,
		file{"kinds.go", `package kinds

//kinderror:generate source = "error", name = "errors"
type errorKind int

//kinderror:generate source = "error", name = "str"
type strKind int

const (
	a errorKind = 0
	b strKind   = 0
)
`},
		file{"util.go", `package kinds

import (
	"errors"
	str "strings"
)

var _ = errors.New
var _ = str.ToUpper
`},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kinds.go:3:47: errors redeclared\n\tprevious declaration at util.go:4:2")
	assert.Contains(t, err.Error(), "kinds.go:6:47: str redeclared\n\tprevious declaration at util.go:5:2")
}

func TestBuildRedeclaredByDotImport(t *testing.T) {
	_, err := build(t, file{"kinds.go", `package kinds

import . "errors"

var _ = New

//kinderror:generate source = "error", name = "Join"
type ErrorKind int

const A ErrorKind = 0
`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kinds.go:7:47: Join redeclared\n\tprevious declaration at kinds.go:3:8")
}

func TestBuildReservesFmt(t *testing.T) {
	_, err := build(t, file{"kinds.go", `package kinds

//kinderror:generate source = "error", name = "fmt"
type errorKind int

const a errorKind = 0
`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kinds.go:3:47: fmt is imported by the generated file; set name")
}

func TestGenerateImportAvoidsGeneratedNames(t *testing.T) {
	ke, err := build(t, file{"kinds.go", `package kinds

import fsys "io/fs"

var _ = fsys.ValidPath

//kinderror:generate source = "*fsys.PathError", name = "fs"
type errorKind int

const a errorKind = 0
`})
	require.NoError(t, err)

	code := string(ke.Generate())
	assert.Contains(t, code, "\tfs2 \"io/fs\"\n")
	assert.Contains(t, code, "source *fs2.PathError\n")
}

func TestBuildIgnoresGeneratedFile(t *testing.T) {
	gen := `//go:build !kinderror

// Code generated by github.com/sublee/kinderror. DO NOT EDIT.

package kinds

type Error struct{}

func NewError(kind ErrorKind, source error) *Error { return &Error{} }
`
	ke, err := build(t, file{"kinds.go", basicSrc}, file{"kinderror_gen.go", gen})
	require.NoError(t, err)
	assert.Len(t, ke.Plans(), 1)
}

func TestExclude(t *testing.T) {
	ke, err := kinderrorinternal.New(loadPackage(t,
		file{"kinds.go", basicSrc},
		file{"internal/legacy.go", "package kinds\n\n//kinderror:generate source = \"error\", name = \"LegacyError\"\ntype LegacyKind int\n\nconst Legacy LegacyKind = 0\n"},
	))
	require.NoError(t, err)

	var logs []string
	ke.SetLogf(func(format string, args ...any) {
		logs = append(logs, format)
	})
	require.NoError(t, ke.Exclude("", []string{"**/legacy.go"}))
	require.NoError(t, ke.Build())

	require.Len(t, ke.Plans(), 1)
	assert.Equal(t, "Error", ke.Plans()[0].TypeName)
	assert.Contains(t, logs, "exclude %s (matches %s)")
}

func TestExcludeInvalidPattern(t *testing.T) {
	ke, err := kinderrorinternal.New(loadPackage(t, file{"kinds.go", basicSrc}))
	require.NoError(t, err)

	err = ke.Exclude("", []string{"[a-"})
	assert.EqualError(t, err, `invalid exclude pattern "[a-"`)
}
