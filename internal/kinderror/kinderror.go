package kinderrorinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/kinderror/internal/codefmt"
	"github.com/sublee/kinderror/internal/kinderror/parse"
	"github.com/sublee/kinderror/internal/kinderror/synth"
)

// KindError generates error types for the kind types of a package. Call
// [KindError.Build] and then [KindError.Generate] to get the generated code.
// All potential errors are returned by Build. Once Build succeeds, Generate
// never fails.
type KindError struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	// decls records where each reserved package-level name is declared.
	decls map[string]codefmt.Poser

	dir     string
	exclude []string
	logf    func(format string, args ...any)

	plans []*parse.Plan
}

// New creates a new [KindError] for the given package. The package must have
// its Syntax, Types and TypesInfo. Type errors are tolerated because user code
// usually refers to declarations which are not generated yet.
func New(pkg *packages.Package) (*KindError, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	// Declarations in a previously generated file will be replaced. So they
	// do not conflict with the new ones.
	ns := make(codefmt.NS)
	decls := make(map[string]codefmt.Poser)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if parser.InGeneratedFile(obj.Pos()) {
			continue
		}
		ns.Reserve(name)
		decls[name] = obj
	}

	// A package-level name must not collide with a file-scope import in any
	// file of the package.
	for _, file := range parser.Files() {
		for _, spec := range file.Imports {
			for _, name := range importedNames(pkg, spec) {
				if ns.Reserve(name) {
					decls[name] = spec
				}
			}
		}
	}

	// The generated file always imports fmt.
	ns.Reserve("fmt")

	var buf bytes.Buffer
	return &KindError{
		p:     parser,
		ns:    ns,
		buf:   &buf,
		w:     codefmt.NewWriter(&buf, pkg),
		decls: decls,
		logf:  func(string, ...any) {},
	}, nil
}

// importedNames returns the names an import declares in the file scope. A
// dot import declares the exported names of the imported package.
func importedNames(pkg *packages.Package, spec *ast.ImportSpec) []string {
	if spec.Name != nil {
		switch spec.Name.Name {
		case "_":
			return nil
		case ".":
		default:
			return []string{spec.Name.Name}
		}
	}

	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return nil
	}
	var imported *types.Package
	for _, imp := range pkg.Types.Imports() {
		if imp.Path() == path {
			imported = imp
			break
		}
	}
	if imported == nil {
		return nil
	}

	if spec.Name == nil {
		return []string{imported.Name()}
	}
	var names []string
	for _, name := range imported.Scope().Names() {
		if token.IsExported(name) {
			names = append(names, name)
		}
	}
	return names
}

// SetLogf sets a function to report progress.
func (ke *KindError) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		ke.logf = logf
	}
}

// Exclude skips directives in files matching any of the glob patterns. The
// patterns are matched against slash-separated paths relative to dir and
// support "**".
func (ke *KindError) Exclude(dir string, patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	ke.dir = dir
	ke.exclude = patterns
	return nil
}

func (ke *KindError) excluded(d *parse.Directive) bool {
	path := ke.p.Filename(d.Pos())
	if rel, err := filepath.Rel(ke.dir, path); err == nil {
		path = rel
	}
	path = filepath.ToSlash(path)

	for _, pattern := range ke.exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			ke.logf("exclude %s (matches %s)", path, pattern)
			return true
		}
	}
	return false
}

// Plans returns the validated plans in source order. It is filled by
// [KindError.Build].
func (ke *KindError) Plans() []*parse.Plan {
	return ke.plans
}

// Build parses and validates the directives of the package. All potential
// errors are returned by this method. It must be called before
// [KindError.Generate].
func (ke *KindError) Build() error {
	dirs, errs := ke.p.ParseDirectives()

	for _, d := range dirs {
		if ke.excluded(d) {
			continue
		}

		plan, err := ke.p.ParsePlan(d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := ke.reserve(plan); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		ke.w.Declare(plan.Names()...)
		ke.plans = append(ke.plans, plan)
		ke.logf("%s: %s => %s (source %s, %d variants)",
			codefmt.FormatPos(ke.p, d.Pos()), d.Obj.Name(), plan.TypeName,
			codefmt.FormatType(ke.p, plan.Source.T), len(plan.Enum.Variants))
	}

	slices.SortFunc(ke.plans, func(a, b *parse.Plan) int {
		return int(a.Pos() - b.Pos())
	})
	return errs
}

// reserve claims the package-level names of the plan.
func (ke *KindError) reserve(plan *parse.Plan) error {
	var errs error
	for _, name := range plan.Names() {
		if ke.ns.Reserve(name) {
			ke.decls[name] = plan.NameAt()
			continue
		}
		var err error
		if prev, ok := ke.decls[name]; ok {
			err = codefmt.Errorf(ke.p, plan.NameAt(), "%s redeclared\n\tprevious declaration at %b", name, prev)
		} else {
			err = codefmt.Errorf(ke.p, plan.NameAt(), "%s is imported by the generated file; set name", name)
		}
		errs = errors.Join(errs, err)
	}
	return errs
}

// Generate generates the error types for the package. It returns nil if there
// is nothing to generate. It must be called after [KindError.Build] succeeds.
func (ke *KindError) Generate() []byte {
	if len(ke.plans) == 0 {
		return nil
	}

	for _, plan := range ke.plans {
		fmt.Fprintf(ke.buf, "// %s:\n\n", filepath.Base(ke.p.Filename(plan.Pos())))
		synth.Write(ke.w, plan)
	}
	return ke.frameCode()
}

func (ke *KindError) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !kinderror\n\n")
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.GeneratorPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", ke.p.Pkg().Name)

	imports := ke.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, ke.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
