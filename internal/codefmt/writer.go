package codefmt

import (
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

// Writer writes generated code for a package. It collects the packages which
// the written types refer to so that the caller can render the import
// declarations afterwards.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	decls   NS
}

// NewWriter creates a new [Writer] writing generated code for pkg to w.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
		decls:   make(NS),
	}
}

// Declare records package-level names which the generated code declares.
// Imports are named not to collide with them.
func (w *Writer) Declare(names ...string) {
	for _, name := range names {
		w.decls.Reserve(name)
	}
}

// taken reports whether an import cannot be named name.
func (w *Writer) taken(name string) bool {
	if _, ok := w.decls[name]; ok {
		return true
	}
	return w.pkg.Types.Scope().Lookup(name) != nil
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf]. Packages of types in args are recorded to import.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args...)
	return w.fmt.Fprintf(w.w, format, args...)
}

type Import struct {
	// The package to import.
	*types.Package

	// HasAlias indicates that the import has an alias.
	HasAlias bool
}

// Imports returns the collected imports keyed by the name to refer to them.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// importType records packages which a type refers to.
func (w *Writer) importType(typ types.Type) {
	switch typ := typ.(type) {
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Slice:
		w.importType(typ.Elem())
	case *types.Array:
		w.importType(typ.Elem())
	case *types.Chan:
		w.importType(typ.Elem())
	case *types.Map:
		w.importType(typ.Key())
		w.importType(typ.Elem())
	case *types.Signature:
		for v := range typ.Params().Variables() {
			w.importType(v.Type())
		}
		for v := range typ.Results().Variables() {
			w.importType(v.Type())
		}
	case *types.Struct:
		for f := range typ.Fields() {
			w.importType(f.Type())
		}
	case *types.Alias:
		w.importObj(typ.Obj())
	case *types.Named:
		w.importObj(typ.Obj())
		for t := range typ.TypeArgs().Types() {
			w.importType(t)
		}
	}
}

// importObj records the package where the object is declared.
func (w *Writer) importObj(obj types.Object) {
	if obj == nil {
		return
	}

	pkg := obj.Pkg()
	if pkg == nil {
		// Skip built-in objects
		return
	}

	if w.pkg.PkgPath == pkg.Path() {
		// Do not import the same package
		return
	}

	for name := range DisambiguateName(pkg.Name()) {
		prev, ok := w.imports[name]
		if ok && prev.Package == pkg {
			return
		}
		if !ok && !w.taken(name) {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkg.Name()}
			pkg.SetName(name)
			return
		}
	}
}

// Import adds an import for the package with the given path and name. It
// returns the name to refer to the package, which differs from name if
// another import or a package-level declaration already took it.
//
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("return %s.Sprintf(...)\n", fmtName)
func (w *Writer) Import(path, name string) string {
	var pkgName string
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			pkgName = imp.Name()
			break
		}
	}

	if name == "" {
		name = pkgName
	}
	if pkgName == "" {
		pkgName = name
	}
	pkg := types.NewPackage(path, name)

	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path() == path {
			return name
		}
		if !ok && !w.taken(name) {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkgName}
			pkg.SetName(name)
			return name
		}
	}

	panic("unreachable")
}

func (w *Writer) importArgs(args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		case types.Object:
			w.importObj(arg)
		case types.Type:
			w.importType(arg)
		case Objecter:
			w.importObj(arg.Object())
		case Typer:
			w.importType(arg.Type())
		}
	}
}
