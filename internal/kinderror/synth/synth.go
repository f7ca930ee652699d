// Package synth writes the Go declarations of generated error types.
package synth

import (
	"strconv"
	"strings"

	"github.com/sublee/kinderror/internal/codefmt"
	"github.com/sublee/kinderror/internal/kinderror/parse"
)

// recv is the receiver name of generated methods.
const recv = "e"

// Write writes the error type described by the plan along with its
// constructor, accessors and error methods.
func Write(w *codefmt.Writer, plan *parse.Plan) {
	writeType(w, plan)
	writeConstructor(w, plan)
	writeAccessors(w, plan)
	writeError(w, plan)
	writeGoString(w, plan)
	if plan.SourceFn {
		writeUnwrap(w, plan)
	}
	w.Printf("var _ error = (*%s)(nil)\n\n", plan.TypeName)
}

func writeType(w *codefmt.Writer, plan *parse.Plan) {
	kind, src := plan.Enum.Type, plan.Source

	w.Printf("// %s is an error of kind %t caused by %t.\n", plan.TypeName, plan.Enum, src)
	w.Printf("type %s struct {\n", plan.TypeName)
	w.Printf("kind %t\n", kind)
	w.Printf("source %t\n", src)
	w.Printf("}\n\n")
}

func writeConstructor(w *codefmt.Writer, plan *parse.Plan) {
	kind, src := plan.Enum.Type, plan.Source

	w.Printf("// %s returns a new %s with the given kind and source.\n", plan.NewName, plan.TypeName)
	w.Printf("func %s(kind %t, source %t) *%s {\n", plan.NewName, kind, src, plan.TypeName)
	w.Printf("return &%s{kind: kind, source: source}\n", plan.TypeName)
	w.Printf("}\n\n")
}

func writeAccessors(w *codefmt.Writer, plan *parse.Plan) {
	kind, src := plan.Enum.Type, plan.Source

	w.Printf("// %s returns the kind of the error.\n", plan.KindFnName)
	w.Printf("func (%s *%s) %s() %t {\n", recv, plan.TypeName, plan.KindFnName, kind)
	w.Printf("return %s.kind\n", recv)
	w.Printf("}\n\n")

	w.Printf("// %s returns the source of the error.\n", plan.OriginFnName)
	w.Printf("func (%s *%s) %s() %t {\n", recv, plan.TypeName, plan.OriginFnName, src)
	w.Printf("return %s.source\n", recv)
	w.Printf("}\n\n")
}

func writeError(w *codefmt.Writer, plan *parse.Plan) {
	fmtPkg := w.Import("fmt", "fmt")

	args := []string{strconv.Quote(plan.Display.Format)}
	for _, arg := range plan.Display.Args {
		args = append(args, recv+"."+arg)
	}

	w.Printf("// Error formats the error by %s.\n", strconv.Quote(plan.Display.Template))
	w.Printf("func (%s *%s) Error() string {\n", recv, plan.TypeName)
	if len(plan.Display.Args) == 0 {
		w.Printf("return %s\n", strconv.Quote(unescapePercent(plan.Display.Format)))
	} else {
		w.Printf("return %s.Sprintf(%s)\n", fmtPkg, strings.Join(args, ", "))
	}
	w.Printf("}\n\n")
}

// unescapePercent reverses the %% escapes of a format string without verbs.
func unescapePercent(format string) string {
	return strings.ReplaceAll(format, "%%", "%")
}

func writeGoString(w *codefmt.Writer, plan *parse.Plan) {
	fmtPkg := w.Import("fmt", "fmt")
	pkgName := plan.Directive.Obj.Pkg().Name()
	format := "&" + pkgName + "." + plan.TypeName + "{kind:%#v, source:%#v}"

	w.Printf("// GoString formats the error in Go syntax for the %%#v verb.\n")
	w.Printf("func (%s *%s) GoString() string {\n", recv, plan.TypeName)
	w.Printf("return %s.Sprintf(%s, %s.kind, %s.source)\n", fmtPkg, strconv.Quote(format), recv, recv)
	w.Printf("}\n\n")
}

func writeUnwrap(w *codefmt.Writer, plan *parse.Plan) {
	w.Printf("// Unwrap returns the source so that errors.Is and errors.As can inspect it.\n")
	w.Printf("func (%s *%s) Unwrap() error {\n", recv, plan.TypeName)
	if plan.Source.IsNillable() {
		w.Printf("if %s.source == nil {\n", recv)
		w.Printf("return nil\n")
		w.Printf("}\n")
	}
	w.Printf("return %s.source\n", recv)
	w.Printf("}\n\n")
}
