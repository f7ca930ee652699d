// Package kinderroranalysis reports invalid //kinderror:generate directives as
// analysis diagnostics, so mistakes show up in editors and linters before the
// generator runs.
package kinderroranalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/kinderror/internal/codefmt"
	kinderrorinternal "github.com/sublee/kinderror/internal/kinderror"
)

// Analyzer validates the kinderror directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "kinderror",
	Doc:  "linter for kinderror directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	ke, err := kinderrorinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	// Unroll all errors and report them
	for _, err := range codefmt.Flatten(ke.Build()) {
		codeErr, ok := codefmt.AsCodeError(err)
		if !ok {
			continue
		}
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	}

	return nil, nil
}
