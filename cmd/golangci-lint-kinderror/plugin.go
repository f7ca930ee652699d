// golangcilintkinderror package provides a plugin for golangci-lint to
// integrate the kinderror analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-kinderror binary that reports invalid
// //kinderror:generate directives.
package golangcilintkinderror

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/kinderror/pkg/kinderroranalysis"
)

func init() {
	register.Plugin("kinderror", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return KindErrorLinter{}, nil
}

type KindErrorLinter struct{}

func (KindErrorLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{kinderroranalysis.Analyzer}, nil
}

// GetLoadMode requests type information because directives are validated
// against the types of the package.
func (KindErrorLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
