package importname

import (
	"errors"
	str "strings"
)

var _ = errors.New
var _ = str.ToUpper

//kinderror:generate source = "error", name = "errors" // want `errors redeclared\n\tprevious declaration at .*importname.go:4:2`
type errorKind int

const errKind errorKind = 0

//kinderror:generate source = "error", name = "str" // want `str redeclared\n\tprevious declaration at .*importname.go:5:2`
type strKind int

const sKind strKind = 0

//kinderror:generate source = "error", name = "fmt" // want `fmt is imported by the generated file; set name`
type fmtKind int

const fKind fmtKind = 0

//kinderror:generate source = "error" // ok
type okKind int

const oKind okKind = 0
