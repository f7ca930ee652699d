package validate

import "os"

var _ = os.Getpid

//kinderror:generate source_fn = false
type MissingKind int // want `source attribute is required`

const Missing MissingKind = 0

//kinderror:generate source = "Nope" // want `source: undefined: Nope`
type UndefinedKind int

const Undefined UndefinedKind = 0

//kinderror:generate source = "Answer" // want `source: Answer is not a type`
type NotTypeKind int

const Answer NotTypeKind = 42

//kinderror:generate source = "1 + 2" // want `source: "1 \+ 2" is not a type`
type ExprKind int

const Expr ExprKind = 0

//kinderror:generate source = "int" // want `source type int does not implement error; set source_fn = false`
type IntKind int

const Int IntKind = 0

//kinderror:generate source = "*os.PathError", name = "PathError" // ok
type PathKind int

const Path PathKind = 0

//kinderror:generate source = "int", source_fn = false, name = "CodeError" // ok
type CodeKind int

const Code CodeKind = 0

//kinderror:generate source = "error" // ok
type errorKind int

const errKind errorKind = 0

//kinderror:generate source = "error", name = "string" // want `generated type name string shadows predeclared identifier; set name`
type stringKind int

const strKind stringKind = 0

//kinderror:generate source = "error", display = "{code}" // want `display: unknown placeholder \{code\}; use \{kind\} or \{source\}`
type DisplayKind int

const Display DisplayKind = 0

//kinderror:generate source = "error", display = "{kind:!}" // want `display: invalid format spec "!"`
type SpecKind int

const Spec SpecKind = 0

//kinderror:generate source = "error", display = "{kind" // want `display: unclosed placeholder at offset 0`
type BraceKind int

const Brace BraceKind = 0
