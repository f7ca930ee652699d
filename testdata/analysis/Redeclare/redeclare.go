package redeclare

type Error struct{}

//kinderror:generate source = "error"
type AKind int // want `Error redeclared`

const A AKind = 0

//kinderror:generate source = "error", name = "Failure"
type BKind int

const B BKind = 0

//kinderror:generate source = "error", name = "Failure" // want `Failure redeclared\n\tprevious declaration at .*redeclare.go:10:` `NewFailure redeclared`
type CKind int

const C CKind = 0

func NewOops() {}

//kinderror:generate source = "error", name = "Oops" // want `NewOops redeclared`
type DKind int

const D DKind = 0

//kinderror:generate source = "error", name = "DKind" // want `DKind redeclared`
type EKind int

const E EKind = 0
