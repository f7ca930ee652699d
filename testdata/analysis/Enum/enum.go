package enum

//kinderror:generate source = "error"
type Config struct{ Name string } // want `kinderror only supports enum types, not struct Config`

// The type is checked before its attributes.
//
//kinderror:generate foo = "bar"
type Options struct{} // want `kinderror only supports enum types, not struct Options`

//kinderror:generate source = "error"
type Empty int // want `kinderror only supports enum types; Empty has no variants`

//kinderror:generate source = "error"
type Any interface{} // want `kinderror only supports enum types, not interface Any`

//kinderror:generate source = "error"
type Handler func() // want `kinderror only supports enum types, not func Handler`

//kinderror:generate source = "error"
type Names []string // want `kinderror only supports enum types, not slice Names`

//kinderror:generate source = "error", name = "UnionError"
type UnionKind interface{ unionKind() } // ok

type unionA struct{}

func (unionA) unionKind() {}

type unionB struct{ Reason string }

func (*unionB) unionKind() {}

//kinderror:generate source = "error", name = "ConstError"
type ConstKind string // ok

const ConstA ConstKind = "a"
