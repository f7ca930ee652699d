package generated

// A previously generated file is ignored. Its declarations do not conflict
// with the ones to generate.
//
//kinderror:generate source = "error"
type ErrorKind int

const NotFound ErrorKind = 0

func use() error { return NewError(NotFound, nil) }

var _ = use
