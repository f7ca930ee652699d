package directive

//kinderror:generate source = "error" // want `//kinderror:generate must annotate a type declaration`
func F() {}

//kinderror:gen source = "error" // want `kinderror directive must be in the form //kinderror:generate key = value, \.\.\.`
type AKind int

const A AKind = 0

var (
	//kinderror:generate source = "error" // want `must annotate a type declaration`
	V int
)

type S struct {
	//kinderror:generate source = "error" // want `must annotate a type declaration`
	Field int
}

// Other comments mentioning kinderror:generate are fine.
type BKind int

const B BKind = 0
