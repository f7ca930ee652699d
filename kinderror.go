// Package kinderror generates error types from kind enums.
//
// Many packages classify their failures with a small enum and carry the
// underlying cause along. Writing the error struct, its constructor, accessors,
// Error and Unwrap methods by hand is boilerplate. Annotate the enum once, and
// the generator produces the rest:
//
//	// source:
//	//kinderror:generate source = "error"
//	type ErrorKind int
//
//	const (
//		NotFound ErrorKind = iota
//		Denied
//	)
//
//	// generated: (simplified)
//	type Error struct {
//		kind   ErrorKind
//		source error
//	}
//
//	func NewError(kind ErrorKind, source error) *Error
//	func (e *Error) Kind() ErrorKind
//	func (e *Error) Origin() error
//	func (e *Error) Error() string
//	func (e *Error) Unwrap() error
//
// Run the kinderror command in the package directory, usually through go
// generate. It writes kinderror_gen.go:
//
//	//go:generate go run github.com/sublee/kinderror/cmd/kinderror
//
// # Attributes
//
// A directive is a line comment on the type declaration with a comma-separated
// list of key = value pairs. Long lists may continue on more directive lines:
//
//	//kinderror:generate source = "*os.PathError", name = "FileError",
//	//kinderror:generate display = "{kind}: {source}"
//
// The recognized keys are:
//
//	source         required, the Go type of the cause, as a string
//	source_fn      true (default) or false; whether Unwrap exposes the cause
//	name           the base name of the error type, "Error" by default
//	               ("kindError" when the error type is unexported)
//	type_vis       exported, unexported or inherited (default) from the kind type
//	new_vis        visibility of the constructor, inherited by default
//	kind_fn_vis    visibility of the kind accessor, exported by default
//	origin_fn_vis  visibility of the source accessor, exported by default
//	display        the template of the Error message
//
// Inherited visibility follows the kind type: an exported kind gets an
// exported error type and constructor, an unexported kind gets unexported ones.
// So an exported ErrorKind produces NewError unless new_vis says otherwise.
//
// With source_fn = true the source type must implement error. A source that is
// not an error, such as a status code or a plain struct, needs source_fn =
// false and is still formatted by display.
//
// # Display
//
// The display template refers to the fields by {kind} and {source}. A format
// spec may follow a colon: {kind:?} is the debug form (%+v), {kind:#?} is the
// Go-syntax form (%#v), and anything else is a fmt verb such as {source:q} or
// {kind:03d}. {{ and }} are literal braces. The default template is:
//
//	error kind: {kind:?}, source: {source:?}
//
// # Kinds
//
// The kind type is either a defined basic type with constants, or an interface
// implemented by types of the same package. The latter lets a kind carry a
// payload:
//
//	//kinderror:generate source = "error"
//	type ErrorKind interface{ errorKind() }
//
//	type FieldError struct{ Field string }
//
//	func (FieldError) errorKind() {}
//
// This package provides helpers to inspect kinds of errors in a chain, such as
// [KindOf] and [HasKind]. Generated code does not depend on it.
package kinderror

import "errors"

// Kinded is an error which carries a kind. Generated error types with an
// exported kind accessor implement it.
type Kinded[K any] interface {
	error
	Kind() K
}

// KindOf finds the first error in err's chain which carries a kind of type K,
// and returns the kind.
//
//	if kind, ok := kinderror.KindOf[ErrorKind](err); ok {
//		...
//	}
func KindOf[K any](err error) (K, bool) {
	var kinded Kinded[K]
	if errors.As(err, &kinded) {
		return kinded.Kind(), true
	}

	var zero K
	return zero, false
}

// HasKind reports whether the first error in err's chain which carries a kind
// of type K has the given kind.
func HasKind[K comparable](err error, kind K) bool {
	k, ok := KindOf[K](err)
	return ok && k == kind
}
