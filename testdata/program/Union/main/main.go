package main

import (
	"errors"
	"fmt"

	"github.com/sublee/kinderror"
)

//kinderror:generate source = "error", display = "{kind:?}: {source}"
type FieldKind interface{ fieldKind() }

type Missing struct{}

type Invalid struct {
	Field  string
	Reason string
}

func (Missing) fieldKind() {}
func (Invalid) fieldKind() {}

func main() {
	err := NewError(Invalid{Field: "email", Reason: "no at sign"}, errors.New("validation failed"))

	// Output: {Field:email Reason:no at sign}: validation failed
	fmt.Println(err)

	// Output: email
	if invalid, ok := err.Kind().(Invalid); ok {
		fmt.Println(invalid.Field)
	}

	// Output: true
	fmt.Println(NewError(Missing{}, nil).Unwrap() == nil)

	// Output: {email no at sign} true
	wrapped := fmt.Errorf("signup: %w", err)
	kind, ok := kinderror.KindOf[FieldKind](wrapped)
	fmt.Println(kind, ok)

	// Output: true false
	fmt.Println(kinderror.HasKind[FieldKind](NewError(Missing{}, nil), Missing{}), kinderror.HasKind[FieldKind](wrapped, Missing{}))
}
