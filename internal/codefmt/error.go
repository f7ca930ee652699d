package codefmt

import (
	"errors"
	"fmt"
	"go/token"
)

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Message returns the error message without the position.
func (e CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Error implements the error interface. If pos is valid and a file set is
// known, the position is prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, pos, end, f.Fset}
}

// Flatten unrolls errors joined by [errors.Join] into a flat list in the order
// they were joined. Nil errors are dropped.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	// errors.Join collapses errors with a single error having Unwrap()
	// []error method. The underlying errors could be retrieved using the
	// Unwrap() method.
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var list []error
	for _, err := range u.Unwrap() {
		list = append(list, Flatten(err)...)
	}
	return list
}

// AsCodeError finds the first [CodeError] in the chain of err.
func AsCodeError(err error) (*CodeError, bool) {
	var codeErr *CodeError
	if !errors.As(err, &codeErr) {
		return nil, false
	}
	return codeErr, true
}
