package main

import (
	"errors"
	"fmt"
)

type CustomError struct {
	Code    int
	Message string
}

//kinderror:generate source = "CustomError", source_fn = false, display = "{kind}: {source}"
type ErrorKind string

const (
	Timeout  ErrorKind = "timeout"
	Rejected ErrorKind = "rejected"
)

func main() {
	err := NewError(Timeout, CustomError{Code: 504, Message: "gateway"})

	// Output: timeout: {504 gateway}
	fmt.Println(err)

	// Output: 504
	fmt.Println(err.Origin().Code)

	// Output: false
	_, ok := any(err).(interface{ Unwrap() error })
	fmt.Println(ok)

	// Output: true
	fmt.Println(errors.Unwrap(err) == nil)
}
