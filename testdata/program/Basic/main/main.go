package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//kinderror:generate source = "error"
type ErrorKind int

const (
	NotFound ErrorKind = iota
	Denied
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case Denied:
		return "Denied"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func main() {
	_, openErr := os.Open("/nonexistent/kinderror")
	err := NewError(NotFound, openErr)

	// Output: NotFound
	fmt.Println(err.Kind())

	// Output: error kind: NotFound, source: open /nonexistent/kinderror: no such file or directory
	fmt.Println(err)

	// Output: true
	fmt.Println(errors.Is(err, fs.ErrNotExist))

	// Output: true
	fmt.Println(err.Origin() == openErr)

	// Output: true
	var pathErr *fs.PathError
	fmt.Println(errors.As(err, &pathErr))

	// Output: error kind: Denied, source: <nil>
	fmt.Println(NewError(Denied, nil))
}
