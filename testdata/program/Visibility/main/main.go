package main

import (
	"fmt"
	"os"
)

//kinderror:generate source = "*os.PathError", name = "FileError", type_vis = "unexported",
//kinderror:generate kind_fn_vis = "unexported", origin_fn_vis = "inherited"
type errorKind uint8

const (
	kindOpen errorKind = iota + 1
	kindStat
)

func main() {
	var nilPath *os.PathError
	err := newFileError(kindOpen, nilPath)

	// Output: true
	fmt.Println(err.Unwrap() == nil)

	// Output: 1
	fmt.Println(err.kindOf())

	// Output: true
	fmt.Println(err.originOf() == nil)

	// Output: &main.fileError{kind:0x2, source:(*fs.PathError)(nil)}
	fmt.Printf("%#v\n", newFileError(kindStat, nil))

	// Output: error kind: 2, source: stat /x: file does not exist
	fmt.Println(newFileError(kindStat, &os.PathError{Op: "stat", Path: "/x", Err: os.ErrNotExist}))
}
