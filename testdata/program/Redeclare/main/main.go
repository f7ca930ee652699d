package main

import "fmt"

//kinderror:generate source = "error"
type ErrorKind int

const NotFound ErrorKind = 0

type Error struct{}

//kinderror:generate name = "Failure"
type OtherKind int

const Other OtherKind = 0

func main() {
	fmt.Println(NotFound, Other, Error{})
}
