package main

import (
	"errors"
	"fmt"
	"strconv"
)

//kinderror:generate source = "*strconv.NumError", name = "ParseError",
//kinderror:generate display = "parse failed [stage={kind:d}] {{{source:q}}} 100%"
type Stage int

const (
	Lexing Stage = iota
	Reading
)

func parse(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewParseError(Reading, err.(*strconv.NumError))
	}
	return n, nil
}

func main() {
	_, err := parse("x")

	// Output: parse failed [stage=1] {"strconv.Atoi: parsing \"x\": invalid syntax"} 100%
	fmt.Println(err)

	// Output: true x
	var numErr *strconv.NumError
	ok := errors.As(err, &numErr)
	fmt.Println(ok, numErr.Num)

	// Output: true
	fmt.Println(errors.Is(err, strconv.ErrSyntax))

	// Output: Error [kind=Lexing]: unexpected EOF
	fmt.Println(NewError(StepLex, errors.New("unexpected EOF")))

	// Output: &main.Error{kind:"Parsing", source:&errors.errorString{s:"plain"}}
	fmt.Printf("%#v\n", NewError(StepParse, errors.New("plain")))
}
