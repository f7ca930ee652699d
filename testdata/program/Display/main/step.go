package main

// Two kinds in a package are generated into a single file.
//
//kinderror:generate source = "error", display = "Error [kind={kind}]: {source}"
type Step string

const (
	StepLex   Step = "Lexing"
	StepParse Step = "Parsing"
)
