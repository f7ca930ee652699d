package parse

import (
	"go/token"
	"go/types"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sublee/kinderror/internal/lcs"
)

// DefaultName is the base name of the generated error type.
const DefaultName = "Error"

// DefaultUnexportedName replaces [DefaultName] for an unexported error type
// because "error" is predeclared.
const DefaultUnexportedName = "kindError"

// Recase changes the exportedness of an identifier. Exporting upper-cases the
// first letter. Unexporting lower-cases the whole first word, so "HTTPError"
// becomes "httpError" rather than "hTTPError".
func Recase(name string, exported bool) string {
	words := lcs.SplitWords(name)
	if len(words) == 0 {
		return name
	}
	if exported {
		r, size := utf8.DecodeRuneInString(words[0])
		words[0] = cases.Upper(language.Und).String(string(r)) + words[0][size:]
	} else {
		words[0] = cases.Lower(language.Und).String(words[0])
	}
	return strings.Join(words, "")
}

// constructorName returns "NewX" or "newX" for the requested name X.
func constructorName(name string, exported bool) string {
	base := Recase(name, true)
	if exported {
		return "New" + base
	}
	return "new" + base
}

// accessorName returns the name of an accessor method. Unexported accessors
// get an "Of" suffix because the plain names are taken by the fields.
func accessorName(field string, exported bool) string {
	if exported {
		return Recase(field, true)
	}
	return field + "Of"
}

// isPredeclared reports whether the name is a keyword or a predeclared
// identifier like "error" or "string".
func isPredeclared(name string) bool {
	return token.IsKeyword(name) || types.Universe.Lookup(name) != nil
}
