package parse

import (
	"errors"
	"go/ast"
	"go/scanner"
	"go/token"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/kinderror/internal/codefmt"
	"github.com/sublee/kinderror/internal/lcs"
)

// Attrs is the attribute record of a directive. Attributes which are not
// written keep their defaults. A key written twice keeps the later value.
type Attrs struct {
	Source      ast.Expr
	SourceFn    bool
	NewVis      Visibility
	Name        string
	TypeVis     Visibility
	KindFnVis   Visibility
	OriginFnVis Visibility
	Display     string

	// written maps each written key to the span of its value, in the order of
	// first appearance.
	written *linkedhashmap.Map
}

// NewAttrs returns an attribute record holding the defaults.
func NewAttrs() *Attrs {
	return &Attrs{SourceFn: true, written: linkedhashmap.New()}
}

// IsSet reports whether the key was written in the directive.
func (a *Attrs) IsSet(key string) bool {
	_, ok := a.written.Get(key)
	return ok
}

// Keys returns the written keys in the order of first appearance.
func (a *Attrs) Keys() []string {
	var keys []string
	for _, key := range a.written.Keys() {
		keys = append(keys, key.(string))
	}
	return keys
}

// At returns the span of the value written for the key. It returns nil if the
// key was not written.
func (a *Attrs) At(key string) codefmt.Poser {
	span, ok := a.written.Get(key)
	if !ok {
		return nil
	}
	return span.(codefmt.Poser)
}

type valueKind int

const (
	stringValue valueKind = iota
	boolValue
)

type value struct {
	str string
	b   bool
}

type attrKey struct {
	kind valueKind
	set  func(frag FragmentParser, a *Attrs, v value) error
}

// attrKeys is the closed set of recognized keys in declaration order.
var attrKeys = func() *linkedhashmap.Map {
	m := linkedhashmap.New()
	m.Put("source", attrKey{stringValue, func(frag FragmentParser, a *Attrs, v value) error {
		expr, err := frag.ParseType(v.str)
		a.Source = expr
		return err
	}})
	m.Put("source_fn", attrKey{boolValue, func(_ FragmentParser, a *Attrs, v value) error {
		a.SourceFn = v.b
		return nil
	}})
	m.Put("new_vis", attrKey{stringValue, func(frag FragmentParser, a *Attrs, v value) (err error) {
		a.NewVis, err = frag.ParseVisibility(v.str)
		return err
	}})
	m.Put("name", attrKey{stringValue, func(_ FragmentParser, a *Attrs, v value) error {
		if !token.IsIdentifier(v.str) || v.str == "_" {
			return errors.New(strconv.Quote(v.str) + " is not an identifier")
		}
		a.Name = v.str
		return nil
	}})
	m.Put("type_vis", attrKey{stringValue, func(frag FragmentParser, a *Attrs, v value) (err error) {
		a.TypeVis, err = frag.ParseVisibility(v.str)
		return err
	}})
	m.Put("kind_fn_vis", attrKey{stringValue, func(frag FragmentParser, a *Attrs, v value) (err error) {
		a.KindFnVis, err = frag.ParseVisibility(v.str)
		return err
	}})
	m.Put("origin_fn_vis", attrKey{stringValue, func(frag FragmentParser, a *Attrs, v value) (err error) {
		a.OriginFnVis, err = frag.ParseVisibility(v.str)
		return err
	}})
	m.Put("display", attrKey{stringValue, func(_ FragmentParser, a *Attrs, v value) error {
		a.Display = v.str
		return nil
	}})
	return m
}()

// AttrKeys returns the recognized attribute keys.
func AttrKeys() []string {
	var keys []string
	for _, key := range attrKeys.Keys() {
		keys = append(keys, key.(string))
	}
	return keys
}

// ParseAttrs parses the attribute list of a directive into a. The list is a
// comma-separated sequence of key = literal pairs and may be empty. base is the
// position of the first byte of src, so errors point into the directive
// comment.
//
// A syntax error stops the list. A recognized pair with an invalid value or an
// unknown key is reported and parsing goes on with the next pair.
func ParseAttrs(pkger codefmt.Pkger, frag FragmentParser, a *Attrs, src string, base token.Pos) error {
	ap := &attrParser{
		fmt:  codefmt.New(nil),
		frag: frag,
		base: base,
	}
	if pkger != nil {
		ap.fmt = codefmt.New(pkger.Pkg())
	}

	fset := token.NewFileSet()
	ap.file = fset.AddFile("", -1, len(src))
	ap.sc.Init(ap.file, []byte(src), ap.scanError, 0)

	ap.parse(a)
	return ap.errs
}

type attrParser struct {
	fmt  codefmt.Formatter
	frag FragmentParser
	sc   scanner.Scanner
	file *token.File
	base token.Pos
	errs error
	bad  bool

	pos token.Pos
	tok token.Token
	lit string
}

func (ap *attrParser) scanError(pos token.Position, msg string) {
	ap.bad = true
	ap.errs = errors.Join(ap.errs, ap.fmt.Errorf(codefmt.Pos(ap.base+token.Pos(pos.Offset)), "%s", msg))
}

func (ap *attrParser) errorf(poser codefmt.Poser, format string, args ...any) {
	ap.errs = errors.Join(ap.errs, ap.fmt.Errorf(poser, format, args...))
}

func (ap *attrParser) next() {
	var pos token.Pos
	pos, ap.tok, ap.lit = ap.sc.Scan()
	ap.pos = ap.base + token.Pos(ap.file.Offset(pos))
}

// atEnd reports whether the current token terminates the directive. The
// scanner inserts a newline semicolon after the last operand.
func (ap *attrParser) atEnd() bool {
	return ap.tok == token.EOF || ap.tok == token.SEMICOLON && ap.lit == "\n"
}

// span returns the span of the current token.
func (ap *attrParser) span() codefmt.Poser {
	n := len(ap.lit)
	if !ap.tok.IsLiteral() && ap.tok != token.ILLEGAL {
		n = len(ap.tok.String())
	}
	if ap.atEnd() {
		n = 0
	}
	return codefmt.Span(ap.pos, ap.pos+token.Pos(n))
}

// found describes the current token for error messages.
func (ap *attrParser) found() string {
	switch {
	case ap.atEnd():
		return "end of directive"
	case ap.tok.IsLiteral():
		return ap.lit
	case ap.tok == token.ILLEGAL:
		return strconv.Quote(ap.lit)
	}
	return "'" + ap.tok.String() + "'"
}

func (ap *attrParser) parse(a *Attrs) {
	ap.next()
	for !ap.atEnd() && !ap.bad {
		if !ap.parsePair(a) || ap.bad {
			return
		}
		if ap.atEnd() {
			return
		}
		if ap.tok != token.COMMA {
			ap.errorf(ap.span(), `expected "," or end of directive, found %s`, ap.found())
			return
		}
		ap.next()
	}
}

// parsePair parses a key = literal pair. It returns false on a syntax error.
func (ap *attrParser) parsePair(a *Attrs) bool {
	if ap.tok != token.IDENT {
		ap.errorf(ap.span(), "expected attribute key, found %s", ap.found())
		return false
	}
	key, keySpan := ap.lit, ap.span()

	ap.next()
	if ap.tok != token.ASSIGN {
		ap.errorf(ap.span(), `expected "=" after %s, found %s`, key, ap.found())
		return false
	}

	ap.next()
	if !ap.tok.IsLiteral() {
		ap.errorf(ap.span(), "expected value for %s, found %s", key, ap.found())
		return false
	}
	tok, lit, valSpan := ap.tok, ap.lit, ap.span()
	ap.next()

	entry, ok := attrKeys.Get(key)
	if !ok {
		if hint := suggestKey(key); hint != "" {
			ap.errorf(keySpan, "unknown attribute key: %s; did you mean %s?", key, hint)
		} else {
			ap.errorf(keySpan, "unknown attribute key: %s", key)
		}
		return true
	}
	spec := entry.(attrKey)

	var v value
	switch spec.kind {
	case stringValue:
		if tok != token.STRING {
			ap.errorf(valSpan, "%s must be a string literal; found %s", key, lit)
			return true
		}
		s, err := strconv.Unquote(lit)
		if err != nil {
			ap.errorf(valSpan, "%s: malformed string literal %s", key, lit)
			return true
		}
		v.str = s
	case boolValue:
		if tok != token.IDENT || lit != "true" && lit != "false" {
			ap.errorf(valSpan, "%s must be true or false; found %s", key, lit)
			return true
		}
		v.b = lit == "true"
	}

	if err := spec.set(ap.frag, a, v); err != nil {
		ap.errorf(valSpan, "%s: %s", key, err.Error())
		return true
	}
	a.written.Put(key, valSpan)
	return true
}

// suggestKey finds the recognized key which looks most like the unknown one.
// It returns an empty string if nothing is close enough.
func suggestKey(unknown string) string {
	var best string
	bestScore := 0
	for _, key := range AttrKeys() {
		score := lcs.Similarity(unknown, key)
		if score > bestScore {
			best, bestScore = key, score
		}
	}
	if bestScore*2 < len(unknown) {
		return ""
	}
	return best
}
