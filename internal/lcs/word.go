package lcs

import "strings"

// CommonWordPrefix returns the longest common prefix of the strings in ss
// which consists of whole words. Words are split by [SplitWords].
func CommonWordPrefix(ss []string) string {
	return strings.Join(commonPrefix(wordsOf(ss)), "")
}

// CommonWordSuffix returns the longest common suffix of the strings in ss
// which consists of whole words. Words are split by [SplitWords].
func CommonWordSuffix(ss []string) string {
	return strings.Join(commonSuffix(wordsOf(ss)), "")
}

func wordsOf(ss []string) [][]string {
	seqs := make([][]string, len(ss))
	for i, s := range ss {
		seqs[i] = SplitWords(s)
	}
	return seqs
}

// SplitWords splits an identifier into words. A word ends where:
//   - a lowercase letter meets an uppercase letter: "kindOf" -> "kind" + "Of"
//   - an uppercase letter starts a capitalized word: "HTTPError" -> "HTTP" + "Error"
//   - underscores begin or end: "kind_fn_vis" -> "kind" + "_" + "fn" + "_" + "vis"
//   - letters meet digits: "utf8Error" -> "utf" + "8" + "Error"
func SplitWords(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		if isWordBoundary(s, i) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

type charClass int

const (
	classOther charClass = iota
	classLower
	classUpper
	classDigit
	classUnderscore
)

func classOf(c byte) charClass {
	switch {
	case 'a' <= c && c <= 'z':
		return classLower
	case 'A' <= c && c <= 'Z':
		return classUpper
	case '0' <= c && c <= '9':
		return classDigit
	case c == '_':
		return classUnderscore
	}
	return classOther
}

func isLetter(c charClass) bool { return c == classLower || c == classUpper }

// isWordBoundary reports whether a new word starts at s[i].
func isWordBoundary(s string, i int) bool {
	prev, curr := classOf(s[i-1]), classOf(s[i])
	next := classOther
	if i+1 < len(s) {
		next = classOf(s[i+1])
	}

	switch {
	case prev == classLower && curr == classUpper:
		return true
	case curr == classUpper && next == classLower:
		return true
	case (prev == classUnderscore) != (curr == classUnderscore):
		return true
	case isLetter(prev) && curr == classDigit, prev == classDigit && isLetter(curr):
		return true
	}
	return false
}
