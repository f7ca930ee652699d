// Package lcs measures how much names have in common at their ends, either
// character by character or word by word. It backs "did you mean"
// suggestions and the recasing of generated names.
package lcs

import "slices"

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	return string(commonPrefix(runesOf(ss)))
}

// CommonSuffix returns the longest common suffix of the strings in ss.
func CommonSuffix(ss []string) string {
	return string(commonSuffix(runesOf(ss)))
}

// Similarity scores how much a and b share at their ends. Common prefixes and
// suffixes count once by characters and once more by whole words, so sharing
// a word weighs more than sharing a few letters.
func Similarity(a, b string) int {
	pair := []string{a, b}
	score := len(CommonPrefix(pair)) + len(CommonSuffix(pair))
	score += len(CommonWordPrefix(pair)) + len(CommonWordSuffix(pair))
	return score
}

func runesOf(ss []string) [][]rune {
	seqs := make([][]rune, len(ss))
	for i, s := range ss {
		seqs[i] = []rune(s)
	}
	return seqs
}

// commonPrefix returns the longest prefix shared by all seqs.
func commonPrefix[E comparable](seqs [][]E) []E {
	if len(seqs) == 0 {
		return nil
	}

	prefix := seqs[0]
	for _, seq := range seqs[1:] {
		n := 0
		for n < len(prefix) && n < len(seq) && prefix[n] == seq[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}

// commonSuffix returns the longest suffix shared by all seqs.
func commonSuffix[E comparable](seqs [][]E) []E {
	rev := make([][]E, len(seqs))
	for i, seq := range seqs {
		rev[i] = slices.Clone(seq)
		slices.Reverse(rev[i])
	}

	suffix := slices.Clone(commonPrefix(rev))
	slices.Reverse(suffix)
	return suffix
}
