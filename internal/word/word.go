// Package word provides the word value type and the letter arithmetic
// that decides whether a submission extends a word by exactly one letter.
package word

import "sort"

// Word is an immutable word plus its sorted-letter signature.
// Identity is the literal alone; Sorted is a per-word fingerprint used
// by the extension check.
type Word struct {
	Literal string // lowercase alphabetic, non-empty
	Sorted  string // Literal's letters in ascending order
}

// New creates a Word from a literal. The literal must already be
// normalized to lowercase alphabetic; see lexicon.Normalize.
func New(literal string) Word {
	letters := []byte(literal)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return Word{Literal: literal, Sorted: string(letters)}
}

// Less orders words by literal, the ordering used for the game's word sets.
func (w Word) Less(other Word) bool {
	return w.Literal < other.Literal
}

// IsOneMoreThan reports whether the candidate words collectively spell out
// every letter of base plus exactly one extra letter.
//
// The candidates are concatenated with no separator; unless the combined
// length is exactly one more than the base, the check fails immediately.
// Both letter sequences are then walked in sorted order with two cursors:
// a match advances both, a mismatch consumes one extra character from the
// combined sequence. The check succeeds only if the base is fully matched
// with exactly one extra character left over.
func IsOneMoreThan(base Word, candidates []string) bool {
	combinedLen := 0
	for _, c := range candidates {
		combinedLen += len(c)
	}
	if combinedLen != len(base.Literal)+1 {
		return false
	}

	combined := make([]byte, 0, combinedLen)
	for _, c := range candidates {
		combined = append(combined, c...)
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i] < combined[j] })

	i, j := 0, 0
	for i < len(base.Sorted) && j < len(combined) {
		if base.Sorted[i] == combined[j] {
			i++
			j++
			continue
		}
		// more than one unmatched character pending
		if j-i > 1 {
			return false
		}
		j++
	}
	return i == len(base.Sorted)
}
