// Package lexicon defines the dictionary services the game depends on and
// provides an embedded dictionary implementing them.
package lexicon

// Category is a grammatical category used for base-form lookups.
type Category int

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
)

// Categories lists every category in lookup order.
var Categories = []Category{Noun, Verb, Adjective, Adverb}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "unknown"
	}
}

// Speller answers whether a word is correctly spelled.
type Speller interface {
	Spell(word string) bool
}

// Morpher resolves inflected forms to their grammatical base forms.
type Morpher interface {
	// BaseForm returns the base form of word under the given category,
	// or ok=false if the word is already a base form (or unknown) there.
	BaseForm(word string, c Category) (base string, ok bool)

	// ExistsAs reports whether the word exists as the given category.
	ExistsAs(word string, c Category) bool
}

// Stemmer produces stems for a word, possibly none.
type Stemmer interface {
	Stems(word string) []string
}

// Lexicon bundles the three dictionary services.
type Lexicon interface {
	Speller
	Morpher
	Stemmer
}

// Normalize lowercases s and reports whether the result is non-empty
// ASCII alphabetic. Both game setup and round validation share it.
func Normalize(s string) (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch < 'a' || ch > 'z' {
			return "", false
		}
		out[i] = ch
	}
	return string(out), true
}
