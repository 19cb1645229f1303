package lexicon

import (
	"errors"
	"math/rand"
	"sort"
)

// Entry is one dictionary word definition as stored in dictionary.json.
type Entry struct {
	Literal string            `json:"literal"`
	POS     []string          `json:"pos"`             // categories the word exists as
	Base    map[string]string `json:"base,omitempty"`  // category name -> base form
	Stems   []string          `json:"stems,omitempty"` // stemmer output for this word
}

// Dictionary is the embedded Lexicon implementation. It answers all three
// oracle queries from a single table of entries loaded at startup.
type Dictionary struct {
	entries map[string]Entry
	seeds   []string // 3-letter words, sorted, for random game starts
}

// NewDictionary builds a dictionary from loaded entries.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		d.entries[e.Literal] = e
		if len(e.Literal) == 3 {
			d.seeds = append(d.seeds, e.Literal)
		}
	}
	sort.Strings(d.seeds)
	return d
}

// LoadDictionary loads and creates a dictionary from the embedded
// dictionary.json.
func LoadDictionary() (*Dictionary, error) {
	entries, err := Load[[]Entry]("dictionary.json")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("no entries loaded from dictionary.json")
	}
	return NewDictionary(entries), nil
}

// MustLoadDictionary loads a dictionary, panicking on error.
func MustLoadDictionary() *Dictionary {
	d, err := LoadDictionary()
	if err != nil {
		panic(err)
	}
	return d
}

// Spell reports whether the word appears in the dictionary.
func (d *Dictionary) Spell(word string) bool {
	_, ok := d.entries[word]
	return ok
}

// BaseForm returns the recorded base form of word under the given category.
func (d *Dictionary) BaseForm(word string, c Category) (string, bool) {
	e, ok := d.entries[word]
	if !ok {
		return "", false
	}
	base, ok := e.Base[c.String()]
	if !ok || base == "" {
		return "", false
	}
	return base, true
}

// ExistsAs reports whether the word exists as the given category.
func (d *Dictionary) ExistsAs(word string, c Category) bool {
	e, ok := d.entries[word]
	if !ok {
		return false
	}
	name := c.String()
	for _, p := range e.POS {
		if p == name {
			return true
		}
	}
	return false
}

// Stems returns the stemmer output recorded for the word.
func (d *Dictionary) Stems(word string) []string {
	e, ok := d.entries[word]
	if !ok {
		return nil
	}
	return e.Stems
}

// RandomSeed picks a random 3-letter word suitable for starting a game.
func (d *Dictionary) RandomSeed(rng *rand.Rand) (string, error) {
	if len(d.seeds) == 0 {
		return "", errors.New("dictionary has no 3-letter seed words")
	}
	return d.seeds[rng.Intn(len(d.seeds))], nil
}

// Count returns the number of words in the dictionary.
func (d *Dictionary) Count() int {
	return len(d.entries)
}
