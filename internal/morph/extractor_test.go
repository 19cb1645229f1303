package morph

import (
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/rattrap/internal/lexicon"
)

// fakeLexicon is a deterministic test implementation of lexicon.Lexicon.
type fakeLexicon struct {
	spelled map[string]bool
	bases   map[string]map[lexicon.Category]string
	exists  map[string]map[lexicon.Category]bool
	stems   map[string][]string
}

func newFakeLexicon() *fakeLexicon {
	return &fakeLexicon{
		spelled: map[string]bool{},
		bases:   map[string]map[lexicon.Category]string{},
		exists:  map[string]map[lexicon.Category]bool{},
		stems:   map[string][]string{},
	}
}

func (f *fakeLexicon) Spell(w string) bool { return f.spelled[w] }

func (f *fakeLexicon) BaseForm(w string, c lexicon.Category) (string, bool) {
	b, ok := f.bases[w][c]
	return b, ok && b != ""
}

func (f *fakeLexicon) ExistsAs(w string, c lexicon.Category) bool {
	return f.exists[w][c]
}

func (f *fakeLexicon) Stems(w string) []string { return f.stems[w] }

func TestRootsOfInflectedWord(t *testing.T) {
	lex := newFakeLexicon()
	lex.spelled["cats"] = true
	lex.bases["cats"] = map[lexicon.Category]string{lexicon.Noun: "cat"}

	ex := NewExtractor(lex)
	roots, err := ex.Roots(context.Background(), "cats")
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("Expected 1 root, got %d: %v", len(roots), roots)
	}
	if _, ok := roots[Root("cat")]; !ok {
		t.Errorf("Expected root cat, got %v", roots)
	}
}

func TestRootsStemFallbackForBaseForm(t *testing.T) {
	lex := newFakeLexicon()
	lex.spelled["cat"] = true
	// no base forms anywhere, but the word exists as a noun
	lex.exists["cat"] = map[lexicon.Category]bool{lexicon.Noun: true}
	lex.stems["cat"] = []string{"cat"}

	ex := NewExtractor(lex)
	roots, err := ex.Roots(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}
	if _, ok := roots[Root("cat")]; !ok {
		t.Errorf("Stem fallback should yield root cat, got %v", roots)
	}
}

func TestRootsNoStemWithoutCategoryConfirmation(t *testing.T) {
	lex := newFakeLexicon()
	lex.spelled["qat"] = true
	// spelled, but the morphology oracle knows nothing about it
	lex.stems["qat"] = []string{"qat"}

	ex := NewExtractor(lex)
	roots, err := ex.Roots(context.Background(), "qat")
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}
	if len(roots) != 0 {
		t.Errorf("Stemmer should not run without category confirmation, got %v", roots)
	}
}

func TestRootsMixesBaseFormsAndStems(t *testing.T) {
	lex := newFakeLexicon()
	lex.spelled["tan"] = true
	lex.bases["tan"] = map[lexicon.Category]string{lexicon.Verb: "tan"}
	lex.exists["tan"] = map[lexicon.Category]bool{lexicon.Adjective: true}
	lex.stems["tan"] = []string{"tan", "tawny"}

	ex := NewExtractor(lex)
	roots, err := ex.Roots(context.Background(), "tan")
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}
	want := []Root{"tan", "tawny"}
	for _, r := range want {
		if _, ok := roots[r]; !ok {
			t.Errorf("Missing root %q in %v", r, roots)
		}
	}
	if len(roots) != len(want) {
		t.Errorf("Expected %d roots, got %v", len(want), roots)
	}
}

func TestRootsUnknownWordIsEmpty(t *testing.T) {
	ex := NewExtractor(newFakeLexicon())
	roots, err := ex.Roots(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}
	if len(roots) != 0 {
		t.Errorf("Unspelled word should have no roots, got %v", roots)
	}
}

func TestRootsNormalizesInput(t *testing.T) {
	lex := newFakeLexicon()
	lex.spelled["cats"] = true
	lex.bases["cats"] = map[lexicon.Category]string{lexicon.Noun: "cat"}

	ex := NewExtractor(lex)
	roots, err := ex.Roots(context.Background(), "CaTs")
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}
	if _, ok := roots[Root("cat")]; !ok {
		t.Errorf("Mixed-case input should normalize, got %v", roots)
	}
}

func TestRootsRejectsInvalidInput(t *testing.T) {
	ex := NewExtractor(newFakeLexicon())

	if _, err := ex.Roots(context.Background(), "not a word"); err == nil {
		t.Error("Non-alphabetic input should error")
	}
	if _, err := ex.Roots(context.Background(), "cat1"); err == nil {
		t.Error("Input with digits should error")
	}
	long := strings.Repeat("a", MaxWordLen+1)
	if _, err := ex.Roots(context.Background(), long); err == nil {
		t.Error("Overlength input should error")
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet("cat", "dog", "cat")
	if len(s) != 2 {
		t.Errorf("Expected 2 roots, got %d", len(s))
	}
	if _, ok := s[Root("dog")]; !ok {
		t.Error("Missing root dog")
	}
}
