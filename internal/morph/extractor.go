// Package morph extracts the morphological roots of a word so that
// inflected variants of an already-played word cannot score twice.
package morph

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rattrap/internal/lexicon"
	"github.com/samdwyer/rattrap/internal/telemetry"
)

// MaxWordLen bounds input words. Anything longer is rejected before any
// oracle query is made.
const MaxWordLen = 127

// Root identifies a morphological base form. Multiple words can map to
// the same root; a word maps to zero or more roots.
type Root string

// Set is a set of roots keyed by value.
type Set map[Root]struct{}

// NewSet builds a Set from root literals.
func NewSet(roots ...string) Set {
	s := make(Set, len(roots))
	for _, r := range roots {
		s[Root(r)] = struct{}{}
	}
	return s
}

// Extractor resolves words to their roots using an injected lexicon.
type Extractor struct {
	lex lexicon.Lexicon
}

// NewExtractor creates an extractor backed by the given lexicon.
func NewExtractor(lex lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Roots returns the set of roots the word could derive from. An unknown
// word yields an empty set and no error; a word that is not lowercase
// alphabetic, or longer than MaxWordLen, is an input-validation error.
//
// Two stages: first each grammatical category is asked for the word's
// base form. If some category reports the word is already a base form
// there, a single stemming query runs as a fallback so that canonical
// words still receive a root.
func (e *Extractor) Roots(ctx context.Context, raw string) (Set, error) {
	tracer := telemetry.Tracer("morph")
	_, span := tracer.Start(ctx, "morph.roots")
	defer span.End()

	if len(raw) > MaxWordLen {
		return nil, fmt.Errorf("word exceeds %d characters", MaxWordLen)
	}
	literal, ok := lexicon.Normalize(raw)
	if !ok {
		return nil, fmt.Errorf("word %q is not alphabetic", raw)
	}

	roots := make(Set)
	if !e.lex.Spell(literal) {
		span.SetAttributes(attribute.Bool("morph.spelled", false))
		return roots, nil
	}

	shouldStem := false
	for _, c := range lexicon.Categories {
		base, found := e.lex.BaseForm(literal, c)
		if !found {
			// already a base form under this category; confirm the word
			// exists there before falling back to the stemmer
			if e.lex.ExistsAs(literal, c) {
				shouldStem = true
			}
			continue
		}
		roots[Root(base)] = struct{}{}
	}

	if shouldStem {
		for _, stem := range e.lex.Stems(literal) {
			roots[Root(stem)] = struct{}{}
		}
	}

	span.SetAttributes(
		attribute.Bool("morph.spelled", true),
		attribute.Int("morph.roots", len(roots)),
	)
	return roots, nil
}
