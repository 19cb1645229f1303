package game

import (
	"sort"

	"github.com/google/uuid"

	"github.com/samdwyer/rattrap/internal/morph"
	"github.com/samdwyer/rattrap/internal/word"
)

// Session is the state of one play session. It is owned by the game loop
// and mutated only through ApplyRound and Finalize, always after a round
// has fully validated.
type Session struct {
	ID        uuid.UUID
	current   map[string]word.Word
	prior     map[string]word.Word
	usedRoots morph.Set
	score     int
	finalized bool
}

// NewSession creates a session holding the seed word in play. The seed's
// roots are merged into the used set immediately so its variants cannot
// score later.
func NewSession(seed string, seedRoots morph.Set) *Session {
	s := &Session{
		ID:        uuid.New(),
		current:   map[string]word.Word{seed: word.New(seed)},
		prior:     map[string]word.Word{},
		usedRoots: make(morph.Set, len(seedRoots)),
	}
	for r := range seedRoots {
		s.usedRoots[r] = struct{}{}
	}
	return s
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// InPlay reports whether the literal is currently in play.
func (s *Session) InPlay(literal string) bool {
	_, ok := s.current[literal]
	return ok
}

// RootUsed reports whether a root has already been credited.
func (s *Session) RootUsed(r morph.Root) bool {
	_, ok := s.usedRoots[r]
	return ok
}

// CurrentWords returns the words in play in literal order.
func (s *Session) CurrentWords() []string {
	return sortedLiterals(s.current)
}

// PriorWords returns the retired words in literal order.
func (s *Session) PriorWords() []string {
	return sortedLiterals(s.prior)
}

// ApplyRound commits a validated round: the chosen word retires, every
// candidate enters play, the new roots and score are merged. Call only
// with the result ValidateRound produced for this session.
func (s *Session) ApplyRound(chosen string, res *RoundResult) {
	delete(s.current, chosen)
	s.prior[chosen] = word.New(chosen)
	for _, c := range res.Candidates {
		s.current[c.Literal] = c
	}
	for r := range res.NewRoots {
		s.usedRoots[r] = struct{}{}
	}
	s.score += res.ScoreDelta
}

// Finalize ends the session: every word still in play earns its length
// minus three as a bonus, with no root check, and the session freezes.
// Returns the final score. Calling it again is a no-op.
func (s *Session) Finalize() int {
	if s.finalized {
		return s.score
	}
	for literal := range s.current {
		s.score += len(literal) - 3
	}
	s.finalized = true
	return s.score
}

// Finalized reports whether the session has ended.
func (s *Session) Finalized() bool {
	return s.finalized
}

func sortedLiterals(words map[string]word.Word) []string {
	out := make([]string, 0, len(words))
	for literal := range words {
		out = append(out, literal)
	}
	sort.Strings(out)
	return out
}
