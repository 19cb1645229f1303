package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rattrap/internal/lexicon"
	"github.com/samdwyer/rattrap/internal/morph"
	"github.com/samdwyer/rattrap/internal/telemetry"
	"github.com/samdwyer/rattrap/internal/word"
)

// minCandidateLen is the shortest candidate the game accepts. It is also
// the scoring baseline: a candidate earns its length minus this.
const minCandidateLen = 3

// RoundResult is the outcome of a successfully validated round, ready to
// be committed with Session.ApplyRound.
type RoundResult struct {
	ScoreDelta int
	NewRoots   morph.Set
	Candidates []word.Word
}

// ValidateRound checks one player submission end to end and computes its
// score. It never mutates the session: on any failure the returned
// *RoundError describes the first precondition that did not hold, and on
// success the caller commits the result with ApplyRound.
//
// The preconditions run in order: the chosen word must be in play, the
// candidate list must be non-empty, every candidate must normalize to a
// lowercase alphabetic word of at least three letters, the candidates
// together must spell the chosen word plus one extra letter, each
// candidate must be a recognized word, and no candidate root may collide
// with an already-used root or with another root claimed this round. A
// single collision rejects the whole round.
//
// Errors other than *RoundError come from the root extractor and are
// fatal to the session.
func ValidateRound(ctx context.Context, s *Session, ex *morph.Extractor, chosen string, candidates []string) (*RoundResult, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "round.validate")
	defer span.End()
	span.SetAttributes(
		attribute.String("round.chosen", chosen),
		attribute.Int("round.candidates", len(candidates)),
	)

	if !s.InPlay(chosen) {
		return nil, &RoundError{Reason: NotInPlay, Word: chosen}
	}
	if len(candidates) == 0 {
		return nil, &RoundError{Reason: EmptySubmission}
	}

	normalized := make([]string, 0, len(candidates))
	for _, c := range candidates {
		n, ok := lexicon.Normalize(c)
		if !ok || len(n) < minCandidateLen {
			return nil, &RoundError{Reason: MalformedCandidate, Word: c}
		}
		normalized = append(normalized, n)
	}

	if !word.IsOneMoreThan(word.New(chosen), normalized) {
		return nil, &RoundError{Reason: NotAValidExtension}
	}

	// Gather every candidate's roots before touching anything, then check
	// for collisions with the session pool and across candidates. Only a
	// conflict-free round produces a result to commit.
	res := &RoundResult{
		NewRoots:   make(morph.Set),
		Candidates: make([]word.Word, 0, len(normalized)),
	}
	for _, c := range normalized {
		roots, err := ex.Roots(ctx, c)
		if err != nil {
			return nil, err
		}
		if len(roots) == 0 {
			return nil, &RoundError{Reason: NotARecognizedWord, Word: c}
		}
		for r := range roots {
			if s.RootUsed(r) {
				return nil, &RoundError{Reason: RootAlreadyUsed, Word: c}
			}
			if _, claimed := res.NewRoots[r]; claimed {
				return nil, &RoundError{Reason: RootAlreadyUsed, Word: c}
			}
			res.NewRoots[r] = struct{}{}
		}
		res.ScoreDelta += len(c) - minCandidateLen
		res.Candidates = append(res.Candidates, word.New(c))
	}

	span.SetAttributes(attribute.Int("round.score_delta", res.ScoreDelta))
	return res, nil
}
