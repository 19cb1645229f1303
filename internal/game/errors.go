package game

import "fmt"

// RoundErrorReason classifies why a round submission was rejected.
// All reasons are recoverable; the session is untouched and the player
// retries with corrected input.
type RoundErrorReason int

const (
	// NotInPlay: the chosen word is not in the current set.
	NotInPlay RoundErrorReason = iota
	// EmptySubmission: no candidate words were given.
	EmptySubmission
	// MalformedCandidate: a candidate is not alphabetic or is shorter
	// than three letters.
	MalformedCandidate
	// NotAValidExtension: the candidates do not spell the chosen word
	// plus exactly one extra letter.
	NotAValidExtension
	// NotARecognizedWord: a candidate has no roots, so it is not a
	// dictionary word.
	NotARecognizedWord
	// RootAlreadyUsed: a candidate's root was already credited, either
	// in a prior round or earlier in this one.
	RootAlreadyUsed
)

// String returns the reason name.
func (r RoundErrorReason) String() string {
	switch r {
	case NotInPlay:
		return "not_in_play"
	case EmptySubmission:
		return "empty_submission"
	case MalformedCandidate:
		return "malformed_candidate"
	case NotAValidExtension:
		return "not_a_valid_extension"
	case NotARecognizedWord:
		return "not_a_recognized_word"
	case RootAlreadyUsed:
		return "root_already_used"
	default:
		return "unknown"
	}
}

// RoundError is a rejected round submission. Word names the offending
// word where one exists.
type RoundError struct {
	Reason RoundErrorReason
	Word   string
}

func (e *RoundError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Word)
	}
	return e.Reason.String()
}

// Message returns the player-facing text for the error.
func (e *RoundError) Message() string {
	switch e.Reason {
	case NotInPlay:
		return fmt.Sprintf("'%s' is not a current word.", e.Word)
	case EmptySubmission:
		return "Need at least one word..."
	case MalformedCandidate:
		return fmt.Sprintf("'%s' is not alpha/too short", e.Word)
	case NotAValidExtension:
		return "Not a valid anagram + extra letter"
	case NotARecognizedWord:
		return fmt.Sprintf("'%s' isn't a valid word", e.Word)
	case RootAlreadyUsed:
		return fmt.Sprintf("'%s' already used previously", e.Word)
	default:
		return "Invalid entry"
	}
}
