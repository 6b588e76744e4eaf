package domain

import "time"

// Outcome is the result of applying one input to a session.
// Session holds the updated copy; the input session is never mutated.
type Outcome struct {
	Session  GameSession
	Status   Status
	Hit      bool // the guessed letter is in the word
	Repeated bool // the letter had already been guessed, nothing changed
	Ignored  bool // noise that does not end the game
}

// Resolve applies an input to a game.
// Noise forfeits the game when forfeitOnNoise is set and is ignored otherwise.
func Resolve(session GameSession, in Input, forfeitOnNoise bool, now time.Time) Outcome {
	next := session.Clone()

	switch in.Kind {
	case Forfeit:
		return Outcome{Session: next, Status: Forfeited}
	case Noise:
		if forfeitOnNoise {
			return Outcome{Session: next, Status: Forfeited}
		}
		return Outcome{Session: next, Status: InProgress, Ignored: true}
	}

	// A repeated letter costs nothing but still counts as activity.
	if next.HasGuessed(in.Letter) {
		next.UpdatedAt = now
		return Outcome{Session: next, Status: InProgress, Repeated: true}
	}

	next.Guessed[in.Letter] = struct{}{}
	next.UpdatedAt = now
	hit := containsRune(next.Word, in.Letter)
	if !hit && next.RemainingAttempts > 0 {
		next.RemainingAttempts--
	}

	switch {
	case next.IsRevealed():
		return Outcome{Session: next, Status: Won, Hit: hit}
	case next.RemainingAttempts == 0:
		return Outcome{Session: next, Status: Lost, Hit: hit}
	default:
		return Outcome{Session: next, Status: InProgress, Hit: hit}
	}
}

func containsRune(word string, letter rune) bool {
	for _, r := range word {
		if r == letter {
			return true
		}
	}
	return false
}
