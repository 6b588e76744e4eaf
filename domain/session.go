package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxAttempts is the number of wrong guesses a new game allows.
const MaxAttempts = 6

type Status int

const (
	InProgress Status = iota
	Won
	Lost
	Forfeited
	Expired
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Forfeited:
		return "forfeited"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Finished reports whether the status ends the game.
func (s Status) Finished() bool {
	return s != InProgress
}

// GameSession is the state of one hangman game, keyed by sender.
type GameSession struct {
	ID                uuid.UUID
	SenderID          string
	Chat              string
	Word              string
	Guessed           map[rune]struct{}
	RemainingAttempts int
	MaxAttempts       int
	StartedAt         time.Time
	UpdatedAt         time.Time
}

func NewGameSession(senderID, chat, word string, maxAttempts int, now time.Time) GameSession {
	return GameSession{
		ID:                uuid.New(),
		SenderID:          senderID,
		Chat:              chat,
		Word:              word,
		Guessed:           make(map[rune]struct{}),
		RemainingAttempts: maxAttempts,
		MaxAttempts:       maxAttempts,
		StartedAt:         now,
		UpdatedAt:         now,
	}
}

func (g GameSession) HasGuessed(r rune) bool {
	_, ok := g.Guessed[r]
	return ok
}

// IsRevealed reports whether every letter of the word has been guessed.
func (g GameSession) IsRevealed() bool {
	for _, r := range g.Word {
		if !g.HasGuessed(r) {
			return false
		}
	}
	return true
}

func (g GameSession) WrongGuesses() int {
	return g.MaxAttempts - g.RemainingAttempts
}

// GuessedLetters returns the guessed letters in alphabetical order.
func (g GameSession) GuessedLetters() []rune {
	letters := make([]rune, 0, len(g.Guessed))
	for r := range g.Guessed {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// Clone returns a deep copy, the guessed set included.
func (g GameSession) Clone() GameSession {
	clone := g
	clone.Guessed = make(map[rune]struct{}, len(g.Guessed))
	for r := range g.Guessed {
		clone.Guessed[r] = struct{}{}
	}
	return clone
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) Status {
	for _, status := range []Status{InProgress, Won, Lost, Forfeited, Expired} {
		if status.String() == s {
			return status
		}
	}
	return InProgress
}
