package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameRecord is the history entry written when a game ends.
type GameRecord struct {
	ID           uuid.UUID
	SenderID     string
	Chat         string
	Word         string
	Status       Status
	WrongGuesses int
	Exp          int64
	StartedAt    time.Time
	EndedAt      time.Time
}

func NewGameRecord(session GameSession, status Status, exp int64, endedAt time.Time) GameRecord {
	return GameRecord{
		ID:           session.ID,
		SenderID:     session.SenderID,
		Chat:         session.Chat,
		Word:         session.Word,
		Status:       status,
		WrongGuesses: session.WrongGuesses(),
		Exp:          exp,
		StartedAt:    session.StartedAt,
		EndedAt:      endedAt,
	}
}
