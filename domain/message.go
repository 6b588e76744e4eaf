// Package domain contains core concepts of the hangman game.
// This file defines inbound chat messages and the replies sent back.
// Messages are immutable once built by a transport.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// IncomingMessage is a chat message as delivered by the host.
type IncomingMessage struct {
	ID        uuid.UUID // unique identifier, quoted by replies
	Chat      string
	SenderID  string
	Text      string
	CreatedAt time.Time
}

// Reply is a text sent back into a chat, optionally quoting the message it answers.
type Reply struct {
	Chat     string
	Text     string
	QuotedID uuid.UUID
}

func NewIncomingMessage(chat, senderID, text string, at time.Time) IncomingMessage {
	return IncomingMessage{
		ID:        uuid.New(),
		Chat:      chat,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: at,
	}
}
