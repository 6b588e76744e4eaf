package console

import (
	"bytes"
	"context"
	"hangman-bot/domain"
	"hangman-bot/errors"
	"hangman-bot/mocks"
	"hangman-bot/moderation"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseLine(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

	msg, err := ParseLine("alice: .ahorcado", at)
	req.NoError(err)
	req.Equal("alice", msg.SenderID)
	req.Equal("alice", msg.Chat)
	req.Equal(".ahorcado", msg.Text)
	req.Equal(at, msg.CreatedAt)

	// Only the first colon separates the sender
	msg, err = ParseLine(" bob :  hora: 10:30 ", at)
	req.NoError(err)
	req.Equal("bob", msg.SenderID)
	req.Equal("hora: 10:30", msg.Text)

	_, err = ParseLine("no separator", at)
	req.ErrorIs(err, errors.ErrInvalidLine)

	_, err = ParseLine("  : a", at)
	req.ErrorIs(err, errors.ErrEmptySender)
}

func TestSource_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	orchestrator := mocks.NewMockIOrchestrator(gomock.NewController(t))
	input := strings.NewReader("alice: .ahorcado\n\ngarbage\nalice: a\n")

	// Then blank and malformed lines are skipped
	var texts []string
	orchestrator.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(msg domain.IncomingMessage) bool {
			texts = append(texts, msg.Text)
			return true
		}).Times(2)

	err := NewSource(log, input, orchestrator).Run(context.Background())

	req.NoError(err)
	req.Equal([]string{".ahorcado", "a"}, texts)
}

func TestMessenger_Reply(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	err := NewMessenger(&out, false).Reply(context.Background(), domain.Reply{Chat: "alice", Text: "r _ _ _\n"})

	req.NoError(err)
	req.Equal("[bot → alice]\nr _ _ _\n\n", out.String())
}

func TestSource_Run_CensorsMessages(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	orchestrator := mocks.NewMockIOrchestrator(gomock.NewController(t))
	moderator, err := moderation.NewModerator([]string{"tonto"}, '*', log)
	req.NoError(err)
	input := strings.NewReader("alice: eres un t0nt0\nalice: t\nalice: me rindo\n")

	var texts []string
	orchestrator.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(msg domain.IncomingMessage) bool {
			texts = append(texts, msg.Text)
			return true
		}).Times(3)

	err = NewSource(log, input, orchestrator).WithCensor(&moderator).Run(context.Background())

	// Then forbidden words are masked while guesses and keywords pass untouched
	req.NoError(err)
	req.Equal([]string{"eres un *****", "t", "me rindo"}, texts)
}
