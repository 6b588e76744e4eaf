package workers

import (
	"context"
	"errors"
	"hangman-bot/domain"
	"hangman-bot/repositories"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type recordingExpirer struct {
	expired []domain.GameSession
	err     error
}

func (r *recordingExpirer) Expire(_ context.Context, session domain.GameSession) error {
	r.expired = append(r.expired, session)
	return r.err
}

func TestJanitorWorker_Sweep(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sessions := repositories.NewSessionRepository()
	now := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

	req.NoError(sessions.Create(domain.NewGameSession("idle", "chat-1", "rana", domain.MaxAttempts, now.Add(-20*time.Minute))))
	req.NoError(sessions.Create(domain.NewGameSession("active", "chat-1", "gato", domain.MaxAttempts, now.Add(-time.Minute))))

	expirer := &recordingExpirer{err: errors.New("messenger down")}
	janitor := NewJanitorWorker(log, sessions, expirer, 10*time.Minute, time.Minute)
	janitor.clock = func() time.Time { return now }

	// When the janitor sweeps
	req.Equal(1, janitor.Sweep(context.Background()))

	// Then only the idle game is expired, even if the notification fails
	req.Len(expirer.expired, 1)
	req.Equal("idle", expirer.expired[0].SenderID)
	req.False(sessions.Has("idle"))
	req.True(sessions.Has("active"))

	// And a second sweep finds nothing
	req.Zero(janitor.Sweep(context.Background()))
}

func TestJanitorWorker_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sessions := repositories.NewSessionRepository()
	req.NoError(sessions.Create(domain.NewGameSession("idle", "chat-1", "rana", domain.MaxAttempts, time.Now().Add(-time.Hour))))

	expirer := &recordingExpirer{}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := NewJanitorWorker(log, sessions, expirer, time.Minute, 10*time.Millisecond).Run(ctx)

	req.ErrorIs(err, context.DeadlineExceeded)
	req.False(sessions.Has("idle"))
	req.Len(expirer.expired, 1)
}
