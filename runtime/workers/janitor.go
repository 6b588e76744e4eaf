package workers

import (
	"context"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"hangman-bot/repositories"
	"log/slog"
	"time"
)

var _ contract.Worker = (*JanitorWorker)(nil)

// SessionExpirer closes a game removed for inactivity.
type SessionExpirer interface {
	Expire(ctx context.Context, session domain.GameSession) error
}

// JanitorWorker periodically removes games idle for longer than the ttl.
type JanitorWorker struct {
	log      *slog.Logger
	sessions repositories.ISessionRepository
	expirer  SessionExpirer
	ttl      time.Duration
	interval time.Duration
	clock    func() time.Time
}

func NewJanitorWorker(
	log *slog.Logger,
	sessions repositories.ISessionRepository,
	expirer SessionExpirer,
	ttl, interval time.Duration) *JanitorWorker {
	return &JanitorWorker{
		log:      log,
		sessions: sessions,
		expirer:  expirer,
		ttl:      ttl,
		interval: interval,
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

func (w *JanitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep expires every idle game once and returns how many were removed.
func (w *JanitorWorker) Sweep(ctx context.Context) int {
	expired := w.sessions.RemoveIdle(w.clock().Add(-w.ttl))
	for _, session := range expired {
		if err := w.expirer.Expire(ctx, session); err != nil {
			w.log.Warn("Failed to notify expired game", "sender", session.SenderID, "error", err)
		}
	}
	if len(expired) > 0 {
		w.log.Info("Idle games expired", "count", len(expired))
	}
	return len(expired)
}
