// Package hangman is the "ahorcado" chat game: one game per sender,
// single-letter guesses, exp awarded on a win.
package hangman

import (
	"context"
	"errors"
	"fmt"
	"hangman-bot/contract"
	"hangman-bot/domain"
	hangmanerrors "hangman-bot/errors"
	"hangman-bot/repositories"
	"log/slog"
	"time"
)

var _ contract.Plugin = (*Plugin)(nil)

type Config struct {
	MaxAttempts int
	// ForfeitOnNoise ends a running game on any message that isn't a single letter.
	ForfeitOnNoise bool
}

type Plugin struct {
	log       *slog.Logger
	sessions  repositories.ISessionRepository
	users     repositories.IUserRepository
	games     repositories.IGameRepository
	messenger contract.Messenger
	words     domain.WordList
	rng       domain.Random
	clock     func() time.Time
	config    Config
}

func NewPlugin(
	log *slog.Logger,
	sessions repositories.ISessionRepository,
	users repositories.IUserRepository,
	games repositories.IGameRepository,
	messenger contract.Messenger,
	words domain.WordList,
	rng domain.Random,
	config Config) *Plugin {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = domain.MaxAttempts
	}
	return &Plugin{
		log:       log,
		sessions:  sessions,
		users:     users,
		games:     games,
		messenger: messenger,
		words:     words,
		rng:       rng,
		clock:     func() time.Time { return time.Now().UTC() },
		config:    config,
	}
}

// WithClock replaces the time source, for tests.
func (p *Plugin) WithClock(clock func() time.Time) *Plugin {
	p.clock = clock
	return p
}

func (p *Plugin) Name() string { return "hangman" }

func (p *Plugin) Commands() []string { return []string{"ahorcado", "hangman"} }

// Handle starts a new game for the sender, unless one is already running.
func (p *Plugin) Handle(ctx context.Context, cmd domain.Command) error {
	msg := cmd.Message
	if p.sessions.Has(msg.SenderID) {
		return p.reply(ctx, msg, alreadyInProgressText)
	}

	session := domain.NewGameSession(msg.SenderID, msg.Chat, p.words.Pick(p.rng), p.config.MaxAttempts, p.clock())
	if err := p.sessions.Create(session); err != nil {
		if errors.Is(err, hangmanerrors.ErrSessionAlreadyExists) {
			return p.reply(ctx, msg, alreadyInProgressText)
		}
		return fmt.Errorf("create game: %w", err)
	}

	p.log.Info("Game started", "sender", msg.SenderID, "chat", msg.Chat, "game", session.ID, "length", len([]rune(session.Word)))
	return p.reply(ctx, msg, startMessage(session))
}

// Before plays one turn when the sender has a game running.
// It returns false when there is no game or when the message is ignored noise.
func (p *Plugin) Before(ctx context.Context, msg domain.IncomingMessage) (bool, error) {
	session, ok := p.sessions.Get(msg.SenderID)
	if !ok {
		return false, nil
	}

	input := domain.ParseInput(msg.Text)
	now := p.clock()
	outcome := domain.Resolve(session, input, p.config.ForfeitOnNoise, now)

	switch outcome.Status {
	case domain.InProgress:
		if outcome.Ignored {
			return false, nil
		}
		if err := p.sessions.Save(outcome.Session); err != nil {
			if errors.Is(err, hangmanerrors.ErrSessionNotFound) {
				p.log.Debug("Game ended while playing a turn", "sender", msg.SenderID, "game", session.ID)
				return true, nil
			}
			return true, fmt.Errorf("save game: %w", err)
		}
		return true, p.reply(ctx, msg, progressMessage(outcome, input.Letter))

	case domain.Won:
		if !p.claim(session) {
			return true, nil
		}
		exp := domain.ExpReward(outcome.Session.Word, p.rng)
		if total, err := p.users.AddExp(msg.SenderID, exp); err != nil {
			p.log.Error("Failed to award exp", "sender", msg.SenderID, "exp", exp, "error", err)
		} else {
			p.log.Info("Game won", "sender", msg.SenderID, "exp", exp, "total", total)
		}
		p.record(outcome.Session, domain.Won, exp, now)
		return true, p.reply(ctx, msg, wonMessage(outcome.Session.Word, exp))

	case domain.Lost:
		if !p.claim(session) {
			return true, nil
		}
		p.log.Info("Game lost", "sender", msg.SenderID, "word", outcome.Session.Word)
		p.record(outcome.Session, domain.Lost, 0, now)
		return true, p.reply(ctx, msg, lostMessage(outcome.Session))

	default:
		if !p.claim(session) {
			return true, nil
		}
		p.log.Info("Game forfeited", "sender", msg.SenderID, "word", outcome.Session.Word)
		p.record(outcome.Session, domain.Forfeited, 0, now)
		return true, p.reply(ctx, msg, forfeitMessage(outcome.Session.Word))
	}
}

// claim removes the game this turn was played on. It returns false when the
// janitor expired it in the meantime: the game was already closed and recorded.
func (p *Plugin) claim(session domain.GameSession) bool {
	removed, ok := p.sessions.Remove(session.SenderID)
	if !ok || removed.ID != session.ID {
		p.log.Debug("Game ended while playing a turn", "sender", session.SenderID, "game", session.ID)
		return false
	}
	return true
}

// Expire closes a game the janitor already removed for inactivity.
func (p *Plugin) Expire(ctx context.Context, session domain.GameSession) error {
	p.log.Info("Game expired", "sender", session.SenderID, "idle_since", session.UpdatedAt)
	p.record(session, domain.Expired, 0, p.clock())
	return p.messenger.Reply(ctx, domain.Reply{Chat: session.Chat, Text: expiredMessage(session.Word)})
}

// record keeps the game history. A storage failure must not cost the player the reply.
func (p *Plugin) record(session domain.GameSession, status domain.Status, exp int64, endedAt time.Time) {
	if err := p.games.StoreGame(domain.NewGameRecord(session, status, exp, endedAt)); err != nil {
		p.log.Error("Failed to store game", "game", session.ID, "error", err)
	}
}

func (p *Plugin) reply(ctx context.Context, msg domain.IncomingMessage, text string) error {
	return p.messenger.Reply(ctx, domain.Reply{Chat: msg.Chat, Text: text, QuotedID: msg.ID})
}
