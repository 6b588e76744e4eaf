package hangman

import (
	"context"
	"fmt"
	"hangman-bot/domain"
	hangmanerrors "hangman-bot/errors"
	"hangman-bot/mocks"
	"hangman-bot/repositories"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedRandom struct {
	n int64
}

func (f fixedRandom) IntN(n int) int       { return int(f.n) % n }
func (f fixedRandom) Int64N(n int64) int64 { return f.n % n }

// fixture wires a plugin on a real session repository with mocked collaborators.
type fixture struct {
	plugin   *Plugin
	sessions *repositories.SessionRepository
	users    *mocks.MockIUserRepository
	games    *mocks.MockIGameRepository
	replies  []domain.Reply
	now      time.Time
}

func newFixture(t *testing.T, words []string, rng domain.Random, config Config) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	list, err := domain.NewWordList(words)
	require.NoError(t, err)

	f := &fixture{
		sessions: repositories.NewSessionRepository(),
		users:    mocks.NewMockIUserRepository(ctrl),
		games:    mocks.NewMockIGameRepository(ctrl),
		now:      time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC),
	}
	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().Reply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reply domain.Reply) error {
			f.replies = append(f.replies, reply)
			return nil
		}).AnyTimes()

	f.plugin = NewPlugin(log, f.sessions, f.users, f.games, messenger, list, rng, config).
		WithClock(func() time.Time { return f.now })
	return f
}

func (f *fixture) start(t *testing.T, sender string) {
	t.Helper()
	msg := domain.NewIncomingMessage("chat-1", sender, ".ahorcado", f.now)
	cmd, ok := domain.ParseCommand(msg, domain.DefaultPrefixes)
	require.True(t, ok)
	require.NoError(t, f.plugin.Handle(context.Background(), cmd))
}

func (f *fixture) send(t *testing.T, sender, text string) bool {
	t.Helper()
	handled, err := f.plugin.Before(context.Background(), domain.NewIncomingMessage("chat-1", sender, text, f.now))
	require.NoError(t, err)
	return handled
}

func (f *fixture) lastReply() string {
	return f.replies[len(f.replies)-1].Text
}

func TestPlugin_Start(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"rana"}, fixedRandom{}, Config{ForfeitOnNoise: true})

	f.start(t, "alice")

	session, ok := f.sessions.Get("alice")
	req.True(ok)
	req.Equal("rana", session.Word)
	req.Equal(domain.MaxAttempts, session.RemainingAttempts)
	req.Len(f.replies, 1)
	req.Equal("chat-1", f.replies[0].Chat)
	req.Contains(f.lastReply(), "_ _ _ _")
	req.Contains(f.lastReply(), "Intentos restantes: 6")
	req.Equal([]string{"ahorcado", "hangman"}, f.plugin.Commands())
}

func TestPlugin_Start_AlreadyInProgress_KeepsFirstGame(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"rana", "cocodrilo"}, fixedRandom{}, Config{ForfeitOnNoise: true})

	// Given a game with one letter played
	f.start(t, "alice")
	req.True(f.send(t, "alice", "r"))
	before, _ := f.sessions.Get("alice")

	// When a second game is requested
	f.plugin.rng = fixedRandom{n: 1}
	f.start(t, "alice")

	// Then the first game is untouched
	after, _ := f.sessions.Get("alice")
	req.Equal(before, after)
	req.Equal(alreadyInProgressText, f.lastReply())
}

func TestPlugin_Rana_Won(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"rana"}, fixedRandom{n: 200}, Config{ForfeitOnNoise: true})

	f.users.EXPECT().AddExp("alice", int64(200)).Return(int64(1200), nil).Times(1)
	f.games.EXPECT().StoreGame(gomock.Any()).
		Do(func(record domain.GameRecord) {
			req.Equal(domain.Won, record.Status)
			req.Equal("rana", record.Word)
			req.Equal(int64(200), record.Exp)
			req.Zero(record.WrongGuesses)
		}).Return(nil).Times(1)

	f.start(t, "alice")

	req.True(f.send(t, "alice", "r"))
	req.Contains(f.lastReply(), "r _ _ _")

	req.True(f.send(t, "alice", "A"))
	req.Contains(f.lastReply(), "r a _ a")

	req.True(f.send(t, "alice", "n"))
	req.Equal(wonMessage("rana", 200), f.lastReply())
	req.False(f.sessions.Has("alice"))
}

func TestPlugin_Won_RewardBounds(t *testing.T) {
	req := require.New(t)

	for _, tt := range []struct {
		word string
		max  int64
	}{{"rana", domain.ShortWordMaxExp}, {"cocodrilo", domain.LongWordMaxExp}} {
		f := newFixture(t, []string{tt.word}, domain.NewRandom(7), Config{ForfeitOnNoise: true})
		f.users.EXPECT().AddExp("alice", gomock.Any()).
			DoAndReturn(func(_ string, amount int64) (int64, error) {
				req.GreaterOrEqual(amount, int64(0))
				req.Less(amount, tt.max)
				return amount, nil
			}).Times(1)
		f.games.EXPECT().StoreGame(gomock.Any()).Return(nil).Times(1)

		f.start(t, "alice")
		for _, letter := range tt.word {
			f.send(t, "alice", string(letter))
		}
		req.False(f.sessions.Has("alice"))
	}
}

func TestPlugin_Cocodrilo_Lost(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"cocodrilo"}, fixedRandom{}, Config{ForfeitOnNoise: true})

	f.games.EXPECT().StoreGame(gomock.Any()).
		Do(func(record domain.GameRecord) {
			req.Equal(domain.Lost, record.Status)
			req.Equal(domain.MaxAttempts, record.WrongGuesses)
		}).Return(nil).Times(1)

	f.start(t, "bob")
	for i, letter := range []string{"z", "x", "y", "v", "w", "q"} {
		req.True(f.send(t, "bob", letter))
		if i < 5 {
			req.Contains(f.lastReply(), fmt.Sprintf("Intentos restantes: %d", domain.MaxAttempts-i-1))
		}
	}

	req.False(f.sessions.Has("bob"))
	req.Contains(f.lastReply(), "¡Perdiste!")
	req.Contains(f.lastReply(), "cocodrilo")
}

func TestPlugin_RepeatedGuess_CostsNothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"perro"}, fixedRandom{}, Config{ForfeitOnNoise: true})

	f.start(t, "alice")
	f.send(t, "alice", "p")
	f.send(t, "alice", "z")
	before, _ := f.sessions.Get("alice")

	req.True(f.send(t, "alice", "p"))
	req.True(f.send(t, "alice", "z"))

	after, _ := f.sessions.Get("alice")
	req.Equal(before, after)
	req.Contains(f.lastReply(), "Ya intentaste la letra *z*")
	req.Contains(f.lastReply(), "Intentos restantes: 5")

	// A repeated letter keeps the game alive for the janitor
	f.now = f.now.Add(5 * time.Minute)
	req.True(f.send(t, "alice", "p"))
	after, _ = f.sessions.Get("alice")
	req.Equal(f.now, after.UpdatedAt)
	req.Equal(before.RemainingAttempts, after.RemainingAttempts)
}

func TestPlugin_TurnOnExpiredGame_IsNotScored(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sessions := mocks.NewMockISessionRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	games := mocks.NewMockIGameRepository(ctrl)
	messenger := mocks.NewMockMessenger(ctrl)
	words, err := domain.NewWordList([]string{"oso"})
	req.NoError(err)
	now := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

	session := domain.NewGameSession("alice", "chat-1", "oso", domain.MaxAttempts, now)
	session.Guessed['o'] = struct{}{}

	// Given the janitor expires the game between reading it and closing it
	sessions.EXPECT().Get("alice").Return(session, true).Times(1)
	sessions.EXPECT().Remove("alice").Return(domain.GameSession{}, false).Times(1)

	// Then the winning letter awards nothing, records nothing and stays silent
	users.EXPECT().AddExp(gomock.Any(), gomock.Any()).Times(0)
	games.EXPECT().StoreGame(gomock.Any()).Times(0)
	messenger.EXPECT().Reply(gomock.Any(), gomock.Any()).Times(0)

	plugin := NewPlugin(log, sessions, users, games, messenger, words, fixedRandom{n: 10}, Config{ForfeitOnNoise: true})
	handled, err := plugin.Before(context.Background(), domain.NewIncomingMessage("chat-1", "alice", "s", now))

	req.NoError(err)
	req.True(handled)
}

func TestPlugin_GuessOnExpiredGame_IsDropped(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sessions := mocks.NewMockISessionRepository(ctrl)
	messenger := mocks.NewMockMessenger(ctrl)
	words, err := domain.NewWordList([]string{"gato"})
	req.NoError(err)
	now := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)

	sessions.EXPECT().Get("alice").
		Return(domain.NewGameSession("alice", "chat-1", "gato", domain.MaxAttempts, now), true).Times(1)
	sessions.EXPECT().Save(gomock.Any()).Return(hangmanerrors.ErrSessionNotFound).Times(1)
	messenger.EXPECT().Reply(gomock.Any(), gomock.Any()).Times(0)

	plugin := NewPlugin(log, sessions, mocks.NewMockIUserRepository(ctrl), mocks.NewMockIGameRepository(ctrl),
		messenger, words, fixedRandom{}, Config{ForfeitOnNoise: true})
	handled, err := plugin.Before(context.Background(), domain.NewIncomingMessage("chat-1", "alice", "g", now))

	req.NoError(err)
	req.True(handled)
}

func TestPlugin_Noise_ForfeitsByDefault(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"gato"}, fixedRandom{}, Config{ForfeitOnNoise: true})
	f.games.EXPECT().StoreGame(gomock.Any()).
		Do(func(record domain.GameRecord) {
			req.Equal(domain.Forfeited, record.Status)
		}).Return(nil).Times(1)

	f.start(t, "alice")
	req.True(f.send(t, "alice", "hola a todos"))

	req.False(f.sessions.Has("alice"))
	req.Equal(forfeitMessage("gato"), f.lastReply())
}

func TestPlugin_Noise_IgnoredWhenPolicyDisabled(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"gato"}, fixedRandom{}, Config{ForfeitOnNoise: false})

	f.start(t, "alice")
	replies := len(f.replies)

	// Noise is passed through
	req.False(f.send(t, "alice", "hola a todos"))
	req.True(f.sessions.Has("alice"))
	req.Len(f.replies, replies)

	// An explicit forfeit still ends the game
	f.games.EXPECT().StoreGame(gomock.Any()).Return(nil).Times(1)
	req.True(f.send(t, "alice", "me rindo"))
	req.False(f.sessions.Has("alice"))
}

func TestPlugin_Before_WithoutGame(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"gato"}, fixedRandom{}, Config{ForfeitOnNoise: true})

	req.False(f.send(t, "nobody", "a"))
	req.Empty(f.replies)
}

func TestPlugin_Won_ExpFailureStillReplies(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"oso"}, fixedRandom{n: 10}, Config{ForfeitOnNoise: true})
	f.users.EXPECT().AddExp("alice", int64(10)).Return(int64(0), fmt.Errorf("disk full")).Times(1)
	f.games.EXPECT().StoreGame(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)

	f.start(t, "alice")
	f.send(t, "alice", "o")
	f.send(t, "alice", "s")

	req.False(f.sessions.Has("alice"))
	req.Equal(wonMessage("oso", 10), f.lastReply())
}

func TestPlugin_Expire(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, []string{"gato"}, fixedRandom{}, Config{ForfeitOnNoise: true})
	f.games.EXPECT().StoreGame(gomock.Any()).
		Do(func(record domain.GameRecord) {
			req.Equal(domain.Expired, record.Status)
		}).Return(nil).Times(1)

	session := domain.NewGameSession("alice", "chat-9", "gato", domain.MaxAttempts, f.now)
	req.NoError(f.plugin.Expire(context.Background(), session))

	req.Equal("chat-9", f.replies[0].Chat)
	req.Equal(expiredMessage("gato"), f.lastReply())
}
