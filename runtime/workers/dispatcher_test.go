package workers

import (
	"context"
	"errors"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"hangman-bot/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchWorker_CommandGoesToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	plugin := mocks.NewMockPlugin(ctrl)
	msg := domain.NewIncomingMessage("chat-1", "alice", ".ahorcado", time.Now())

	// Given a plugin owns the command
	registry.EXPECT().Lookup("ahorcado").Return(plugin, true).Times(1)

	// Then only its Handle is called, hooks are skipped
	plugin.EXPECT().Handle(gomock.Any(), domain.Command{Name: "ahorcado", Args: []string{}, Message: msg}).Return(nil).Times(1)
	registry.EXPECT().Plugins().Times(0)

	NewDispatchWorker(registry, nil, domain.DefaultPrefixes, log).Dispatch(context.Background(), msg)
}

func TestDispatchWorker_HooksStopAtFirstHandled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	first := mocks.NewMockPlugin(ctrl)
	second := mocks.NewMockPlugin(ctrl)
	third := mocks.NewMockPlugin(ctrl)
	msg := domain.NewIncomingMessage("chat-1", "alice", "a", time.Now())

	registry.EXPECT().Plugins().Return([]contract.Plugin{first, second, third}).Times(1)
	gomock.InOrder(
		first.EXPECT().Before(gomock.Any(), msg).Return(false, nil),
		second.EXPECT().Before(gomock.Any(), msg).Return(true, nil),
	)
	third.EXPECT().Before(gomock.Any(), gomock.Any()).Times(0)

	NewDispatchWorker(registry, nil, domain.DefaultPrefixes, log).Dispatch(context.Background(), msg)
}

func TestDispatchWorker_UnknownCommandFallsBackToHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	plugin := mocks.NewMockPlugin(ctrl)
	msg := domain.NewIncomingMessage("chat-1", "alice", ".menu", time.Now())

	registry.EXPECT().Lookup("menu").Return(nil, false).Times(1)
	registry.EXPECT().Plugins().Return([]contract.Plugin{plugin}).Times(1)
	plugin.EXPECT().Before(gomock.Any(), msg).Return(false, errors.New("boom")).Times(1)
	plugin.EXPECT().Name().Return("hangman").AnyTimes()

	NewDispatchWorker(registry, nil, domain.DefaultPrefixes, log).Dispatch(context.Background(), msg)
}

func TestDispatchWorker_Run_StopsWhenChannelCloses(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	plugin := mocks.NewMockPlugin(ctrl)

	messages := make(chan domain.IncomingMessage, 2)
	messages <- domain.NewIncomingMessage("chat-1", "alice", "a", time.Now())
	messages <- domain.NewIncomingMessage("chat-1", "alice", "b", time.Now())
	close(messages)

	registry.EXPECT().Plugins().Return([]contract.Plugin{plugin}).Times(2)
	plugin.EXPECT().Before(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	worker := NewDispatchWorker(registry, messages, domain.DefaultPrefixes, log)
	err := worker.Run(context.Background())
	req.NoError(err)

	// Then the drained signal is raised
	select {
	case <-worker.Done():
	default:
		t.Fatal("dispatcher not marked as drained")
	}
}
