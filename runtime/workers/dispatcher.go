package workers

import (
	"context"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"log/slog"
	"sync"
)

// Ensure *DispatchWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*DispatchWorker)(nil)

// DispatchWorker hands every inbound message to the plugins, one at a time.
// A single instance runs so a sender's messages are handled in arrival order.
type DispatchWorker struct {
	registry contract.IRegistry
	messages chan domain.IncomingMessage
	prefixes string
	log      *slog.Logger
	done     chan struct{}
	doneOnce sync.Once
}

func NewDispatchWorker(
	registry contract.IRegistry,
	messages chan domain.IncomingMessage,
	prefixes string,
	log *slog.Logger) *DispatchWorker {
	return &DispatchWorker{
		registry: registry,
		messages: messages,
		prefixes: prefixes,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Done is closed once the inbound channel is closed and fully consumed.
func (w *DispatchWorker) Done() <-chan struct{} {
	return w.done
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Channel is closed")
				w.doneOnce.Do(func() { close(w.done) })
				return nil
			}
			w.Dispatch(ctx, msg)
		}
	}
}

// Dispatch routes a known command to its plugin. Any other message goes
// through the plugins' hooks in registration order until one consumes it.
func (w *DispatchWorker) Dispatch(ctx context.Context, msg domain.IncomingMessage) {
	if cmd, ok := domain.ParseCommand(msg, w.prefixes); ok {
		if plugin, ok := w.registry.Lookup(cmd.Name); ok {
			if err := plugin.Handle(ctx, cmd); err != nil {
				w.log.Error("Command failed", "plugin", plugin.Name(), "command", cmd.Name, "sender", msg.SenderID, "error", err)
			}
			return
		}
	}

	for _, plugin := range w.registry.Plugins() {
		handled, err := plugin.Before(ctx, msg)
		if err != nil {
			w.log.Error("Hook failed", "plugin", plugin.Name(), "sender", msg.SenderID, "error", err)
		}
		if handled {
			return
		}
	}
}
