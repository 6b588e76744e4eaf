package workers

import (
	"context"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"log/slog"
	"sync"
	"time"
)

var _ contract.Worker = (*ReplyFanout)(nil)

// ReplyFanout delivers each outgoing reply to every messenger sink.
//
// Delivery is best effort: a failing or slow sink is logged and skipped
// after the sink timeout. Replies are delivered one after the other, so a
// sink sees them in the order plugins produced them.
type ReplyFanout struct {
	log         *slog.Logger
	replies     chan domain.Reply
	sinks       []contract.Messenger
	sinkTimeout time.Duration
}

func NewReplyFanout(log *slog.Logger, replies chan domain.Reply, sinkTimeout time.Duration, sinks ...contract.Messenger) *ReplyFanout {
	return &ReplyFanout{log: log, replies: replies, sinkTimeout: sinkTimeout, sinks: sinks}
}

func (w *ReplyFanout) Run(ctx context.Context) error {
	for {
		select {
		case reply, ok := <-w.replies:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.Fanout(ctx, reply)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping reply fanout")
			w.drain(context.WithoutCancel(ctx))
			return nil
		}
	}
}

// Fanout sends the reply to all sinks concurrently and waits for them,
// each bounded by the sink timeout.
func (w *ReplyFanout) Fanout(ctx context.Context, reply domain.Reply) {
	var wg sync.WaitGroup
	for _, sink := range w.sinks {
		wg.Add(1)
		go func(sink contract.Messenger) {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()
			if err := sink.Reply(sinkCtx, reply); err != nil {
				w.log.Warn("Reply not delivered", "chat", reply.Chat, "error", err)
			}
		}(sink)
	}
	wg.Wait()
}

// drain delivers the replies still buffered when the fanout is stopped.
// Each delivery stays bounded by the sink timeout.
func (w *ReplyFanout) drain(ctx context.Context) {
	for {
		select {
		case reply, ok := <-w.replies:
			if !ok {
				return
			}
			w.Fanout(ctx, reply)
		default:
			return
		}
	}
}
