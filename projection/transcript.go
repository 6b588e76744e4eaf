// Package projection keeps local read models of what the bot said.
// It never emits replies itself.
package projection

import (
	"context"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"sync"

	"github.com/samber/lo"
)

var _ contract.Messenger = (*Transcript)(nil)

// Transcript records every reply per chat, in delivery order.
type Transcript struct {
	mu      sync.RWMutex
	replies map[string][]domain.Reply
	notify  chan struct{}
}

func NewTranscript() *Transcript {
	return &Transcript{
		replies: make(map[string][]domain.Reply),
		notify:  make(chan struct{}, 1),
	}
}

func (t *Transcript) Reply(_ context.Context, reply domain.Reply) error {
	t.mu.Lock()
	t.replies[reply.Chat] = append(t.replies[reply.Chat], reply)
	t.mu.Unlock()

	select {
	case t.notify <- struct{}{}:
	default:
	}
	return nil
}

// Replies returns a copy of the replies sent to a chat.
func (t *Transcript) Replies(chat string) []domain.Reply {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Reply(nil), t.replies[chat]...)
}

// Texts returns only the reply texts of a chat.
func (t *Transcript) Texts(chat string) []string {
	return lo.Map(t.Replies(chat), func(reply domain.Reply, _ int) string {
		return reply.Text
	})
}

// Last returns the most recent reply of a chat.
func (t *Transcript) Last(chat string) (domain.Reply, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	replies := t.replies[chat]
	if len(replies) == 0 {
		return domain.Reply{}, false
	}
	return replies[len(replies)-1], true
}

// WaitFor blocks until the chat holds at least n replies or ctx is done.
func (t *Transcript) WaitFor(ctx context.Context, chat string, n int) ([]domain.Reply, error) {
	for {
		if replies := t.Replies(chat); len(replies) >= n {
			return replies, nil
		}
		select {
		case <-ctx.Done():
			return t.Replies(chat), ctx.Err()
		case <-t.notify:
		}
	}
}
