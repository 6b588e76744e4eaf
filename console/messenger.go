package console

import (
	"context"
	"fmt"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

var _ contract.Messenger = (*Messenger)(nil)

// Messenger prints replies, prefixed with the chat they belong to.
type Messenger struct {
	mu      sync.Mutex
	writer  io.Writer
	colours bool
}

func NewMessenger(writer io.Writer, colours bool) *Messenger {
	return &Messenger{writer: writer, colours: colours}
}

func (m *Messenger) Reply(_ context.Context, reply domain.Reply) error {
	header := fmt.Sprintf("[bot → %s]", reply.Chat)
	if m.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := fmt.Fprintf(m.writer, "%s\n%s\n\n", header, strings.TrimRight(reply.Text, "\n")); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}
