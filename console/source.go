// Package console is a terminal transport for the bot: stdin lines become
// messages, replies are printed to stdout.
package console

import (
	"bufio"
	"context"
	"fmt"
	"hangman-bot/domain"
	"hangman-bot/errors"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Submitter accepts inbound messages, typically the orchestrator.
type Submitter interface {
	Submit(msg domain.IncomingMessage) bool
}

// Censor masks forbidden words, returning the ones it found.
type Censor interface {
	Censor(text string) (string, []string)
}

// Source reads "<sender>: <text>" lines. Each sender chats in a private
// chat named after them.
type Source struct {
	log       *slog.Logger
	reader    io.Reader
	submitter Submitter
	censor    Censor
	clock     func() time.Time
}

func NewSource(log *slog.Logger, reader io.Reader, submitter Submitter) *Source {
	return &Source{
		log:       log,
		reader:    reader,
		submitter: submitter,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// WithCensor masks forbidden words in every message before it is submitted.
func (s *Source) WithCensor(censor Censor) *Source {
	s.censor = censor
	return s
}

// Run submits every valid line until the reader is exhausted or ctx is done.
// Invalid lines are logged and skipped.
func (s *Source) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		msg, err := ParseLine(line, s.clock())
		if err != nil {
			s.log.Warn("Skipping console line", "error", err)
			continue
		}
		if s.censor != nil {
			censored, words := s.censor.Censor(msg.Text)
			if len(words) > 0 {
				s.log.Info("Message censored", "sender", msg.SenderID, "words", len(words))
				msg.Text = censored
			}
		}
		s.submitter.Submit(msg)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console: %w", err)
	}
	return nil
}

func ParseLine(line string, at time.Time) (domain.IncomingMessage, error) {
	sender, text, ok := strings.Cut(line, ":")
	if !ok {
		return domain.IncomingMessage{}, errors.ErrInvalidLine
	}
	sender = strings.TrimSpace(sender)
	if sender == "" {
		return domain.IncomingMessage{}, errors.ErrEmptySender
	}
	return domain.NewIncomingMessage(sender, sender, strings.TrimSpace(text), at), nil
}
