// Package runtime wires plugins, workers and sinks together.
// It moves messages and replies around without containing game rules.
package runtime

import (
	"context"
	"fmt"
	"hangman-bot/contract"
	"hangman-bot/domain"
	"hangman-bot/errors"
	"hangman-bot/repositories"
	"hangman-bot/runtime/workers"
	"log/slog"
	"sync"
	"time"
)

var _ contract.IOrchestrator = (*Orchestrator)(nil)

type Config struct {
	BufferSize        int
	SinkTimeout       time.Duration
	Prefixes          string
	SessionTTL        time.Duration
	JanitorInterval   time.Duration
	HeartbeatInterval time.Duration
}

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	config     Config
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	sessions   repositories.ISessionRepository
	expirer    workers.SessionExpirer
	messages   chan domain.IncomingMessage
	replies    chan domain.Reply
	sinks      []contract.Messenger
	dispatcher *workers.DispatchWorker
	cancel     context.CancelFunc
	done       chan struct{}
	started    bool
	closed     bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, sessions repositories.ISessionRepository, config Config) *Orchestrator {
	if config.Prefixes == "" {
		config.Prefixes = domain.DefaultPrefixes
	}
	return &Orchestrator{
		log:        log,
		config:     config,
		supervisor: supervisor,
		registry:   registry,
		sessions:   sessions,
		messages:   make(chan domain.IncomingMessage, config.BufferSize),
		replies:    make(chan domain.Reply, config.BufferSize),
		done:       make(chan struct{}),
	}
}

// Register adds plugins in the order their hooks must run.
func (o *Orchestrator) Register(plugins ...contract.Plugin) error {
	for _, plugin := range plugins {
		if err := o.registry.Register(plugin); err != nil {
			return fmt.Errorf("register plugin %s: %w", plugin.Name(), err)
		}
		o.log.Info("Plugin registered", "name", plugin.Name(), "commands", plugin.Commands())
	}
	return nil
}

// AddSinks must be called before Start.
func (o *Orchestrator) AddSinks(sinks ...contract.Messenger) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// WithJanitor enables idle game expiry, provided the session ttl is set.
func (o *Orchestrator) WithJanitor(expirer workers.SessionExpirer) *Orchestrator {
	o.expirer = expirer
	return o
}

// Messenger is handed to plugins: their replies are queued and delivered
// to every sink by the fanout worker.
func (o *Orchestrator) Messenger() contract.Messenger {
	return replyQueue{replies: o.replies}
}

// Submit enqueues an inbound message without blocking.
// Messages submitted after Drain are dropped.
func (o *Orchestrator) Submit(msg domain.IncomingMessage) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		o.log.Warn("Inbound channel closed, dropping message", "sender", msg.SenderID, "chat", msg.Chat)
		return false
	}
	select {
	case o.messages <- msg:
		return true
	default:
		o.log.Warn("Inbound channel full, dropping message", "sender", msg.SenderID, "chat", msg.Chat)
		return false
	}
}

// Start registers every worker with the supervisor and runs it in the background.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return errors.ErrAlreadyStarted
	}
	o.started = true
	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.dispatcher = workers.NewDispatchWorker(o.registry, o.messages, o.config.Prefixes, o.log)
	dispatcher := o.dispatcher
	sinks := append([]contract.Messenger(nil), o.sinks...)
	o.mu.Unlock()

	o.supervisor.Add(
		dispatcher,
		workers.NewReplyFanout(o.log, o.replies, o.config.SinkTimeout, sinks...),
	)
	if o.expirer != nil && o.config.SessionTTL > 0 && o.config.JanitorInterval > 0 {
		o.supervisor.Add(workers.NewJanitorWorker(o.log, o.sessions, o.expirer, o.config.SessionTTL, o.config.JanitorInterval))
	}
	if o.config.HeartbeatInterval > 0 {
		o.supervisor.Add(workers.NewHeartbeatWorker(o.log, o.sessions, o.config.HeartbeatInterval))
	}

	o.log.Info("Starting orchestrator and all supervised workers", "sinks", len(sinks))
	go func() {
		defer close(o.done)
		o.supervisor.Run(runCtx)
	}()
	return nil
}

// Drain closes the inbound channel and waits until every queued message has
// been handled, so their replies are queued for delivery before Stop.
func (o *Orchestrator) Drain(ctx context.Context) error {
	o.mu.Lock()
	if !o.started {
		o.mu.Unlock()
		return errors.ErrNotStarted
	}
	if !o.closed {
		o.closed = true
		close(o.messages)
	}
	dispatcher := o.dispatcher
	o.mu.Unlock()

	select {
	case <-dispatcher.Done():
		o.log.Debug("Inbound messages drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels the workers and waits for them to return.
// Replies already queued are still delivered.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()

	o.mu.Lock()
	started, cancel := o.started, o.cancel
	o.mu.Unlock()
	if started {
		cancel()
		<-o.done
	}
	o.log.Debug("Orchestrator stopped")
}

type replyQueue struct {
	replies chan<- domain.Reply
}

func (q replyQueue) Reply(ctx context.Context, reply domain.Reply) error {
	select {
	case q.replies <- reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
