//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"hangman-bot/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision instead of a manual name on each worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Messenger sends a reply back into a chat.
// It is the only way plugins talk to the host.
type Messenger interface {
	Reply(ctx context.Context, reply domain.Reply) error
}

// Plugin is a bot feature reachable by command names and by a hook
// called on every other message.
type Plugin interface {
	Name() string
	Commands() []string
	Handle(ctx context.Context, cmd domain.Command) error
	// Before returns true when the message was consumed by the plugin.
	Before(ctx context.Context, msg domain.IncomingMessage) (bool, error)
}

type IRegistry interface {
	Register(plugin Plugin) error
	Lookup(command string) (Plugin, bool)
	Plugins() []Plugin
}

type IOrchestrator interface {
	Register(plugins ...Plugin) error
	AddSinks(sinks ...Messenger)
	Messenger() Messenger
	Submit(msg domain.IncomingMessage) bool
	Start(ctx context.Context) error
	Drain(ctx context.Context) error
	Stop()
}
