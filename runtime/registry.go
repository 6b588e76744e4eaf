package runtime

import (
	"fmt"
	"hangman-bot/contract"
	"hangman-bot/errors"
	"slices"
	"strings"
	"sync"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry maps command names to the plugin answering them.
// Plugins keep their registration order for the per-message hooks.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]contract.Plugin
	plugins  []contract.Plugin
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]contract.Plugin)}
}

// Register adds every command of the plugin, or none of them
// if one is already taken.
func (r *Registry) Register(plugin contract.Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(plugin.Commands()))
	for _, command := range plugin.Commands() {
		name := strings.ToLower(command)
		if owner, ok := r.commands[name]; ok {
			return fmt.Errorf("%w: %q is owned by %s", errors.ErrCommandAlreadyRegistered, name, owner.Name())
		}
		names = append(names, name)
	}
	for _, name := range names {
		r.commands[name] = plugin
	}
	r.plugins = append(r.plugins, plugin)
	return nil
}

func (r *Registry) Lookup(command string) (contract.Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plugin, ok := r.commands[strings.ToLower(command)]
	return plugin, ok
}

func (r *Registry) Plugins() []contract.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.plugins)
}
