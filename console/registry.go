// Package console implements the line-oriented serial command shell
// used by the example firmware: a non-blocking line assembler and a
// name-to-handler registry. It stays free of fmt so linking it into a
// small target costs little flash.
package console

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrUnknownCommand is returned by Dispatch when no handler matches.
var ErrUnknownCommand = errors.New("console: unknown command")

// Handler runs a command. args holds the whitespace-split words after
// the command name, and output goes to w.
type Handler func(args []string, w io.Writer) error

// command pairs a name with its handler and one-line help text.
type command struct {
	name    string
	help    string
	handler Handler
}

// Registry maps command names to handlers. Registration order is kept
// so help output reads in declaration order. The zero value is an empty
// registry ready for Register.
type Registry struct {
	mu       sync.RWMutex
	commands []command
}

// Register adds a command. Re-registering a name replaces its handler
// and help text in place.
func (r *Registry) Register(name, help string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.commands {
		if r.commands[i].name == name {
			r.commands[i].help = help
			r.commands[i].handler = handler
			return
		}
	}
	r.commands = append(r.commands, command{name: name, help: help, handler: handler})
}

// Dispatch splits line into fields, looks up the first as the command
// name and runs its handler with the rest as arguments, passing w
// through for output. A blank line dispatches nothing.
func (r *Registry) Dispatch(line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]

	r.mu.RLock()
	var handler Handler
	for i := range r.commands {
		if r.commands[i].name == name {
			handler = r.commands[i].handler
			break
		}
	}
	r.mu.RUnlock()

	if handler == nil {
		return ErrUnknownCommand
	}
	return handler(args, w)
}

// Walk calls fn for every command in registration order. Help screens
// are built from it.
func (r *Registry) Walk(fn func(name, help string)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.commands {
		fn(r.commands[i].name, r.commands[i].help)
	}
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
