// Package command turns lines of player input into tokens and dispatches them
// to the handler of the first recognized verb.
package command

import (
	"fmt"
	"strings"

	"github.com/dekarrin/quest/internal/game"
	"github.com/dekarrin/quest/internal/qerrors"
	"github.com/dekarrin/quest/internal/util"
)

// Handler carries out a command against the game state. It receives every word
// of the input line, not only the verb, so it can find its arguments anywhere
// in the line. It returns nil if the command succeeded.
type Handler func(gs *game.State, words []string) error

// Entry is a single verb in a Registry.
type Entry struct {
	// Verb is the canonical word for the command, in upper case.
	Verb string

	// Aliases are other words that invoke the same command.
	Aliases []string

	// Help is a short description of what the command does.
	Help string

	handler Handler
}

// Registry maps verbs to the handlers that carry them out. It is built once at
// startup; dispatching does not modify it.
type Registry struct {
	entries []*Entry
	byWord  map[string]*Entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byWord: make(map[string]*Entry),
	}
}

// Register adds a verb to the registry along with any aliases for it. Verbs and
// aliases are matched without regard to case. If handler is nil, the verb is
// recognized but dispatching it always fails with qerrors.ErrNotImplemented.
//
// An error is returned if verb or any alias is empty, contains a space, or is
// already registered.
func (r *Registry) Register(verb, help string, handler Handler, aliases ...string) error {
	e := &Entry{
		Verb:    util.Upper(verb),
		Help:    help,
		handler: handler,
	}

	words := append([]string{verb}, aliases...)
	seen := util.StringSet{}
	for i, w := range words {
		w = util.Upper(w)
		if w == "" || strings.ContainsAny(w, " \t") {
			return fmt.Errorf("invalid command word %q", words[i])
		}
		if _, exists := r.byWord[w]; exists || seen.Has(w) {
			return fmt.Errorf("command word %q is already registered", w)
		}
		seen.Add(w)
		words[i] = w
	}

	e.Aliases = words[1:]
	for _, w := range words {
		r.byWord[w] = e
	}
	r.entries = append(r.entries, e)

	return nil
}

// MustRegister is like Register but panics if there is an error.
func (r *Registry) MustRegister(verb, help string, handler Handler, aliases ...string) {
	if err := r.Register(verb, help, handler, aliases...); err != nil {
		panic(err.Error())
	}
}

// Verbs returns the canonical verbs in the order they were registered.
func (r *Registry) Verbs() []string {
	verbs := make([]string, len(r.entries))
	for i := range r.entries {
		verbs[i] = r.entries[i].Verb
	}
	return verbs
}

// Dispatch finds the first word in words that is a registered verb or alias
// and invokes its handler with all of words. Words before it are ignored and
// words after it are never checked for verbs, so at most one command runs per
// call.
//
// If no word is recognized, the returned error is in category
// qerrors.ErrNoVerb. Otherwise the result of the handler is returned.
func (r *Registry) Dispatch(gs *game.State, words []string) error {
	for _, w := range words {
		e, ok := r.byWord[util.Upper(w)]
		if !ok {
			continue
		}

		if e.handler == nil {
			return qerrors.NotImplemented(e.Verb)
		}
		return e.handler(gs, words)
	}

	return qerrors.NoVerb()
}
