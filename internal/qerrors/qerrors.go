// Package qerrors contains the errors returned when a player command cannot be
// completed. Each one carries a message meant to be shown in-game as well as a
// category that callers can check for with errors.Is.
package qerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVerb is the category of errors for input that contains no
	// recognized command word.
	ErrNoVerb = errors.New("no recognized verb")

	// ErrMissingArgument is the category of errors for commands that need
	// something more from the input than was given, such as GO without a
	// direction.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidTarget is the category of errors for commands whose argument
	// doesn't refer to anything usable, such as GO toward a direction with no
	// exit.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrNotImplemented is the category of errors for commands that are
	// recognized but do nothing yet.
	ErrNotImplemented = errors.New("not implemented")
)

// interpreterError is an error caused by attempting to interpret input. Either
// the input could not be understood or it specifies doing something that is
// impossible at the current time.
//
// It includes a human-readable message to show to the player as well as a
// category error it wraps.
type interpreterError struct {
	human    string
	category error
}

func (e *interpreterError) Error() string {
	if e.human == "" {
		return e.category.Error()
	}
	return fmt.Sprintf("%s: %q", e.category.Error(), e.human)
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *interpreterError) GameMessage() string {
	return e.human
}

// Unwrap gives the category of the error.
func (e *interpreterError) Unwrap() error {
	return e.category
}

// Interpreter returns a new error in the given category that has the message
// to show the player. game may be empty if there is nothing specific to say.
func Interpreter(category error, game string) error {
	return &interpreterError{
		human:    game,
		category: category,
	}
}

// NoVerb returns an error that reports that none of the input was understood
// as a command. It has no game message.
func NoVerb() error {
	return Interpreter(ErrNoVerb, "")
}

// MissingArgument returns an ErrMissingArgument error with the given game
// message.
func MissingArgument(game string) error {
	return Interpreter(ErrMissingArgument, game)
}

// InvalidTarget returns an ErrInvalidTarget error with the given game message.
func InvalidTarget(game string) error {
	return Interpreter(ErrInvalidTarget, game)
}

// NotImplemented returns an ErrNotImplemented error for the given verb. It has
// no game message.
func NotImplemented(verb string) error {
	return &interpreterError{category: fmt.Errorf("%s: %w", verb, ErrNotImplemented)}
}

// GameMessage gets the message to display to the console for the given error.
// If it is an interpreter error, its game message is returned, which may be
// empty. Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	var intErr *interpreterError
	if errors.As(err, &intErr) {
		return intErr.GameMessage()
	}
	return err.Error()
}

// IsInterpreter returns whether err was caused by the player's input rather
// than a problem with the game itself.
func IsInterpreter(err error) bool {
	var intErr *interpreterError
	return errors.As(err, &intErr)
}
