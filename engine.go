// Package quest contains a CLI-driven engine for reading player commands and
// applying them to a text-adventure world continuously until the player quits.
package quest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dekarrin/quest/internal/command"
	"github.com/dekarrin/quest/internal/game"
	"github.com/dekarrin/quest/internal/input"
	"github.com/dekarrin/quest/internal/qerrors"
	"github.com/dekarrin/quest/internal/worldfile"
)

const consoleOutputWidth = 80

const (
	// FirstPrompt is shown before the first command is read.
	FirstPrompt = "What would you like to do next? If you do not know the commands type help."

	// Prompt is shown before every command after the first.
	Prompt = "What would you like to do next?"

	// NotUnderstood is shown whenever a command fails.
	NotUnderstood = "Sorry, I don't understand you."
)

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	state       *game.State
	commands    *command.Registry
	in          command.Reader
	out         *bufio.Writer
	log         *log.Logger
	forceDirect bool
	running     bool
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and a
// buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. Readline is only used when both streams are
// the process's own stdin and stdout and cfg.ForceDirect is not set.
func New(inputStream io.Reader, outputStream io.Writer, cfg Config) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}
	cfg = cfg.withDefaults()

	var world *game.World
	var err error
	if cfg.WorldFile != "" {
		cfg.Log.Printf("DEBUG Loading world from %q", cfg.WorldFile)
		world, err = worldfile.LoadResourceBundle(cfg.WorldFile)
	} else {
		cfg.Log.Printf("DEBUG Loading built-in world")
		world, err = worldfile.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}
	cfg.Log.Printf("DEBUG Loaded %d room(s); start is %q", len(world.Rooms()), world.Start().Label)

	eng := &Engine{
		out:         bufio.NewWriter(outputStream),
		commands:    command.DefaultRegistry(),
		log:         cfg.Log,
		forceDirect: cfg.ForceDirect,
	}

	useReadline := !cfg.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		eng.in, err = input.NewInteractiveReader(cfg.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	ioDev := game.IODevice{
		Width: cfg.Width,
		Color: useReadline && cfg.Color,
		Output: func(s string, a ...interface{}) error {
			return eng.write(fmt.Sprintf(s, a...))
		},
	}

	eng.state, err = game.New(world, cfg.PlayerName, ioDev)
	if err != nil {
		eng.in.Close()
		return nil, fmt.Errorf("initializing game state: %w", err)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// State returns the game state the engine is running.
func (eng *Engine) State() *game.State {
	return eng.state
}

// RunUntilQuit begins reading commands from the streams and applying them to
// the game until the QUIT command is received or input runs out.
//
// A command that fails because of what the player typed is not an error; its
// message is shown, followed by NotUnderstood, and the game continues. Only
// problems reading input or writing output are returned.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "Welcome to Quest\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "================\n"

	if err := eng.write(introMsg + "\n"); err != nil {
		return err
	}
	if err := command.Look(eng.state, nil); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	eng.log.Printf("INFO  Session started for player %q", eng.state.Player.Name)

	prompt := FirstPrompt
	for eng.state.Player.IsPlaying() {
		words, err := command.Get(eng.in, eng.out, prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				eng.log.Printf("INFO  Input ended before QUIT; ending session")
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}
		prompt = Prompt

		eng.log.Printf("DEBUG Got command words %q", words)

		if err := eng.commands.Dispatch(eng.state, words); err != nil {
			if !qerrors.IsInterpreter(err) {
				return fmt.Errorf("run command: %w", err)
			}
			eng.log.Printf("DEBUG Command failed: %v", err)

			// this doubles up on errors for commands that already said what
			// went wrong, such as TAKE with nothing to take.
			if msg := qerrors.GameMessage(err); msg != "" {
				if err := eng.state.PrintAlert(msg); err != nil {
					return err
				}
			}
			if err := eng.state.Print(NotUnderstood); err != nil {
				return err
			}
		}
	}

	eng.log.Printf("INFO  Session ended in room %q", eng.state.Player.CurrentRoom.Label)

	return nil
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
