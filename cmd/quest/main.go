/*
Quest starts an interactive text-adventure session.

It reads in a world file, or uses the built-in world if none is given, and
starts the player in the world's starting room. The interpreter will then print
what is happening in the game to stdout and read commands from stdin until the
"QUIT" command is input or input ends.

Usage:

	quest [flags]

The flags are:

	-v, --version
		Give the current version of Quest and then exit.

	-w, --world FILE
		Use the provided QW file for the world. It may be a world data file or
		a manifest listing other files. If not given, will default to the value
		of environment variable QUEST_WORLD, and if that is not given, the
		built-in world is used.

	-n, --name NAME
		Set the name of the player. If not given, will default to the value of
		environment variable QUEST_PLAYER, and if that is not given, "Fred".

	--width COLUMNS
		Wrap output to the given number of columns. If not given, will default
		to the value of environment variable QUEST_WIDTH, and if that is not
		given, 80.

	-d, --direct
		Force reading directly from the console as opposed to using GNU readline
		based routines for reading command input even if launched in a tty with
		stdin and stdout.

	--no-color
		Do not use terminal colors in output.

	--history FILE
		Save readline command history to the given file.

	--debug
		Write diagnostic log messages to stderr.

Once a session has started, the user input will be parsed for Quest commands.
For a list of the commands, type "HELP" once in a session. To exit the
interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/dekarrin/quest"
	"github.com/dekarrin/quest/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

const (
	EnvWorld  = "QUEST_WORLD"
	EnvPlayer = "QUEST_PLAYER"
	EnvWidth  = "QUEST_WIDTH"
)

var (
	returnCode = ExitSuccess

	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Quest and then exit.")
	flagWorld   = pflag.StringP("world", "w", "", "The QW world data or manifest file that contains the definition of the world.")
	flagName    = pflag.StringP("name", "n", "", "The name of the player.")
	flagWidth   = pflag.Int("width", 0, "Wrap output to this many columns.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
	flagNoColor = pflag.Bool("no-color", false, "Do not use terminal colors in output.")
	flagHistory = pflag.String("history", "", "Save command history to the given file.")
	flagDebug   = pflag.Bool("debug", false, "Write diagnostic log messages to stderr.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	cfg, err := configFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\nDo -h for help.\n", err.Error())
		returnCode = ExitInitError
		return
	}

	gameEng, initErr := quest.New(os.Stdin, os.Stdout, cfg)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	err = gameEng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}

// configFromFlags builds the engine config from the command line, falling
// back to environment variables for anything not given as a flag.
func configFromFlags() (quest.Config, error) {
	cfg := quest.Config{
		WorldFile:   os.Getenv(EnvWorld),
		PlayerName:  os.Getenv(EnvPlayer),
		ForceDirect: *flagDirect,
		Color:       !*flagNoColor,
		HistoryFile: *flagHistory,
	}

	if pflag.Lookup("world").Changed {
		cfg.WorldFile = *flagWorld
	}
	if pflag.Lookup("name").Changed {
		cfg.PlayerName = *flagName
	}

	if pflag.Lookup("width").Changed {
		cfg.Width = *flagWidth
	} else if envWidth := os.Getenv(EnvWidth); envWidth != "" {
		w, err := strconv.Atoi(envWidth)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not a valid number of columns", EnvWidth, envWidth)
		}
		cfg.Width = w
	}

	logOut := io.Discard
	if *flagDebug {
		logOut = os.Stderr
	}
	cfg.Log = log.New(logOut, "", log.LstdFlags)

	return cfg, nil
}
