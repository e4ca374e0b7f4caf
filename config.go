package quest

import (
	"io"
	"log"
)

// Config holds the settings an Engine is created with. The zero value is
// usable and plays the built-in world with default settings.
type Config struct {
	// WorldFile is the path to the QW world data or manifest file to load. If
	// empty, the built-in world is used.
	WorldFile string

	// PlayerName is the name of the player. If empty, DefaultPlayerName is
	// used.
	PlayerName string

	// Width is the width of console output. If less than 2, it will be
	// assumed to be 80.
	Width int

	// ForceDirect forces reading directly from the input stream instead of
	// going through GNU readline, even when attached to a terminal.
	ForceDirect bool

	// Color enables terminal color codes in output. It only takes effect when
	// input is read through readline.
	Color bool

	// HistoryFile is where readline keeps command history between sessions.
	// If empty, history is not saved.
	HistoryFile string

	// Log receives diagnostic messages about the session. If nil, they are
	// discarded.
	Log *log.Logger
}

// DefaultPlayerName is the player's name when none is configured.
const DefaultPlayerName = "Fred"

func (cfg Config) withDefaults() Config {
	if cfg.PlayerName == "" {
		cfg.PlayerName = DefaultPlayerName
	}
	if cfg.Width < 2 {
		cfg.Width = consoleOutputWidth
	}
	if cfg.Log == nil {
		cfg.Log = log.New(io.Discard, "", 0)
	}
	return cfg
}
