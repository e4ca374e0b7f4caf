package game

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/gookit/color"
)

// DefaultWidth is the output width used when an IODevice does not give one.
const DefaultWidth = 80

var textFormatOptions = rosed.Options{
	PreserveParagraphs: true,
	IndentStr:          "  ",
}

var (
	headingStyle = color.Style{color.FgCyan, color.OpBold}
	alertStyle   = color.Style{color.FgRed}
)

// IODevice is where game output is sent.
type IODevice struct {
	// The width of each line of output.
	Width int

	// Color is whether output may contain terminal color codes.
	Color bool

	// a function to send output. If s is empty, an empty line is sent.
	Output func(s string, a ...interface{}) error
}

// State is the entire state of a running game: the world, the player in it,
// and where output goes. It is created once at startup and handed to every
// command.
type State struct {
	World  *World
	Player *Player
	IO     IODevice
}

// New creates a new State for the given world with a player named playerName
// standing in the world's starting room.
//
// io.Width is how wide the output should be. If not set or < 2, it will be
// assumed to be DefaultWidth.
func New(world *World, playerName string, io IODevice) (*State, error) {
	if world == nil {
		return nil, fmt.Errorf("world must not be nil")
	}
	if io.Output == nil {
		return nil, fmt.Errorf("io device must define an Output function")
	}
	if io.Width < 2 {
		io.Width = DefaultWidth
	}

	gs := &State{
		World:  world,
		Player: NewPlayer(playerName, world.Start()),
		IO:     io,
	}

	return gs, nil
}

// Print wraps s to the output width and sends it followed by a newline.
func (gs *State) Print(s string) error {
	return gs.IO.Output("%s\n", gs.wrap(s))
}

// Printf formats according to the format specifier and then calls Print with
// the result.
func (gs *State) Printf(format string, a ...interface{}) error {
	return gs.Print(fmt.Sprintf(format, a...))
}

// PrintAlert is like Print but styles the wrapped text as a warning if color
// output is enabled.
func (gs *State) PrintAlert(s string) error {
	return gs.IO.Output("%s\n", gs.style(alertStyle, gs.wrap(s)))
}

// PrintHeaded prints heading, styled as a heading if color output is enabled,
// followed by body as a separate paragraph. Both are wrapped before any
// styling is applied. If body is empty only the heading is printed.
func (gs *State) PrintHeaded(heading, body string) error {
	output := gs.style(headingStyle, gs.wrap(heading))
	if body != "" {
		output += "\n\n" + gs.wrap(body)
	}
	return gs.IO.Output("%s\n", output)
}

// PrintTable sends a two-column table of terms and their definitions, preceded
// by a heading line.
func (gs *State) PrintTable(heading string, rows [][2]string) error {
	tableOpts := rosed.Options{ParagraphSeparator: "\n", NoTrailingLineSeparators: true}
	output := rosed.
		Edit("").
		InsertDefinitionsTableOpts(0, rows, gs.IO.Width, tableOpts).
		Insert(0, heading+"\n").
		String()

	return gs.IO.Output("%s\n", output)
}

func (gs *State) wrap(s string) string {
	return rosed.Edit(s).WithOptions(textFormatOptions).Wrap(gs.IO.Width).String()
}

// style must only be given text that has already been wrapped; escape codes
// would otherwise count toward the line width.
func (gs *State) style(st color.Style, s string) string {
	if !gs.IO.Color {
		return s
	}
	return st.Sprint(s)
}
