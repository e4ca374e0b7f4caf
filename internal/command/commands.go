package command

import (
	"strings"

	"github.com/dekarrin/quest/internal/game"
	"github.com/dekarrin/quest/internal/qerrors"
	"github.com/dekarrin/quest/internal/util"
)

// File commands.go holds the handlers for every built-in verb. Each one prints
// its result through the State and returns an error from package qerrors if
// the command could not be carried out.

// DefaultRegistry returns a Registry with every built-in command registered,
// in the order they are listed by HELP.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("GO", "go to another room, e.g. GO NORTH", Go, "MOVE")
	r.MustRegister("TAKE", "pick up an object in the room", Take, "GET")
	r.MustRegister("DROP", "put down an object you are carrying", Drop, "PUT")
	r.MustRegister("LOOK", "show the description of the room", Look)
	r.MustRegister("INVENTORY", "show what you are carrying", Inventory, "INVEN")
	r.MustRegister("EXITS", "show the directions you can go from here", Exits)
	r.MustRegister("HELP", "show this list of commands", r.Help)
	r.MustRegister("QUIT", "end the game", Quit, "Q")

	return r
}

// Go moves the player through the exit in the direction named in words and
// then looks at the room they arrive in.
func Go(gs *game.State, words []string) error {
	dir := FindDirection(words)
	if dir == game.DirNone {
		return qerrors.MissingArgument("What direction should I go?")
	}

	target := gs.Player.CurrentRoom.ExitTo(dir)
	if target == nil {
		return qerrors.InvalidTarget("There doesn't seem to be an exit in that direction.")
	}

	gs.Player.CurrentRoom = target
	return Look(gs, words)
}

// Take moves the first item in the current room named in words into the
// player's inventory.
func Take(gs *game.State, words []string) error {
	current := gs.Player.CurrentRoom

	item := current.FindItem(words)
	if item == nil {
		return qerrors.InvalidTarget("What should I take?")
	}

	current.RemoveItem(item)
	gs.Player.AddItem(item)

	return gs.Printf("You took the %s.", item.Name)
}

// Drop moves the first carried item named in words out of the player's
// inventory and into the current room.
func Drop(gs *game.State, words []string) error {
	item := gs.Player.FindItem(words)
	if item == nil {
		return qerrors.InvalidTarget("What should I drop?")
	}

	gs.Player.RemoveItem(item)
	gs.Player.CurrentRoom.AddItem(item)

	return gs.Printf("You dropped the %s.", item.Name)
}

// Look prints the description of the current room.
func Look(gs *game.State, words []string) error {
	room := gs.Player.CurrentRoom

	desc := room.Describe()
	if room.Name == "" {
		return gs.Print(desc)
	}

	body := strings.TrimPrefix(strings.TrimPrefix(desc, room.Name), "\n\n")
	return gs.PrintHeaded(room.Name, body)
}

// Inventory lists the items the player is carrying.
func Inventory(gs *game.State, words []string) error {
	items := gs.Player.Items()
	if len(items) < 1 {
		return gs.Print("You aren't carrying anything.")
	}

	names := make([]string, len(items))
	for i := range items {
		names[i] = items[i].Name
	}

	if err := gs.Print("You currently have the following items:"); err != nil {
		return err
	}
	return gs.Print(util.MakeTextList(names, true) + ".")
}

// Exits lists the directions that lead out of the current room.
func Exits(gs *game.State, words []string) error {
	dirs := gs.Player.CurrentRoom.Exits()
	if len(dirs) < 1 {
		return gs.Print("You can't seem to find any exits right now.")
	}

	names := make([]string, len(dirs))
	for i := range dirs {
		names[i] = strings.ToLower(dirs[i].String())
	}

	return gs.Print("You search for ways out of the room and find that you can go " + util.MakeTextList(names, false) + ".")
}

// Help prints every verb in the registry with its aliases and a description of
// what it does.
func (r *Registry) Help(gs *game.State, words []string) error {
	verbs := r.Verbs()
	rows := make([][2]string, len(verbs))
	for i, v := range verbs {
		e := r.byWord[v]
		names := append([]string{e.Verb}, e.Aliases...)
		rows[i] = [2]string{strings.Join(names, "/"), e.Help}
	}

	return gs.PrintTable("Here is a list of commands:", rows)
}

// Quit ends the game.
func Quit(gs *game.State, words []string) error {
	gs.Player.SetPlaying(false)
	return gs.Print("Good-bye!")
}
