// Package game implements the world model that commands operate on: rooms,
// the items in them, and the player moving between them.
package game

// File room.go includes symbols for holding data on the rooms and exits between
// them.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/quest/internal/util"
)

// Room is a location in the game. It holds the items currently on its floor and
// the exits that lead to other rooms. Exits do not own the rooms they lead to;
// the World does.
type Room struct {
	// Label is how the room is referred to in world data. It must be unique
	// among all rooms in a World.
	Label string

	// Name is the short name of the room, shown as the heading of its
	// description.
	Name string

	// Description is the prose shown when the room is looked at.
	Description string

	items itemSet
	exits map[Direction]*Room
}

// NewRoom creates a new empty Room with no exits.
func NewRoom(label, name, description string) *Room {
	return &Room{
		Label:       label,
		Name:        name,
		Description: description,
		exits:       make(map[Direction]*Room),
	}
}

func (room Room) String() string {
	var exits []string
	for _, d := range room.Exits() {
		exits = append(exits, fmt.Sprintf("%s -> %s", d, room.exits[d].Label))
	}
	exitsStr := strings.Join(exits, ", ")

	return fmt.Sprintf("Room<%s %q ITEMS: %s EXITS: %s>", room.Label, room.Name, strings.Join(room.items.names(), ", "), exitsStr)
}

// Describe returns the text shown to the player when they look at the room. It
// consists of the room name, its description, and, if there are any, the items
// on the ground. Separate sections are separated by "\n\n" and the text is not
// wrapped.
func (room *Room) Describe() string {
	var sections []string

	if room.Name != "" {
		sections = append(sections, room.Name)
	}
	if room.Description != "" {
		sections = append(sections, room.Description)
	}
	if len(room.items) > 0 {
		sections = append(sections, "On the ground, you can see "+util.MakeTextList(room.items.names(), true)+".")
	}

	return strings.Join(sections, "\n\n")
}

// FindItem returns the first item in the room that is named by one of the
// given words. Words are considered in order, and for each word the items are
// considered in the order they were placed in the room; the first match is
// returned. If no word names an item in the room, nil is returned.
func (room *Room) FindItem(words []string) *Item {
	return room.items.find(words)
}

// AddItem places the item in the room. If it is already there, this has no
// effect.
func (room *Room) AddItem(item *Item) {
	room.items.add(item)
}

// RemoveItem takes the item out of the room. If the item is not in the room,
// this has no effect.
func (room *Room) RemoveItem(item *Item) {
	room.items.remove(item)
}

// Items returns the items in the room in the order they were placed there. The
// returned slice may be modified without affecting the room.
func (room *Room) Items() []*Item {
	return room.items.copy()
}

// SetExit makes travelling in direction d from the room lead to dest. A nil
// dest removes the exit. Exits are one-way; the reverse exit must be set on
// dest separately if wanted.
func (room *Room) SetExit(d Direction, dest *Room) {
	if room.exits == nil {
		room.exits = make(map[Direction]*Room)
	}
	if dest == nil {
		delete(room.exits, d)
		return
	}
	room.exits[d] = dest
}

// ExitTo returns the room reached by travelling in direction d, or nil if
// there is no exit that way.
func (room *Room) ExitTo(d Direction) *Room {
	return room.exits[d]
}

// Exits returns the directions that have an exit, in the order of
// Directions.
func (room *Room) Exits() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if _, ok := room.exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
