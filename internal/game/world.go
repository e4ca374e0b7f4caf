package game

import (
	"fmt"

	"github.com/dekarrin/quest/internal/util"
)

// World is the complete set of rooms in a game. It owns every room, and through
// them every item that is not being carried.
type World struct {
	rooms map[string]*Room
	order []string
	start *Room
}

// NewWorld creates a World from the given rooms. Room labels are matched
// without regard to case. The room with label startLabel is the one the player
// begins in.
//
// An error is returned if there are no rooms, if two rooms share a label, if
// there is no room with the start label, or if any exit leads to a room that is
// not among the given rooms.
func NewWorld(rooms []*Room, startLabel string) (*World, error) {
	if len(rooms) < 1 {
		return nil, fmt.Errorf("world must have at least one room")
	}

	w := &World{
		rooms: make(map[string]*Room, len(rooms)),
		order: make([]string, 0, len(rooms)),
	}

	for i, r := range rooms {
		if r == nil {
			return nil, fmt.Errorf("room %d is nil", i)
		}
		key := util.Upper(r.Label)
		if _, exists := w.rooms[key]; exists {
			return nil, fmt.Errorf("duplicate room label %q", r.Label)
		}
		w.rooms[key] = r
		w.order = append(w.order, key)
	}

	for _, r := range rooms {
		for _, d := range r.Exits() {
			dest := r.ExitTo(d)
			if !w.Contains(dest) {
				return nil, fmt.Errorf("room %q: exit %s leads to room %q which is not in the world", r.Label, d, dest.Label)
			}
		}
	}

	w.start = w.Room(startLabel)
	if w.start == nil {
		return nil, fmt.Errorf("starting room with label %q does not exist in passed-in rooms", startLabel)
	}

	return w, nil
}

// Start returns the room that the player begins in.
func (w *World) Start() *Room {
	return w.start
}

// Room returns the room with the given label, or nil if there is none.
func (w *World) Room(label string) *Room {
	return w.rooms[util.Upper(label)]
}

// Rooms returns every room in the world in the order they were given to
// NewWorld.
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, len(w.order))
	for i, key := range w.order {
		rooms[i] = w.rooms[key]
	}
	return rooms
}

// Contains returns whether the given room is one of the rooms of the world.
func (w *World) Contains(r *Room) bool {
	if r == nil {
		return false
	}
	return w.rooms[util.Upper(r.Label)] == r
}
