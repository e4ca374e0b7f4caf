package game

import (
	"fmt"

	"github.com/dekarrin/quest/internal/util"
)

// Direction is a way out of a room. Exits are keyed by it.
type Direction int

const (
	DirNone Direction = iota
	North
	South
	East
	West
	Up
	Down
)

// Directions is every valid Direction, in the order they are searched for in
// player input and listed in output.
var Directions = []Direction{North, South, East, West, Up, Down}

var directionNames = map[Direction]string{
	North: "NORTH",
	South: "SOUTH",
	East:  "EAST",
	West:  "WEST",
	Up:    "UP",
	Down:  "DOWN",
}

var directionAbbrevs = map[Direction]string{
	North: "N",
	South: "S",
	East:  "E",
	West:  "W",
	Up:    "U",
	Down:  "D",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Abbrev returns the single-letter form of the direction.
func (d Direction) Abbrev() string {
	return directionAbbrevs[d]
}

// Words returns all words that refer to the direction, short form first.
func (d Direction) Words() []string {
	if d == DirNone {
		return nil
	}
	return []string{d.Abbrev(), d.String()}
}

// ParseDirection returns the Direction that the given word refers to, either
// by its full name or its abbreviation. Case is ignored. If the word is not a
// direction, DirNone and a non-nil error are returned.
func ParseDirection(word string) (Direction, error) {
	upper := util.Upper(word)
	for _, d := range Directions {
		if upper == d.String() || upper == d.Abbrev() {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("not a direction: %q", word)
}
