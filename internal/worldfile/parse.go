package worldfile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/quest/internal/game"
	"github.com/dekarrin/quest/internal/util"
)

// these are getting chucked into a char class so order matters
const labelChars = `]A-Z0-9_!?#%^&*().,<>/+=[|{}:;-`

var (
	labelRegexp             = regexp.MustCompile(fmt.Sprintf(`^[%s]+$`, labelChars))
	identifierBadCharRegexp = regexp.MustCompile(fmt.Sprintf(`[^%s]`, labelChars))
)

// worldSymbols is every label and name defined in a world, all upper case.
type worldSymbols struct {
	roomLabels util.StringSet
	itemNames  util.StringSet
}

// parseWorldData checks the unmarshaled data for validity and builds the World
// it describes. Items are placed in rooms in the order they are listed, and
// rooms are kept in the order they were defined.
func parseWorldData(qw topLevelWorldData) (*game.World, error) {
	// first, get all of our game symbols so we can immediately check validity
	// of every reference as we go through it.
	symbols, err := scanSymbols(qw)
	if err != nil {
		return nil, err
	}

	if qw.World.Start == "" {
		return nil, fmt.Errorf("world: start: must be set to the label of a room")
	}
	if !symbols.roomLabels.Has(strings.ToUpper(qw.World.Start)) {
		return nil, fmt.Errorf("world: start: no room with label %q exists", qw.World.Start)
	}

	rooms := make([]*game.Room, len(qw.Rooms))
	byLabel := make(map[string]*game.Room, len(qw.Rooms))
	for i, r := range qw.Rooms {
		rooms[i] = game.NewRoom(strings.ToUpper(r.Label), r.Name, r.Description)
		byLabel[rooms[i].Label] = rooms[i]
		for _, it := range r.Items {
			rooms[i].AddItem(game.NewItem(it))
		}
	}

	// exits need every room to exist first
	for i, r := range qw.Rooms {
		if err := validateExits(r, symbols); err != nil {
			return nil, fmt.Errorf("rooms[%q]: %w", r.Label, err)
		}

		for _, ex := range r.Exits {
			dir, _ := game.ParseDirection(ex.Direction)
			rooms[i].SetExit(dir, byLabel[strings.ToUpper(ex.Dest)])
		}
	}

	w, err := game.NewWorld(rooms, qw.World.Start)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return w, nil
}

// scanSymbols builds up a pre-list of 'seen' labels and names so we can check
// references later. Room labels must be unique among rooms and item names must
// be unique among all items in the world, both without regard to case.
//
// Item names are matched against single words of player input, so they must
// be non-empty and cannot contain whitespace.
func scanSymbols(top topLevelWorldData) (worldSymbols, error) {
	syms := worldSymbols{
		roomLabels: util.StringSet{},
		itemNames:  util.StringSet{},
	}

	for _, r := range top.Rooms {
		rLabelUpper := strings.ToUpper(r.Label)
		if err := checkLabel(rLabelUpper, syms.roomLabels, "a room"); err != nil {
			return syms, fmt.Errorf("room %q: %w", r.Label, err)
		}
		syms.roomLabels.Add(rLabelUpper)

		for _, it := range r.Items {
			if err := checkItemName(it, syms.itemNames); err != nil {
				return syms, fmt.Errorf("room %q: item %q: %w", r.Label, it, err)
			}
			syms.itemNames.Add(util.Upper(it))
		}
	}

	if len(syms.roomLabels) < 1 {
		return syms, fmt.Errorf("world must define at least one room")
	}

	return syms, nil
}

func validateExits(r room, symbols worldSymbols) error {
	seen := util.StringSet{}

	for i, ex := range r.Exits {
		dir, err := game.ParseDirection(ex.Direction)
		if err != nil {
			return fmt.Errorf("exit[%d]: direction: %w", i, err)
		}
		if seen.Has(dir.String()) {
			return fmt.Errorf("exit[%d]: direction: there is already an exit %s", i, dir)
		}
		seen.Add(dir.String())

		if ex.Dest == "" {
			return fmt.Errorf("exit[%d]: dest: must be set to the label of a room", i)
		}
		if !symbols.roomLabels.Has(strings.ToUpper(ex.Dest)) {
			return fmt.Errorf("exit[%d]: dest: no room with label %q exists", i, ex.Dest)
		}
	}

	return nil
}

func checkItemName(name string, conflictSet util.StringSet) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("item name cannot be blank")
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("item name must be a single word")
	}
	if conflictSet.Has(util.Upper(name)) {
		return fmt.Errorf("name has already been used for another item")
	}
	return nil
}

func checkLabel(label string, conflictSet util.StringSet, labeled string) error {
	if conflictSet.Has(label) {
		return fmt.Errorf("label %q has already been used for %s", label, labeled)
	}

	if label == "" {
		return fmt.Errorf("label cannot be blank")
	}

	if !labelRegexp.MatchString(label) {
		badChar := identifierBadCharRegexp.FindString(label)
		if badChar == "" {
			// something has gone horribly wrong with coding of regular expressions
			panic(fmt.Sprintf("could not identify bad char in label %q", label))
		}

		return fmt.Errorf("%q has the %q character in it which is not allowed for labels", label, badChar)
	}

	return nil
}
