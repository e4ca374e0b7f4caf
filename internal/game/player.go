package game

import "fmt"

// Player is the state of the person playing. It performs no validation of its
// own; commands are responsible for only making legal changes.
type Player struct {
	// Name is what the player is called.
	Name string

	// CurrentRoom is the room the player is in. It is never nil once the
	// Player has been created with NewPlayer.
	CurrentRoom *Room

	inventory itemSet
	playing   bool
}

// NewPlayer creates a Player named name who is in room start and is playing.
func NewPlayer(name string, start *Room) *Player {
	return &Player{
		Name:        name,
		CurrentRoom: start,
		playing:     true,
	}
}

func (p Player) String() string {
	roomLabel := ""
	if p.CurrentRoom != nil {
		roomLabel = p.CurrentRoom.Label
	}
	return fmt.Sprintf("Player<%q IN: %s PLAYING: %t>", p.Name, roomLabel, p.playing)
}

// AddItem puts the item in the player's inventory. If it is already there, this
// has no effect.
func (p *Player) AddItem(item *Item) {
	p.inventory.add(item)
}

// RemoveItem takes the item out of the player's inventory. If the player does
// not have it, this has no effect.
func (p *Player) RemoveItem(item *Item) {
	p.inventory.remove(item)
}

// FindItem returns the first carried item named by one of the given words,
// using the same ordering rules as Room.FindItem.
func (p *Player) FindItem(words []string) *Item {
	return p.inventory.find(words)
}

// Items returns the carried items in the order they were picked up.
func (p *Player) Items() []*Item {
	return p.inventory.copy()
}

// IsPlaying returns whether the player has not yet quit.
func (p *Player) IsPlaying() bool {
	return p.playing
}

// SetPlaying sets whether the player is still playing.
func (p *Player) SetPlaying(playing bool) {
	p.playing = playing
}
