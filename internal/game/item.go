package game

import (
	"fmt"

	"github.com/dekarrin/quest/internal/util"
)

// File item.go holds symbols related to items and the containers that hold
// them.

// Item is an object that can be picked up. Items are identified by their name,
// compared without regard to case.
type Item struct {
	// Name is the name of the item. It is also the single word the player uses
	// to refer to it.
	Name string
}

// NewItem creates a new Item with the given name.
func NewItem(name string) *Item {
	return &Item{Name: name}
}

func (item Item) String() string {
	return fmt.Sprintf("Item(%q)", item.Name)
}

// Is returns whether the item goes by the given word. Both are upper-cased with
// util.Upper before comparing, the same way player input is tokenized.
func (item Item) Is(word string) bool {
	return util.Upper(item.Name) == util.Upper(word)
}

// itemSet is an ordered collection of items in which each item appears at
// most once. The order is the order in which the items were added, which makes
// lookups by word deterministic.
type itemSet []*Item

func (set itemSet) indexOf(item *Item) int {
	for i := range set {
		if set[i] == item {
			return i
		}
	}
	return -1
}

func (set *itemSet) add(item *Item) {
	if item == nil || set.indexOf(item) != -1 {
		return
	}
	*set = append(*set, item)
}

func (set *itemSet) remove(item *Item) {
	idx := set.indexOf(item)
	if idx == -1 {
		return
	}
	*set = append((*set)[:idx], (*set)[idx+1:]...)
}

// find returns the first item named by one of the given words. Words are
// checked in order and for each word the items are checked in the order they
// were added, so the earliest word that names anything wins.
func (set itemSet) find(words []string) *Item {
	for _, w := range words {
		for _, it := range set {
			if it.Is(w) {
				return it
			}
		}
	}
	return nil
}

func (set itemSet) names() []string {
	names := make([]string, len(set))
	for i := range set {
		names[i] = set[i].Name
	}
	return names
}

func (set itemSet) copy() []*Item {
	cp := make([]*Item, len(set))
	copy(cp, set)
	return cp
}
