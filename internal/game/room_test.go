package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Room_FindItem(t *testing.T) {
	testCases := []struct {
		name   string
		items  []string
		words  []string
		expect string
	}{
		{
			name:   "empty room",
			items:  nil,
			words:  []string{"TAKE", "KEY"},
			expect: "",
		},
		{
			name:   "no words",
			items:  []string{"key"},
			words:  nil,
			expect: "",
		},
		{
			name:   "matches regardless of case",
			items:  []string{"key"},
			words:  []string{"TAKE", "KEY"},
			expect: "key",
		},
		{
			name:   "no match",
			items:  []string{"key"},
			words:  []string{"TAKE", "ROCK"},
			expect: "",
		},
		{
			name:   "partial word is not a match",
			items:  []string{"key"},
			words:  []string{"TAKE", "KE"},
			expect: "",
		},
		{
			name:   "earliest word wins over earliest item",
			items:  []string{"key", "lamp"},
			words:  []string{"TAKE", "LAMP", "KEY"},
			expect: "lamp",
		},
		{
			name:   "same name picks first placed",
			items:  []string{"coin", "Coin"},
			words:  []string{"COIN"},
			expect: "coin",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			room := NewRoom("TEST", "Test Room", "")
			for _, name := range tc.items {
				room.AddItem(NewItem(name))
			}

			actual := room.FindItem(tc.words)

			if tc.expect == "" {
				assert.Nil(actual)
				return
			}
			if assert.NotNil(actual) {
				assert.Equal(tc.expect, actual.Name)
			}
		})
	}
}

func Test_Room_FindItem_fullCaseMapping(t *testing.T) {
	testCases := []struct {
		name  string
		item  string
		words []string
	}{
		{name: "sharp s expands", item: "straße", words: []string{"TAKE", "STRASSE"}},
		{name: "sharp s as typed", item: "straße", words: []string{"straße"}},
		{name: "ligature expands", item: "ﬁg", words: []string{"FIG"}},
		{name: "accented", item: "café", words: []string{"CAFÉ"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			room := NewRoom("TEST", "Test Room", "")
			it := NewItem(tc.item)
			room.AddItem(it)

			assert.Same(t, it, room.FindItem(tc.words))
		})
	}
}

func Test_Room_AddRemoveItem(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("TEST", "Test Room", "")
	key := NewItem("key")
	lamp := NewItem("lamp")

	room.AddItem(key)
	room.AddItem(lamp)
	room.AddItem(key)
	assert.Equal([]*Item{key, lamp}, room.Items())

	room.RemoveItem(key)
	assert.NotContains(room.Items(), key)
	assert.Contains(room.Items(), lamp)

	// removing again is a no-op
	room.RemoveItem(key)
	assert.Equal([]*Item{lamp}, room.Items())

	// modifying the returned slice does not change the room
	items := room.Items()
	items[0] = key
	assert.Contains(room.Items(), lamp)
}

func Test_Room_Exits(t *testing.T) {
	assert := assert.New(t)

	a := NewRoom("A", "Room A", "")
	b := NewRoom("B", "Room B", "")

	a.SetExit(South, b)
	a.SetExit(North, b)

	assert.Same(b, a.ExitTo(North))
	assert.Nil(a.ExitTo(East))
	assert.Nil(a.ExitTo(DirNone))
	assert.Nil(b.ExitTo(South), "exits must be one-way")
	assert.Equal([]Direction{North, South}, a.Exits())

	a.SetExit(North, nil)
	assert.Nil(a.ExitTo(North))
	assert.Equal([]Direction{South}, a.Exits())
}

func Test_Room_Describe(t *testing.T) {
	testCases := []struct {
		name   string
		room   *Room
		items  []string
		expect string
	}{
		{
			name:   "name and description",
			room:   NewRoom("A", "Hall", "A long hall."),
			expect: "Hall\n\nA long hall.",
		},
		{
			name:   "with items",
			room:   NewRoom("A", "Hall", "A long hall."),
			items:  []string{"key", "apple"},
			expect: "Hall\n\nA long hall.\n\nOn the ground, you can see a key and an apple.",
		},
		{
			name:   "no description",
			room:   NewRoom("A", "Hall", ""),
			expect: "Hall",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, name := range tc.items {
				tc.room.AddItem(NewItem(name))
			}

			assert.Equal(t, tc.expect, tc.room.Describe())
		})
	}
}

func Test_ParseDirection(t *testing.T) {
	testCases := []struct {
		input     string
		expect    Direction
		expectErr bool
	}{
		{input: "N", expect: North},
		{input: "north", expect: North},
		{input: "S", expect: South},
		{input: "SOUTH", expect: South},
		{input: "e", expect: East},
		{input: "West", expect: West},
		{input: "U", expect: Up},
		{input: "DOWN", expect: Down},
		{input: "NORTHWEST", expect: DirNone, expectErr: true},
		{input: "", expect: DirNone, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseDirection(tc.input)
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}

			assert.Equal(tc.expect, actual)
		})
	}
}
