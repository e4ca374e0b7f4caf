package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewWorld(t *testing.T) {
	outside := NewRoom("OUTSIDE", "Outside", "")

	testCases := []struct {
		name      string
		rooms     func() []*Room
		start     string
		expectErr bool
	}{
		{
			name:      "no rooms",
			rooms:     func() []*Room { return nil },
			start:     "A",
			expectErr: true,
		},
		{
			name: "single room",
			rooms: func() []*Room {
				return []*Room{NewRoom("A", "Room A", "")}
			},
			start: "A",
		},
		{
			name: "start is matched without case",
			rooms: func() []*Room {
				return []*Room{NewRoom("A", "Room A", "")}
			},
			start: "a",
		},
		{
			name: "unknown start",
			rooms: func() []*Room {
				return []*Room{NewRoom("A", "Room A", "")}
			},
			start:     "B",
			expectErr: true,
		},
		{
			name: "duplicate labels",
			rooms: func() []*Room {
				return []*Room{NewRoom("A", "Room A", ""), NewRoom("a", "Other A", "")}
			},
			start:     "A",
			expectErr: true,
		},
		{
			name: "exit outside the world",
			rooms: func() []*Room {
				a := NewRoom("A", "Room A", "")
				a.SetExit(North, outside)
				return []*Room{a}
			},
			start:     "A",
			expectErr: true,
		},
		{
			name: "one-way exit",
			rooms: func() []*Room {
				a := NewRoom("A", "Room A", "")
				b := NewRoom("B", "Room B", "")
				a.SetExit(North, b)
				return []*Room{a, b}
			},
			start: "A",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rooms := tc.rooms()
			w, err := NewWorld(rooms, tc.start)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}

			assert.Equal(rooms, w.Rooms())
			assert.NotNil(w.Start())
			assert.True(w.Contains(w.Start()))
		})
	}
}

func Test_World_Room(t *testing.T) {
	assert := assert.New(t)

	a := NewRoom("A", "Room A", "")
	b := NewRoom("B", "Room B", "")
	w, err := NewWorld([]*Room{a, b}, "B")
	require.NoError(t, err)

	assert.Same(b, w.Start())
	assert.Same(a, w.Room("a"))
	assert.Nil(w.Room("C"))
	assert.False(w.Contains(NewRoom("A", "Impostor", "")))
	assert.False(w.Contains(nil))
}

func Test_New_State(t *testing.T) {
	a := NewRoom("A", "Room A", "A plain room.")
	w, err := NewWorld([]*Room{a}, "A")
	require.NoError(t, err)

	t.Run("requires output", func(t *testing.T) {
		_, err := New(w, "Fred", IODevice{})
		assert.Error(t, err)
	})

	t.Run("requires world", func(t *testing.T) {
		_, err := New(nil, "Fred", IODevice{Output: func(string, ...interface{}) error { return nil }})
		assert.Error(t, err)
	})

	t.Run("player starts in start room", func(t *testing.T) {
		assert := assert.New(t)

		var sb strings.Builder
		gs, err := New(w, "Fred", IODevice{Output: func(s string, a ...interface{}) error {
			sb.WriteString(fmt.Sprintf(s, a...))
			return nil
		}})
		if !assert.NoError(err) {
			return
		}

		assert.Equal(DefaultWidth, gs.IO.Width)
		assert.Same(a, gs.Player.CurrentRoom)
		assert.True(gs.Player.IsPlaying())
		assert.Equal("Fred", gs.Player.Name)

		assert.NoError(gs.Printf("hello %s", "there"))
		assert.Equal("hello there\n", sb.String())
	})

	t.Run("styled output without color matches plain output", func(t *testing.T) {
		assert := assert.New(t)

		var sb strings.Builder
		gs, err := New(w, "Fred", IODevice{Output: func(s string, a ...interface{}) error {
			sb.WriteString(fmt.Sprintf(s, a...))
			return nil
		}})
		require.NoError(t, err)

		assert.NoError(gs.PrintAlert("oops"))
		assert.NoError(gs.PrintHeaded("Hall", "A long hall."))
		assert.NoError(gs.PrintHeaded("Closet", ""))
		assert.Equal("oops\nHall\n\nA long hall.\nCloset\n", sb.String())
	})
}

func Test_State_styleAfterWrap(t *testing.T) {
	a := NewRoom("A", "Room A", "")
	w, err := NewWorld([]*Room{a}, "A")
	require.NoError(t, err)

	msg := "There doesn't seem to be an exit in that direction."
	heading := "The Very Long Name Of A Grand Room"

	newState := func(color bool, sb *strings.Builder) *State {
		gs, err := New(w, "Fred", IODevice{
			Width: 20,
			Color: color,
			Output: func(s string, a ...interface{}) error {
				sb.WriteString(fmt.Sprintf(s, a...))
				return nil
			},
		})
		require.NoError(t, err)
		return gs
	}

	t.Run("alert", func(t *testing.T) {
		assert := assert.New(t)

		var plain, styled strings.Builder
		assert.NoError(newState(false, &plain).PrintAlert(msg))
		assert.NoError(newState(true, &styled).PrintAlert(msg))

		wrapped := strings.TrimSuffix(plain.String(), "\n")
		for _, line := range strings.Split(wrapped, "\n") {
			assert.LessOrEqual(len(line), 20)
		}
		assert.Equal(alertStyle.Sprint(wrapped)+"\n", styled.String())
	})

	t.Run("heading", func(t *testing.T) {
		assert := assert.New(t)

		var plain, styled strings.Builder
		assert.NoError(newState(false, &plain).PrintHeaded(heading, msg))
		assert.NoError(newState(true, &styled).PrintHeaded(heading, msg))

		parts := strings.SplitN(plain.String(), "\n\n", 2)
		if !assert.Len(parts, 2) {
			return
		}
		assert.Equal(headingStyle.Sprint(parts[0])+"\n\n"+parts[1], styled.String())
	})
}

func Test_Player_Items(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("A", "Room A", "")
	p := NewPlayer("Fred", room)
	key := NewItem("key")

	assert.Nil(p.FindItem([]string{"KEY"}))

	p.AddItem(key)
	p.AddItem(key)
	assert.Equal([]*Item{key}, p.Items())
	assert.Same(key, p.FindItem([]string{"DROP", "KEY"}))
	assert.Contains(p.Items(), key)

	p.RemoveItem(key)
	p.RemoveItem(key)
	assert.Empty(p.Items())

	p.SetPlaying(false)
	assert.False(p.IsPlaying())
}
