package quest

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorld = `format = "QUEST"
type = "DATA"

[world]
start = "a"

[[room]]
label = "a"
name = "Room A"
description = "A plain room."
items = ["key"]

  [[room.exit]]
  direction = "north"
  dest = "b"

[[room]]
label = "b"
name = "Room B"
description = "Another plain room."

  [[room.exit]]
  direction = "south"
  dest = "a"
`

func newTestEngine(t *testing.T, input string) (*Engine, *bytes.Buffer) {
	worldPath := filepath.Join(t.TempDir(), "world.qw")
	require.NoError(t, os.WriteFile(worldPath, []byte(testWorld), 0660))

	out := &bytes.Buffer{}
	eng, err := New(strings.NewReader(input), out, Config{WorldFile: worldPath})
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })

	return eng, out
}

func Test_Engine_RunUntilQuit(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectRoom   string
		expectItems  []string
		expectOut    []string
		expectNotOut []string
		expectQuit   bool
	}{
		{
			name:       "go north",
			input:      "GO NORTH\nQUIT\n",
			expectRoom: "B",
			expectOut:  []string{"Room B", "Another plain room.", "Good-bye!"},
			expectQuit: true,
		},
		{
			name:        "take key",
			input:       "TAKE KEY\nQUIT\n",
			expectRoom:  "A",
			expectItems: []string{"key"},
			expectOut:   []string{"You took the key.\n"},
			expectQuit:  true,
		},
		{
			name:       "take missing item reports twice",
			input:      "TAKE ROCK\nQUIT\n",
			expectRoom: "A",
			expectOut:  []string{"What should I take?\nSorry, I don't understand you.\n"},
			expectQuit: true,
		},
		{
			name:         "no verb reports once",
			input:        "FOO BAR\nQUIT\n",
			expectRoom:   "A",
			expectOut:    []string{"commands type help.\nSorry, I don't understand you.\n"},
			expectNotOut: []string{"What should I take?"},
			expectQuit:   true,
		},
		{
			name:         "quit stops reading",
			input:        "QUIT\nGO NORTH\n",
			expectRoom:   "A",
			expectOut:    []string{"Good-bye!"},
			expectNotOut: []string{"Room B"},
			expectQuit:   true,
		},
		{
			name:       "q alias in lower case",
			input:      "q\n",
			expectRoom: "A",
			expectOut:  []string{"Good-bye!"},
			expectQuit: true,
		},
		{
			name:       "end of input without quit",
			input:      "go north\n",
			expectRoom: "B",
			expectQuit: false,
		},
		{
			name:        "round trip with drop",
			input:       "take key\ngo north\ndrop key\ngo south\nlook\nquit\n",
			expectRoom:  "A",
			expectItems: nil,
			expectOut:   []string{"You dropped the key."},
			expectQuit:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			eng, out := newTestEngine(t, tc.input)

			err := eng.RunUntilQuit()
			if !assert.NoError(err) {
				return
			}

			gs := eng.State()
			assert.Equal(tc.expectRoom, gs.Player.CurrentRoom.Label)
			assert.Equal(!tc.expectQuit, gs.Player.IsPlaying())

			var names []string
			for _, it := range gs.Player.Items() {
				names = append(names, it.Name)
			}
			assert.Equal(tc.expectItems, names)

			output := out.String()
			for _, s := range tc.expectOut {
				assert.Contains(output, s)
			}
			for _, s := range tc.expectNotOut {
				assert.NotContains(output, s)
			}
		})
	}
}

func Test_Engine_prompts(t *testing.T) {
	assert := assert.New(t)

	eng, out := newTestEngine(t, "look\nquit\n")

	assert.NoError(eng.RunUntilQuit())

	output := out.String()
	assert.Equal(1, strings.Count(output, FirstPrompt))
	// the first prompt contains the normal one
	assert.Equal(2, strings.Count(output, Prompt))
	assert.True(strings.HasPrefix(output, "Welcome to Quest\n"))
}

func Test_Engine_droppedItemStaysInRoom(t *testing.T) {
	assert := assert.New(t)

	eng, _ := newTestEngine(t, "take key\ngo north\ndrop key\nquit\n")

	assert.NoError(eng.RunUntilQuit())

	gs := eng.State()
	b := gs.World.Room("B")
	a := gs.World.Room("A")
	assert.Empty(gs.Player.Items())
	assert.Len(b.Items(), 1)
	assert.Empty(a.Items())
}

func Test_New(t *testing.T) {
	t.Run("built-in world", func(t *testing.T) {
		assert := assert.New(t)

		var logBuf bytes.Buffer
		eng, err := New(strings.NewReader("quit\n"), &bytes.Buffer{}, Config{
			PlayerName: "Ada",
			Log:        log.New(&logBuf, "", 0),
		})
		if !assert.NoError(err) {
			return
		}
		defer eng.Close()

		assert.Equal("Ada", eng.State().Player.Name)
		assert.NotNil(eng.State().Player.CurrentRoom)
		assert.NoError(eng.RunUntilQuit())
		assert.Contains(logBuf.String(), "DEBUG Loading built-in world")
	})

	t.Run("default player name", func(t *testing.T) {
		eng, err := New(strings.NewReader(""), &bytes.Buffer{}, Config{})
		require.NoError(t, err)
		defer eng.Close()

		assert.Equal(t, DefaultPlayerName, eng.State().Player.Name)
	})

	t.Run("missing world file", func(t *testing.T) {
		_, err := New(strings.NewReader(""), &bytes.Buffer{}, Config{
			WorldFile: filepath.Join(t.TempDir(), "missing.qw"),
		})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
