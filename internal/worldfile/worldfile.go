// Package worldfile has functions for loading game worlds from QW (Quest
// World) files, a TOML-based format that defines the rooms of a world, the
// exits between them, and the items placed in them.
//
// Every QW file starts with a header giving its format and type:
//
//	format = "QUEST"
//	type = "DATA"
//
// A DATA file defines rooms and may define the start room:
//
//	[world]
//	start = "hall"
//
//	[[room]]
//	label = "hall"
//	name = "Great Hall"
//	description = "A long hall with a high ceiling."
//	items = ["key"]
//
//	  [[room.exit]]
//	  direction = "north"
//	  dest = "library"
//
// A MANIFEST file instead lists other QW files, relative to itself, whose
// contents are combined:
//
//	format = "QUEST"
//	type = "MANIFEST"
//	files = ["rooms/ground.qw", "rooms/upstairs.qw"]
package worldfile

import (
	_ "embed"
	"errors"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/quest/internal/game"
)

// MaxManifestRecursionDepth is how many manifests deep inclusion may go.
const MaxManifestRecursionDepth = 32

// FormatName is the value the 'format' key of every QW file must have.
const FormatName = "QUEST"

var (
	// ErrManifestEmpty is the error returned when a manifest file is read
	// successfully but specifies no additional files to load.
	ErrManifestEmpty = errors.New("does not list any valid files to include")

	// ErrManifestStackOverflow is the error returned when the recusion level of
	// MaxManifestRecursionDepth is reached and an additional Manifest is then
	// specified, which would cause recursion to go deeper.
	ErrManifestStackOverflow = errors.New("too many manifests deep")

	// ErrManifestCircularRef is the error returned when a manifest specifies any
	// series of files that with their own manifests refer back to the original
	// manifest, and therefore cannot be followed.
	ErrManifestCircularRef = errors.New("manifest inclusion chain refers back to itself")
)

//go:embed default.qw
var defaultWorld []byte

// FileInfo contains the essential information all QW format files must
// contain. It can be obtained from a file by reading it into memory and calling
// ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// LoadResourceBundle loads a world up from the given QW file. The file's type
// is auto-detected and decoding is handled appropriately; the type can either
// be "DATA" type or "MANIFEST" type; if it's manifest type, the files listed in
// it relative to it will also be loaded. All files included will be combined
// into one single set of data before being checked, and if a manifest is
// encountered, all files in it are recursively included.
func LoadResourceBundle(path string) (*game.World, error) {
	unmarshaled, err := recursiveUnmarshalResource(path, nil)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// LoadDefault loads the world that is built into the program. Every call
// returns a new, independent World.
func LoadDefault() (*game.World, error) {
	return ParseWorldData(defaultWorld)
}

// ParseWorldData reads a world from the bytes of a single QW DATA file.
func ParseWorldData(data []byte) (*game.World, error) {
	unmarshaled, err := unmarshalWorldData(data)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// ScanFileInfo takes the given data bytes of bytes and attempts to read the QW
// format common header info from it. The bytes are read up to the first
// instance of a table definition header and those bytes are parsed for the
// info. If there is an error reading the info, returns a non-nil error.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-lev table
	var topLevelEnd int = -1
	onNewLine := true
	for b := range data {
		if onNewLine {
			if data[b] == '[' {
				topLevelEnd = b
				break
			}
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
