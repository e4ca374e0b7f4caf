package worldfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// manifStack is for two reasons ->
// * detect circular deps (not an error, but we need to know to avoid them)
// * avoid infinite recursion (allow up to MaxManifestRecursionDepth levels)
//
// Returns ErrManifestEmpty if and only if the first manifest in the stack is
// empty, otherwise it is not an error.
func recursiveUnmarshalResource(path string, manifStack []string) (topLevelWorldData, error) {
	path = filepath.Clean(path)

	fileData, loadErr := os.ReadFile(path)
	if loadErr != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: reading from disk: %w", path, loadErr)
	}

	fileInfo, err := ScanFileInfo(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: detecting file type: %w", path, err)
	}

	if strings.ToUpper(fileInfo.Format) != FormatName {
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have a 'format = %q' entry", path, FormatName)
	}

	switch strings.ToUpper(fileInfo.Type) {
	case "DATA":
		unmarshaled, err := unmarshalWorldData(fileData)
		if err != nil {
			return unmarshaled, fmt.Errorf("world data file %q: %w", path, err)
		}
		return unmarshaled, nil
	case "MANIFEST":
		// check the stack to be sure we havent recursed too far and to be sure
		// we aren't about to re-scan a circular-ref'd manifest file we've
		// already brought in.
		if len(manifStack) >= MaxManifestRecursionDepth {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestStackOverflow)
		}
		for i := range manifStack {
			if manifStack[i] == path {
				return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestCircularRef)
			}
		}

		manif, err := unmarshalManifest(fileData)
		if err != nil {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, err)
		}

		// an empty manifest is only a problem for the very first manifest.
		if len(manif.Files) < 1 && len(manifStack) == 0 {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
		}

		manifSubStack := make([]string, len(manifStack)+1)
		copy(manifSubStack, manifStack)
		manifSubStack[len(manifSubStack)-1] = path

		manifDir := filepath.Dir(path)

		combined := topLevelWorldData{}
		processedFiles := 0

		for _, manifRelPath := range manif.Files {
			includedFilePath := filepath.Join(manifDir, manifRelPath)

			included, err := recursiveUnmarshalResource(includedFilePath, manifSubStack)
			if err != nil {
				// if it's a circular reference, that's actually okay. we will
				// just skip reading it and move on to the next entry.
				if errors.Is(err, ErrManifestCircularRef) {
					continue
				}

				return topLevelWorldData{}, fmt.Errorf("in file referred to by manifest file:\n    %q\n%w", path, err)
			}

			if included.World.Start != "" {
				if combined.World.Start != "" {
					return topLevelWorldData{}, fmt.Errorf("world data file %q: duplicate start; start has already been defined as %q", includedFilePath, combined.World.Start)
				}
				combined.World.Start = included.World.Start
			}
			combined.Rooms = append(combined.Rooms, included.Rooms...)
			processedFiles++
		}

		if len(manifStack) == 0 && processedFiles == 0 {
			// then the first file is a manifest file and gave NO valid
			// definitions.
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
		}
		return combined, nil
	default:
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have 'type = ' entry set to either \"DATA\" or \"MANIFEST\"", path)
	}
}

// unmarshalWorldData unmarshals world data from the given bytes. It does not
// parse or check world data.
func unmarshalWorldData(tomlData []byte) (topLevelWorldData, error) {
	var qw topLevelWorldData
	if tomlErr := toml.Unmarshal(tomlData, &qw); tomlErr != nil {
		return qw, tomlErr
	}

	if strings.ToUpper(qw.Format) != FormatName {
		return qw, fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(qw.Type) != "DATA" {
		return qw, fmt.Errorf("in header: 'type' must exist and be set to 'DATA'")
	}

	return qw, nil
}

// unmarshalManifest unmarshals a QW manifest from the given bytes.
func unmarshalManifest(tomlData []byte) (topLevelManifest, error) {
	var qw topLevelManifest
	if tomlErr := toml.Unmarshal(tomlData, &qw); tomlErr != nil {
		return qw, tomlErr
	}

	if strings.ToUpper(qw.Format) != FormatName {
		return qw, fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(qw.Type) != "MANIFEST" {
		return qw, fmt.Errorf("in header: 'type' must exist and be set to 'MANIFEST'")
	}

	return qw, nil
}
