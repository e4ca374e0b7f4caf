package worldfile

// topLevelManifest is the top-level structure containing all keys in a
// complete QW 'MANIFEST' type file.
type topLevelManifest struct {
	Format string   `toml:"format"`
	Type   string   `toml:"type"`
	Files  []string `toml:"files"`
}

// topLevelWorldData is the top-level structure containing all keys in a
// complete QW 'DATA' type file.
type topLevelWorldData struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
	World  world  `toml:"world"`
	Rooms  []room `toml:"room"`
}

type world struct {
	Start string `toml:"start"`
}

type room struct {
	Label       string   `toml:"label"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Items       []string `toml:"items"`
	Exits       []exit   `toml:"exit"`
}

type exit struct {
	Direction string `toml:"direction"`
	Dest      string `toml:"dest"`
}
