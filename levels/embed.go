package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadLevelFromFS loads an embedded level by base name. The .json suffix
// is optional.
func LoadLevelFromFS(name string) (*Map, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	m, err := Unmarshal(data, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	return m, nil
}

// EmbeddedLevels lists the embedded level names without extension.
func EmbeddedLevels() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
