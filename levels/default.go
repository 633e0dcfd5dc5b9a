package levels

import "github.com/milk9111/topdown/common"

const DefaultTileSize = common.TileSize

// DefaultMap is the fallback map used when no snapshot is available: every
// layer empty, which renders as filler ground, with the spawn in the middle.
func DefaultMap() *Map {
	m, err := NewMap(DefaultName, common.DefaultMapWidth, common.DefaultMapHeight, DefaultTileSize)
	if err != nil {
		panic(err)
	}
	return m
}
