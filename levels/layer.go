package levels

import "fmt"

type Layer int

const (
	Ground Layer = iota
	Objects
	Collision
)

// Layers lists every layer in draw order.
var Layers = []Layer{Ground, Objects, Collision}

func (l Layer) String() string {
	switch l {
	case Ground:
		return "ground"
	case Objects:
		return "objects"
	case Collision:
		return "collision"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// IsTileLayer reports whether cells of the layer hold tile references.
func (l Layer) IsTileLayer() bool {
	return l == Ground || l == Objects
}

func ParseLayer(s string) (Layer, error) {
	switch s {
	case "ground":
		return Ground, nil
	case "objects":
		return Objects, nil
	case "collision":
		return Collision, nil
	}
	return 0, fmt.Errorf("unknown layer %q", s)
}

// Cell is the value held by a single layer cell. Tile layers use Tile and
// the collision layer uses Blocked.
type Cell struct {
	Tile    TileRef
	Blocked bool
}

func TileCell(t TileRef) Cell {
	return Cell{Tile: t}
}

func BlockedCell(b bool) Cell {
	return Cell{Blocked: b}
}

func (c Cell) Equal(o Cell) bool {
	return c.Blocked == o.Blocked && c.Tile.Equal(o.Tile)
}

// IsEmpty reports whether the cell holds neither a tile nor a block.
func (c Cell) IsEmpty() bool {
	return c.Tile.IsEmpty() && !c.Blocked
}

func (c Cell) String() string {
	if c.Blocked {
		return "blocked"
	}
	return c.Tile.String()
}
