package levels

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TileRef points at a cell of the tile atlas, or at nothing.
type TileRef struct {
	set bool
	row int
	col int
}

// Empty returns the empty tile reference.
func Empty() TileRef {
	return TileRef{}
}

// Atlas returns a reference to the atlas cell at (row, col).
func Atlas(row, col int) TileRef {
	return TileRef{set: true, row: row, col: col}
}

func (t TileRef) IsEmpty() bool {
	return !t.set
}

// RowCol returns the atlas coordinates. ok is false for an empty reference.
func (t TileRef) RowCol() (row, col int, ok bool) {
	return t.row, t.col, t.set
}

func (t TileRef) Row() int { return t.row }
func (t TileRef) Col() int { return t.col }

func (t TileRef) Equal(o TileRef) bool {
	if t.set != o.set {
		return false
	}
	return !t.set || (t.row == o.row && t.col == o.col)
}

func (t TileRef) String() string {
	if !t.set {
		return "empty"
	}
	return fmt.Sprintf("[%d,%d]", t.row, t.col)
}

func (t TileRef) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	return json.Marshal([2]int{t.row, t.col})
}

func (t *TileRef) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = Empty()
		return nil
	}
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("tile: %w", err)
	}
	ref, err := tileFromPair(pair)
	if err != nil {
		return err
	}
	*t = ref
	return nil
}

func (t TileRef) MarshalYAML() (interface{}, error) {
	if !t.set {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	node.Content = []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(t.row)},
		{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(t.col)},
	}
	return node, nil
}

func (t *TileRef) UnmarshalYAML(value *yaml.Node) error {
	if isYAMLNull(value) {
		*t = Empty()
		return nil
	}
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("tile: %w", err)
	}
	ref, err := tileFromPair(pair)
	if err != nil {
		return err
	}
	*t = ref
	return nil
}

func isYAMLNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// UnmarshalYAML decodes the layer grids cell by cell. yaml.v3 skips custom
// unmarshalers for null nodes, which would drop empty cells from a row.
func (l *SnapshotLayers) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Ground    yaml.Node `yaml:"ground"`
		Objects   yaml.Node `yaml:"objects"`
		Collision [][]bool  `yaml:"collision"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	ground, err := decodeTileGrid("ground", &raw.Ground)
	if err != nil {
		return err
	}
	objects, err := decodeTileGrid("objects", &raw.Objects)
	if err != nil {
		return err
	}
	*l = SnapshotLayers{Ground: ground, Objects: objects, Collision: raw.Collision}
	return nil
}

func decodeTileGrid(layer string, n *yaml.Node) ([][]TileRef, error) {
	if n.Kind == 0 || isYAMLNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("layer %s: line %d: want a list of rows", layer, n.Line)
	}
	grid := make([][]TileRef, 0, len(n.Content))
	for _, rowNode := range n.Content {
		if rowNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("layer %s: line %d: want a row of tiles", layer, rowNode.Line)
		}
		row := make([]TileRef, len(rowNode.Content))
		for i, cell := range rowNode.Content {
			if err := row[i].UnmarshalYAML(cell); err != nil {
				return nil, fmt.Errorf("layer %s: line %d: %w", layer, cell.Line, err)
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func tileFromPair(pair []int) (TileRef, error) {
	if len(pair) != 2 {
		return TileRef{}, fmt.Errorf("tile: want [row, col], got %d values", len(pair))
	}
	if pair[0] < 0 || pair[1] < 0 {
		return TileRef{}, fmt.Errorf("tile: negative atlas coordinate %v", pair)
	}
	return Atlas(pair[0], pair[1]), nil
}
