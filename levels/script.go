package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed *.tengo
var GeneratorsFS embed.FS

// generatorDispatch runs after the user script. The script fills in any of
// the ground, objects and collision globals with func(x, y) values; missing
// ones leave their layer empty.
const generatorDispatch = `
__ground := []
__objects := []
__collision := []
for __y := 0; __y < height; __y++ {
	__g := []
	__o := []
	__c := []
	for __x := 0; __x < width; __x++ {
		__g = append(__g, is_callable(ground) ? ground(__x, __y) : undefined)
		__o = append(__o, is_callable(objects) ? objects(__x, __y) : undefined)
		__c = append(__c, is_callable(collision) ? collision(__x, __y) : false)
	}
	__ground = append(__ground, __g)
	__objects = append(__objects, __o)
	__collision = append(__collision, __c)
}
`

// Generator describes the inputs of a scripted map.
type Generator struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Seed     int64
}

// GenerateScript compiles and runs a tengo generator script and builds a map
// from the layer functions it defines. Scripts assign the globals
// ground/objects/collision (with =, not :=) and may define spawn := [x, y].
// The seed global holds g.Seed. Scripts that want repeatable output must
// draw from rand.rand(seed); the package level rand functions ignore seeding.
func GenerateScript(src []byte, g Generator) (*Map, error) {
	m, err := NewMap(g.Name, g.Width, g.Height, g.TileSize)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + generatorDispatch))
	_ = script.Add("width", g.Width)
	_ = script.Add("height", g.Height)
	_ = script.Add("tile_size", g.TileSize)
	_ = script.Add("seed", g.Seed)
	_ = script.Add("ground", nil)
	_ = script.Add("objects", nil)
	_ = script.Add("collision", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile generator %s: %w", g.Name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run generator %s: %w", g.Name, err)
	}

	ground := compiled.Get("__ground").Array()
	objects := compiled.Get("__objects").Array()
	collision := compiled.Get("__collision").Array()
	for y := 0; y < g.Height; y++ {
		gRow, _ := ground[y].([]interface{})
		oRow, _ := objects[y].([]interface{})
		cRow, _ := collision[y].([]interface{})
		for x := 0; x < g.Width; x++ {
			t, err := scriptTile(gRow[x])
			if err != nil {
				return nil, fmt.Errorf("generator %s ground (%d,%d): %w", g.Name, x, y, err)
			}
			m.ground[y][x] = t
			if t, err = scriptTile(oRow[x]); err != nil {
				return nil, fmt.Errorf("generator %s objects (%d,%d): %w", g.Name, x, y, err)
			}
			m.objects[y][x] = t
			b, _ := cRow[x].(bool)
			m.collision[y][x] = b
		}
	}

	if compiled.IsDefined("spawn") {
		if p := compiled.Get("spawn").Array(); len(p) == 2 {
			sx, _ := p[0].(int64)
			sy, _ := p[1].(int64)
			if err := m.SetSpawn(int(sx), int(sy)); err != nil {
				return nil, fmt.Errorf("generator %s: %w", g.Name, err)
			}
		}
	}
	return m, nil
}

// GenerateEmbedded runs one of the bundled generator scripts by base name.
func GenerateEmbedded(name string, g Generator) (*Map, error) {
	if !strings.HasSuffix(name, ".tengo") {
		name += ".tengo"
	}
	src, err := fs.ReadFile(GeneratorsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read generator: %w", err)
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(name, ".tengo")
	}
	return GenerateScript(src, g)
}

func scriptTile(v interface{}) (TileRef, error) {
	if v == nil {
		return Empty(), nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return Empty(), fmt.Errorf("tile must be [row, col] or undefined, got %T", v)
	}
	pair := make([]int, 0, len(arr))
	for _, e := range arr {
		n, ok := e.(int64)
		if !ok {
			return Empty(), fmt.Errorf("tile component must be int, got %T", e)
		}
		pair = append(pair, int(n))
	}
	return tileFromPair(pair)
}
