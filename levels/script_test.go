package levels

import "testing"

func TestGenerateScript(t *testing.T) {
	src := `
ground = func(x, y) {
	if x == y { return [1, 2] }
	return undefined
}
collision = func(x, y) { return x == 0 }
spawn := [2, 1]
`
	m, err := GenerateScript([]byte(src), Generator{Name: "diag", Width: 4, Height: 3, TileSize: 32})
	if err != nil {
		t.Fatalf("GenerateScript: %v", err)
	}
	if !m.Tile(Ground, 1, 1).Equal(Atlas(1, 2)) || !m.Tile(Ground, 2, 1).IsEmpty() {
		t.Fatalf("ground not generated from script")
	}
	for y := 0; y < 3; y++ {
		if !m.Blocked(0, y) || m.Blocked(1, y) {
			t.Fatalf("collision column 0 expected at row %d", y)
		}
	}
	if !m.Tile(Objects, 3, 2).IsEmpty() {
		t.Fatalf("objects should stay empty when undefined")
	}
	if m.Spawn != (Point{X: 2, Y: 1}) || m.TileSize != 32 {
		t.Fatalf("unexpected spawn %+v tile size %d", m.Spawn, m.TileSize)
	}
}

func TestGenerateScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `ground = func(x, y) {`},
		{"bad_tile", `ground = func(x, y) { return "grass" }`},
		{"spawn_outside", `spawn := [40, 40]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := GenerateScript([]byte(c.src), Generator{Name: c.name, Width: 3, Height: 3, TileSize: 64}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestGenerateEmbeddedIsDeterministic(t *testing.T) {
	g := Generator{Width: 12, Height: 8, TileSize: 64, Seed: 7}
	a, err := GenerateEmbedded("meadow", g)
	if err != nil {
		t.Fatalf("GenerateEmbedded: %v", err)
	}
	b, err := GenerateEmbedded("meadow", g)
	if err != nil {
		t.Fatalf("GenerateEmbedded: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("same seed should generate the same map")
	}
	if !a.Blocked(0, 0) || a.Blocked(a.Spawn.X, a.Spawn.Y) {
		t.Fatalf("meadow should have a blocked border and a free spawn")
	}
	if a.Name != "meadow" {
		t.Fatalf("expected name meadow, got %q", a.Name)
	}
}

func TestGenerateScriptSeededRand(t *testing.T) {
	src := `
rng := import("rand").rand(seed)
ground = func(x, y) { return [0, rng.intn(1000)] }
`
	gen := func(seed int64) *Map {
		m, err := GenerateScript([]byte(src), Generator{Name: "noise", Width: 6, Height: 4, TileSize: 16, Seed: seed})
		if err != nil {
			t.Fatalf("GenerateScript: %v", err)
		}
		return m
	}
	for trial := 0; trial < 3; trial++ {
		if !gen(7).Equal(gen(7)) {
			t.Fatalf("trial %d: seed 7 produced different maps", trial)
		}
	}
	if gen(7).Equal(gen(8)) {
		t.Fatalf("seeds 7 and 8 produced the same map")
	}
}
