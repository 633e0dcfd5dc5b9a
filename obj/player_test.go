package obj

import "testing"

func TestPlayerSpawnsOnSpawnTile(t *testing.T) {
	m := testMap(t, 20, 20)
	_ = m.SetSpawn(3, 7)
	p := NewPlayer(m)
	if p.X != 3*64 || p.Y != 7*64 {
		t.Fatalf("unexpected spawn position (%v,%v)", p.X, p.Y)
	}
}

func TestPlayerFacingAndAnimation(t *testing.T) {
	m := testMap(t, 40, 40)
	p := NewPlayer(m)
	in := &Input{Left: true}

	for i := 0; i < p.FrameDelay; i++ {
		p.Update(in)
	}
	if p.Facing != FacingLeft || !p.Moving {
		t.Fatalf("expected moving left, got %v moving=%v", p.Facing, p.Moving)
	}
	if p.Frame != 1 {
		t.Fatalf("frame should advance once every %d updates, got %d", p.FrameDelay, p.Frame)
	}
	f := p.CurrentFrame()
	if f.Row != 1 || f.Col != 1 {
		t.Fatalf("left should use row 1, got %+v", f)
	}

	p.Update(&Input{})
	if p.Moving || p.Frame != 0 {
		t.Fatalf("idle should reset the animation")
	}

	p.Update(&Input{Up: true, Right: true})
	if p.Facing != FacingRight {
		t.Fatalf("right should win over up, got %v", p.Facing)
	}
	p.Update(&Input{Up: true})
	if p.CurrentFrame().Row != 2 {
		t.Fatalf("up should use row 2")
	}
	p.Update(&Input{Down: true})
	if p.CurrentFrame().Row != 3 {
		t.Fatalf("down should use row 3")
	}
}

func TestPlayerBlockedByBorder(t *testing.T) {
	m := testMap(t, 6, 6)
	_ = m.SetSpawn(0, 0)
	p := NewPlayer(m)
	x, y := p.X, p.Y
	for i := 0; i < 100; i++ {
		p.Update(&Input{Up: true, Left: true})
	}
	bb := p.HitboxBB()
	if bb.L < 0 || bb.T < 0 {
		t.Fatalf("hitbox left the world: %+v", bb)
	}
	if p.X > x || p.Y > y {
		t.Fatalf("moving up-left should never increase position")
	}
}

func TestWalkFrame(t *testing.T) {
	cases := []struct {
		d    Direction
		n    int
		want SpriteFrame
	}{
		{FacingDown, 0, SpriteFrame{Row: 3, Col: 0}},
		{FacingRight, 2, SpriteFrame{Row: 1, Col: 2}},
		{FacingLeft, 5, SpriteFrame{Row: 1, Col: 1}},
		{FacingUp, 3, SpriteFrame{Row: 2, Col: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := WalkFrame(tc.d, tc.n); got != tc.want {
				t.Fatalf("WalkFrame(%s, %d) = %+v, want %+v", tc.d, tc.n, got, tc.want)
			}
		})
	}
}
