package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/topdown/editor"
)

func TestCommandsFor(t *testing.T) {
	cases := []struct {
		name string
		keys []ebiten.Key
		ctrl bool
		want []editor.Command
	}{
		{"tool", []ebiten.Key{ebiten.KeyF}, false, []editor.Command{editor.CmdFill}},
		{"undo", []ebiten.Key{ebiten.KeyZ}, true, []editor.Command{editor.CmdUndo}},
		{"save vs select", []ebiten.Key{ebiten.KeyS}, true, []editor.Command{editor.CmdSave}},
		{"zoom", []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadSubtract}, false, []editor.Command{editor.CmdZoomIn, editor.CmdZoomOut}},
		{"unbound", []ebiten.Key{ebiten.KeyQ, ebiten.KeyZ}, false, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := commandsFor(tc.keys, tc.ctrl)
			if len(got) != len(tc.want) {
				t.Fatalf("commandsFor = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("commandsFor = %v, want %v", got, tc.want)
				}
			}
		})
	}
}
