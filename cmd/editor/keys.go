package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/topdown/editor"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyB:              "b",
	ebiten.KeyC:              "c",
	ebiten.KeyE:              "e",
	ebiten.KeyF:              "f",
	ebiten.KeyG:              "g",
	ebiten.KeyK:              "k",
	ebiten.KeyL:              "l",
	ebiten.KeyN:              "n",
	ebiten.KeyO:              "o",
	ebiten.KeyP:              "p",
	ebiten.KeyS:              "s",
	ebiten.KeyT:              "t",
	ebiten.KeyV:              "v",
	ebiten.KeyY:              "y",
	ebiten.KeyZ:              "z",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "+",
	ebiten.KeyNumpadSubtract: "-",
	ebiten.KeyEscape:         "escape",
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// commandsFor maps the keys pressed this frame to editor commands.
func commandsFor(keys []ebiten.Key, ctrl bool) []editor.Command {
	var cmds []editor.Command
	for _, k := range keys {
		name, ok := keyNames[k]
		if !ok {
			continue
		}
		if c := editor.CommandForKey(name, ctrl); c != editor.CmdNone {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

func justPressedCommands() []editor.Command {
	return commandsFor(inpututil.AppendJustPressedKeys(nil), ctrlPressed())
}
