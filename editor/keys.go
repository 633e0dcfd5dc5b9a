package editor

import "strings"

// Command is an editor action bound to the keyboard.
type Command int

const (
	CmdNone Command = iota
	CmdBrush
	CmdEraser
	CmdFill
	CmdSelect
	CmdZoomIn
	CmdZoomOut
	CmdToggleDrawMode
	CmdClearSelection
	CmdSpawn
	CmdUndo
	CmdRedo
	CmdCopy
	CmdPaste

	// Commands below need I/O or view state and are left to the front-end.
	CmdSave
	CmdOpen
	CmdExport
	CmdLoad
	CmdNew
	CmdTestMap
	CmdToggleGrid
	CmdToggleCollision
)

var commandNames = map[Command]string{
	CmdNone:            "none",
	CmdBrush:           "brush",
	CmdEraser:          "eraser",
	CmdFill:            "fill",
	CmdSelect:          "select",
	CmdZoomIn:          "zoom-in",
	CmdZoomOut:         "zoom-out",
	CmdToggleDrawMode:  "toggle-draw-mode",
	CmdClearSelection:  "clear-selection",
	CmdSpawn:           "spawn",
	CmdUndo:            "undo",
	CmdRedo:            "redo",
	CmdCopy:            "copy",
	CmdPaste:           "paste",
	CmdSave:            "save",
	CmdOpen:            "open",
	CmdExport:          "export",
	CmdLoad:            "load",
	CmdNew:             "new",
	CmdTestMap:         "test-map",
	CmdToggleGrid:      "toggle-grid",
	CmdToggleCollision: "toggle-collision",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

var plainKeys = map[string]Command{
	"b":      CmdBrush,
	"e":      CmdEraser,
	"f":      CmdFill,
	"s":      CmdSelect,
	"+":      CmdZoomIn,
	"=":      CmdZoomIn,
	"-":      CmdZoomOut,
	"_":      CmdZoomOut,
	"o":      CmdToggleDrawMode,
	"escape": CmdClearSelection,
	"p":      CmdSpawn,
	"t":      CmdTestMap,
	"g":      CmdToggleGrid,
	"k":      CmdToggleCollision,
}

var ctrlKeys = map[string]Command{
	"z": CmdUndo,
	"y": CmdRedo,
	"c": CmdCopy,
	"v": CmdPaste,
	"s": CmdSave,
	"o": CmdOpen,
	"e": CmdExport,
	"l": CmdLoad,
	"n": CmdNew,
}

// CommandForKey maps a key name to its command. Letters are matched case
// insensitively.
func CommandForKey(key string, ctrl bool) Command {
	key = strings.ToLower(key)
	table := plainKeys
	if ctrl {
		table = ctrlKeys
	}
	if c, ok := table[key]; ok {
		return c
	}
	return CmdNone
}

// Exec runs a session command and reports whether it was handled. I/O and
// view commands return false.
func (s *Session) Exec(c Command) bool {
	switch c {
	case CmdBrush:
		s.SetTool(ToolBrush)
	case CmdEraser:
		s.SetTool(ToolEraser)
	case CmdFill:
		s.SetTool(ToolFill)
	case CmdSelect:
		s.SetTool(ToolSelect)
	case CmdZoomIn:
		s.ZoomIn()
	case CmdZoomOut:
		s.ZoomOut()
	case CmdToggleDrawMode:
		s.ToggleDrawMode()
	case CmdClearSelection:
		s.ClearSelection()
	case CmdSpawn:
		s.BeginSpawnPlacement()
	case CmdUndo:
		s.Undo()
	case CmdRedo:
		s.Redo()
	case CmdCopy:
		s.Copy()
	case CmdPaste:
		s.Paste()
	default:
		return false
	}
	return true
}
