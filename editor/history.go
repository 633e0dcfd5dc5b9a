package editor

import (
	"fmt"
	"log"

	"github.com/milk9111/topdown/levels"
)

const DefaultHistoryLimit = 50

type ActionKind int

const (
	ActionPaint ActionKind = iota
	ActionErase
	ActionFill
	ActionPaste
)

func (k ActionKind) String() string {
	switch k {
	case ActionPaint:
		return "paint"
	case ActionErase:
		return "erase"
	case ActionFill:
		return "fill"
	case ActionPaste:
		return "paste"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Change records one cell write.
type Change struct {
	Layer levels.Layer
	X, Y  int
	Old   levels.Cell
	New   levels.Cell
}

// Action is one undoable edit. Brush and eraser strokes hold a single
// change; fill, paste and stamp applications hold every cell they touched.
type Action struct {
	Kind    ActionKind
	Changes []Change
}

// History is a bounded undo/redo list. cursor is the index of the most
// recently applied action, -1 when there is nothing to undo.
type History struct {
	entries  []Action
	cursor   int
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryLimit
	}
	return &History{cursor: -1, capacity: capacity}
}

// Push drops any redoable actions and appends a. When the history is full
// the oldest action is evicted and the cursor stays on the newest entry.
func (h *History) Push(a Action) {
	if len(a.Changes) == 0 {
		return
	}
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, a)
	if len(h.entries) > h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = Action{}
		h.entries = h.entries[:len(h.entries)-1]
		return
	}
	h.cursor++
}

// Undo reverts the action under the cursor.
func (h *History) Undo(m *levels.Map) bool {
	if !h.CanUndo() {
		log.Println("[history] nothing to undo")
		return false
	}
	a := h.entries[h.cursor]
	for i := len(a.Changes) - 1; i >= 0; i-- {
		c := a.Changes[i]
		if err := m.Set(c.Layer, c.X, c.Y, c.Old); err != nil {
			log.Printf("[history] undo %s: %v", a.Kind, err)
		}
	}
	h.cursor--
	return true
}

// Redo reapplies the action after the cursor.
func (h *History) Redo(m *levels.Map) bool {
	if !h.CanRedo() {
		log.Println("[history] nothing to redo")
		return false
	}
	h.cursor++
	a := h.entries[h.cursor]
	for _, c := range a.Changes {
		if err := m.Set(c.Layer, c.X, c.Y, c.New); err != nil {
			log.Printf("[history] redo %s: %v", a.Kind, err)
		}
	}
	return true
}

func (h *History) CanUndo() bool {
	return h.cursor >= 0
}

func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Capacity() int {
	return h.capacity
}

func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}
