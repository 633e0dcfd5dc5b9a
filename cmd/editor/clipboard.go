package main

import (
	"log"

	"golang.design/x/clipboard"

	"github.com/milk9111/topdown/editor"
)

// systemClipboard mirrors the editor clipboard as JSON text so regions can
// be copied between editor windows.
type systemClipboard struct {
	ok bool
}

func newSystemClipboard() *systemClipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("[clipboard] system clipboard unavailable: %v", err)
		return &systemClipboard{}
	}
	return &systemClipboard{ok: true}
}

func (c *systemClipboard) Put(cb *editor.Clipboard) {
	if !c.ok || cb == nil {
		return
	}
	data, err := editor.EncodeClipboard(cb)
	if err != nil {
		log.Printf("[clipboard] %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}

// Get returns the region on the system clipboard, or nil when it holds
// anything else.
func (c *systemClipboard) Get() *editor.Clipboard {
	if !c.ok {
		return nil
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil
	}
	cb, err := editor.DecodeClipboard(data)
	if err != nil {
		return nil
	}
	return cb
}
