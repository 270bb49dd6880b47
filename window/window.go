package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrCursorMode = errors.New("window: cursor mode not applied")

// Ebiten applies cursor grab and visibility through ebiten's cursor modes.
// Grabbing maps to CursorModeCaptured, which also hides the cursor, so the
// two requests are folded into one mode.
type Ebiten struct {
	grabbed bool
	hidden  bool

	setMode func(ebiten.CursorModeType)
	mode    func() ebiten.CursorModeType
}

func NewEbiten() *Ebiten {
	return &Ebiten{
		setMode: ebiten.SetCursorMode,
		mode:    ebiten.CursorMode,
	}
}

// GrabCursor confines the cursor to the window. It fails when the platform
// refuses the mode, e.g. a browser without pointer lock permission.
func (w *Ebiten) GrabCursor(grab bool) error {
	w.grabbed = grab
	want := w.apply()
	if got := w.mode(); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrCursorMode, modeName(want), modeName(got))
	}
	return nil
}

// HideCursor shows or hides the cursor without reporting failures.
func (w *Ebiten) HideCursor(hide bool) {
	w.hidden = hide
	w.apply()
}

func (w *Ebiten) apply() ebiten.CursorModeType {
	mode := ebiten.CursorModeVisible
	switch {
	case w.grabbed:
		mode = ebiten.CursorModeCaptured
	case w.hidden:
		mode = ebiten.CursorModeHidden
	}
	w.setMode(mode)
	return mode
}

func modeName(m ebiten.CursorModeType) string {
	switch m {
	case ebiten.CursorModeVisible:
		return "visible"
	case ebiten.CursorModeHidden:
		return "hidden"
	case ebiten.CursorModeCaptured:
		return "captured"
	}
	return "unknown"
}
