package system

import (
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"go.uber.org/zap"
)

// Window is the part of the windowing backend the cursor system drives.
type Window interface {
	GrabCursor(grab bool) error
	HideCursor(hide bool)
}

// CursorSystem hides and grabs the cursor while the window is focused and
// HideCursor asks for it. It only talks to the window on transitions.
type CursorSystem struct {
	window Window
	logger *zap.Logger
	hidden bool
}

// NewCursorSystem inserts a default HideCursor resource if none exists. The
// cursor is assumed hidden at startup.
func NewCursorSystem(w *ecs.World, window Window, logger *zap.Logger) *CursorSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	ecs.EnsureResource(w, component.DefaultHideCursor)
	return &CursorSystem{window: window, logger: logger, hidden: true}
}

// Hidden reports the cursor state last applied to the window.
func (s *CursorSystem) Hidden() bool {
	return s.hidden
}

func (s *CursorSystem) Update(w *ecs.World) {
	if s.window == nil {
		return
	}

	shouldHide := cursorCaptured(w)
	switch {
	case !s.hidden && shouldHide:
		if err := s.window.GrabCursor(true); err != nil {
			s.logger.Error("unable to grab the cursor", zap.Error(err))
		}
		s.window.HideCursor(true)
		s.hidden = true
	case s.hidden && !shouldHide:
		if err := s.window.GrabCursor(false); err != nil {
			s.logger.Error("unable to release the cursor", zap.Error(err))
		}
		s.window.HideCursor(false)
		s.hidden = false
	}
}

// cursorCaptured reports whether the window is focused and the application
// wants the cursor hidden. Missing resources read as false.
func cursorCaptured(w *ecs.World) bool {
	focus, ok := ecs.Resource[component.WindowFocus](w)
	if !ok || !focus.IsFocused {
		return false
	}
	hide, ok := ecs.Resource[component.HideCursor](w)
	return ok && hide.Hide
}
