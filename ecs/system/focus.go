package system

import (
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

// FocusSystem tracks window focus from the event stream into the
// WindowFocus resource.
type FocusSystem struct {
	reader *ecs.ReaderID
}

// NewFocusSystem inserts a WindowFocus resource if none exists and starts
// reading the world's events from their current end.
func NewFocusSystem(w *ecs.World) *FocusSystem {
	ecs.EnsureResource(w, func() *component.WindowFocus { return &component.WindowFocus{} })
	return &FocusSystem{reader: w.Events().RegisterReader()}
}

// Update applies every focus change since the last frame in order, so the
// last one wins.
func (s *FocusSystem) Update(w *ecs.World) {
	events := w.Events().Read(s.reader)
	focus, ok := ecs.Resource[component.WindowFocus](w)
	if !ok {
		return
	}
	for _, ev := range events {
		if changed, ok := ev.(ecs.WindowFocusChanged); ok {
			focus.IsFocused = changed.Focused
		}
	}
}
