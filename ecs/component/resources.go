package component

import "time"

// WindowFocus mirrors whether the window currently has input focus. Only
// the focus system writes it.
type WindowFocus struct {
	IsFocused bool
}

// HideCursor is the application's intent to hide and grab the cursor while
// the window is focused. Menus flip it off to get a usable pointer back.
type HideCursor struct {
	Hide bool
}

// DefaultHideCursor is the value inserted when no HideCursor resource exists.
func DefaultHideCursor() *HideCursor {
	return &HideCursor{Hide: true}
}

// Time carries the frame clock.
type Time struct {
	Delta time.Duration
	Total time.Duration
	Frame uint64
}

// DeltaSeconds returns the last frame's duration in seconds.
func (t *Time) DeltaSeconds() float32 {
	if t == nil {
		return 0
	}
	return float32(t.Delta.Seconds())
}

// Advance moves the clock forward by dt.
func (t *Time) Advance(dt time.Duration) {
	t.Delta = dt
	t.Total += dt
	t.Frame++
}
