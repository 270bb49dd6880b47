package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/ecs"
)

// KeySource reports physical key state.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the keyboard through ebiten.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Handler resolves logical axes and actions from the current key state.
// Values are sampled once per Update so every system sees the same input
// within a frame.
type Handler[A comparable] struct {
	keys     KeySource
	bindings Bindings[A]
	axes     map[A]float32
	actions  map[A]bool
	previous map[A]bool
}

func NewHandler[A comparable](keys KeySource, bindings Bindings[A]) *Handler[A] {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &Handler[A]{
		keys:     keys,
		bindings: bindings,
		axes:     make(map[A]float32),
		actions:  make(map[A]bool),
		previous: make(map[A]bool),
	}
}

// SetBindings swaps the binding table. Values refresh on the next Update.
func (h *Handler[A]) SetBindings(bindings Bindings[A]) {
	h.bindings = bindings
}

// Update samples every bound axis and action. It satisfies ecs.System so the
// handler can run as the first system of a frame.
func (h *Handler[A]) Update(*ecs.World) {
	h.actions, h.previous = h.previous, h.actions
	clear(h.axes)
	clear(h.actions)
	for label, axis := range h.bindings.Axes {
		var v float32
		if h.anyPressed(axis.Pos) {
			v++
		}
		if h.anyPressed(axis.Neg) {
			v--
		}
		h.axes[label] = v
	}
	for label, keys := range h.bindings.Actions {
		h.actions[label] = h.anyPressed(keys)
	}
}

// Axis returns the value of an axis in [-1, 1]; unbound axes read 0.
func (h *Handler[A]) Axis(label A) float32 {
	return h.axes[label]
}

// Action reports whether any key bound to the action is held.
func (h *Handler[A]) Action(label A) bool {
	return h.actions[label]
}

// JustPressed reports whether the action went down this frame.
func (h *Handler[A]) JustPressed(label A) bool {
	return h.actions[label] && !h.previous[label]
}

func (h *Handler[A]) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if h.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
