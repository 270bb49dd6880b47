package system

import (
	"errors"

	"github.com/milk9111/flycam/ecs"
	"go.uber.org/zap"
)

var (
	ErrNoWindow = errors.New("system: bundle needs a window")
	ErrNoInput  = errors.New("system: bundle needs an axis reader")
)

// FlyControlBundle wires first-person fly controls: focus tracking, cursor
// capture, pointer look and axis movement, in that order.
type FlyControlBundle[A comparable] struct {
	Speed        float32
	SensitivityX float32
	SensitivityY float32
	Horizontal   *A
	Vertical     *A
	Longitudinal *A

	Input  AxisReader[A]
	Window Window
	Logger *zap.Logger
}

// Register builds the systems against w and adds them to s.
func (b FlyControlBundle[A]) Register(w *ecs.World, s *ecs.Scheduler) error {
	if b.Window == nil {
		return ErrNoWindow
	}
	if b.Input == nil {
		return ErrNoInput
	}
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s.Add(NewFocusSystem(w))
	s.Add(NewCursorSystem(w, b.Window, logger.Named("cursor")))
	s.Add(NewFreeRotationSystem(w, b.SensitivityX, b.SensitivityY))
	s.Add(NewFlyMovementSystem(b.Input, b.Speed, b.Horizontal, b.Vertical, b.Longitudinal))
	return nil
}

// ArcBallControlBundle wires the arc-ball follower. With Pointer set it also
// adds focus tracking, cursor capture and pointer look, so arc-ball entities
// that also carry FlyControl are rotated by the mouse.
type ArcBallControlBundle struct {
	Pointer      bool
	SensitivityX float32
	SensitivityY float32

	Window Window
	Logger *zap.Logger
}

func (b ArcBallControlBundle) Register(w *ecs.World, s *ecs.Scheduler) error {
	if b.Pointer {
		if b.Window == nil {
			return ErrNoWindow
		}
		logger := b.Logger
		if logger == nil {
			logger = zap.NewNop()
		}
		s.Add(NewFocusSystem(w))
		s.Add(NewCursorSystem(w, b.Window, logger.Named("cursor")))
		s.Add(NewFreeRotationSystem(w, b.SensitivityX, b.SensitivityY))
	}
	s.Add(NewArcBallSystem())
	return nil
}
