package system

import (
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"go.uber.org/zap"
)

// ActionReader reports edge-triggered logical actions.
type ActionReader[A comparable] interface {
	JustPressed(label A) bool
}

// CameraSwitchSystem moves the CameraTag to the next camera in its list when
// the switch action is pressed. Dead cameras are skipped.
type CameraSwitchSystem[A comparable] struct {
	input   ActionReader[A]
	action  A
	cameras []ecs.Entity
	logger  *zap.Logger
}

func NewCameraSwitchSystem[A comparable](input ActionReader[A], action A, logger *zap.Logger, cameras ...ecs.Entity) *CameraSwitchSystem[A] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CameraSwitchSystem[A]{
		input:   input,
		action:  action,
		cameras: append([]ecs.Entity(nil), cameras...),
		logger:  logger,
	}
}

func (s *CameraSwitchSystem[A]) Update(w *ecs.World) {
	if s.input == nil || !s.input.JustPressed(s.action) || len(s.cameras) == 0 {
		return
	}

	current, hasCurrent := ecs.First(w, component.CameraTagComponent)
	start := 0
	for i, cam := range s.cameras {
		if hasCurrent && cam == current {
			start = i + 1
			break
		}
	}

	for n := 0; n < len(s.cameras); n++ {
		next := s.cameras[(start+n)%len(s.cameras)]
		if !w.IsAlive(next) || (hasCurrent && next == current) {
			continue
		}
		if hasCurrent {
			ecs.Remove(w, current, component.CameraTagComponent)
		}
		if err := ecs.Add(w, next, component.CameraTagComponent, &component.CameraTag{}); err != nil {
			s.logger.Warn("camera switch failed", zap.Stringer("camera", next), zap.Error(err))
			return
		}
		s.logger.Debug("camera switched", zap.Stringer("from", current), zap.Stringer("to", next))
		return
	}
}
