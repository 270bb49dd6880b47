package system

import (
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

// ArcBallSystem keeps each ArcBallControl entity Distance units behind its
// target along the entity's own forward axis, so it keeps looking at the
// target while something else changes its rotation. The system never
// rotates anything.
type ArcBallSystem struct{}

func NewArcBallSystem() *ArcBallSystem {
	return &ArcBallSystem{}
}

// Update skips entities whose target is gone or has no transform, leaving
// their translation untouched.
func (s *ArcBallSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ArcBallControlComponent, component.TransformComponent, func(_ ecs.Entity, ctrl *component.ArcBallControl, t *component.Transform) {
		target, ok := ecs.Get(w, ecs.Entity(ctrl.Target), component.TransformComponent)
		if !ok {
			return
		}
		offset := t.Rotation.Rotate(component.Forward.Mul(ctrl.Distance))
		t.Translation = target.Translation.Sub(offset)
	})
}
