package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

// movementEpsilon is the input magnitude below which the controls count as
// released.
const movementEpsilon = 1e-6

// AxisReader resolves a logical axis to its current value.
type AxisReader[A comparable] interface {
	Axis(label A) float32
}

// FlyMovementSystem moves FlyControl entities along their own axes at a
// fixed speed in units per second.
type FlyMovementSystem[A comparable] struct {
	input        AxisReader[A]
	speed        float32
	horizontal   *A
	vertical     *A
	longitudinal *A
}

// NewFlyMovementSystem builds the system. A nil axis label is unbound and
// contributes zero.
func NewFlyMovementSystem[A comparable](input AxisReader[A], speed float32, horizontal, vertical, longitudinal *A) *FlyMovementSystem[A] {
	return &FlyMovementSystem[A]{
		input:        input,
		speed:        speed,
		horizontal:   horizontal,
		vertical:     vertical,
		longitudinal: longitudinal,
	}
}

func (s *FlyMovementSystem[A]) Update(w *ecs.World) {
	v := mgl32.Vec3{s.axis(s.horizontal), s.axis(s.vertical), s.axis(s.longitudinal)}
	length := v.Len()
	if length <= movementEpsilon {
		return
	}
	dir := v.Mul(1 / length)

	clock, _ := ecs.Resource[component.Time](w)
	step := clock.DeltaSeconds() * s.speed

	ecs.ForEach2(w, component.FlyControlComponent, component.TransformComponent, func(_ ecs.Entity, _ *component.FlyControl, t *component.Transform) {
		t.Translation = t.Translation.Add(t.Rotation.Rotate(dir).Mul(step))
	})
}

func (s *FlyMovementSystem[A]) axis(label *A) float32 {
	if label == nil || s.input == nil {
		return 0
	}
	return s.input.Axis(*label)
}
