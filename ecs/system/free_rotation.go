package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// FreeRotationSystem turns pointer motion into look rotation for FlyControl
// entities. It is inactive unless the window is focused and the cursor is
// meant to be hidden; motion arriving while inactive is discarded.
type FreeRotationSystem struct {
	sensitivityX float32
	sensitivityY float32
	reader       *ecs.ReaderID
}

// NewFreeRotationSystem takes sensitivities in degrees per device unit.
func NewFreeRotationSystem(w *ecs.World, sensitivityX, sensitivityY float32) *FreeRotationSystem {
	return &FreeRotationSystem{
		sensitivityX: sensitivityX,
		sensitivityY: sensitivityY,
		reader:       w.Events().RegisterReader(),
	}
}

func (s *FreeRotationSystem) Update(w *ecs.World) {
	events := w.Events().Read(s.reader)
	if !cursorCaptured(w) {
		return
	}
	for _, ev := range events {
		motion, ok := ev.(ecs.DeviceMotion)
		if !ok {
			continue
		}
		delta := s.rotation(motion)
		ecs.ForEach2(w, component.FlyControlComponent, component.TransformComponent, func(_ ecs.Entity, _ *component.FlyControl, t *component.Transform) {
			t.Rotation = t.Rotation.Mul(delta).Normalize()
		})
	}
}

// rotation builds the local-frame rotation for one motion event: yaw about
// Y from the horizontal delta, then pitch about X from the vertical delta.
// Both are negated so moving right turns right and moving down looks down.
func (s *FreeRotationSystem) rotation(m ecs.DeviceMotion) mgl32.Quat {
	yaw := mgl32.DegToRad(-float32(m.DX) * s.sensitivityX)
	pitch := mgl32.DegToRad(-float32(m.DY) * s.sensitivityY)
	return mgl32.QuatRotate(yaw, axisY).Mul(mgl32.QuatRotate(pitch, axisX))
}
