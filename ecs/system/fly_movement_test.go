package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/stretchr/testify/assert"
)

func TestFlyMovementExample(t *testing.T) {
	w := ecs.NewWorld()
	axes := fakeAxes{"x": 1}
	s := NewFlyMovementSystem[string](axes, 2, label("x"), label("y"), label("z"))
	setDelta(w, 500*time.Millisecond)
	_, cam := spawn(w, mgl32.Vec3{}, flyControl(w))

	s.Update(w)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, cam.Translation)
}

func TestFlyMovementZeroInputIsExactNoop(t *testing.T) {
	w := ecs.NewWorld()
	axes := fakeAxes{"x": 0, "y": 0, "z": 0}
	s := NewFlyMovementSystem[string](axes, 100, label("x"), label("y"), label("z"))
	setDelta(w, time.Second)
	start := mgl32.Vec3{0.1, -7.3, 1e-3}
	_, cam := spawn(w, start, flyControl(w))

	for i := 0; i < 10; i++ {
		s.Update(w)
	}
	assert.Equal(t, start, cam.Translation)

	axes["z"] = 1e-7
	s.Update(w)
	assert.Equal(t, start, cam.Translation, "jitter below the threshold is ignored")
}

func TestFlyMovementNormalizesInput(t *testing.T) {
	w := ecs.NewWorld()
	axes := fakeAxes{"x": 1, "z": -1}
	s := NewFlyMovementSystem[string](axes, 1, label("x"), nil, label("z"))
	setDelta(w, time.Second)
	_, cam := spawn(w, mgl32.Vec3{}, flyControl(w))

	s.Update(w)
	assert.InDelta(t, 1, cam.Translation.Len(), 1e-6, "diagonal input is not faster")
	assert.InDelta(t, cam.Translation.X(), -cam.Translation.Z(), 1e-6)
}

func TestFlyMovementUnboundAxes(t *testing.T) {
	w := ecs.NewWorld()
	axes := fakeAxes{"x": 1, "y": 1}
	s := NewFlyMovementSystem[string](axes, 1, nil, nil, nil)
	setDelta(w, time.Second)
	_, cam := spawn(w, mgl32.Vec3{}, flyControl(w))

	s.Update(w)
	assert.Equal(t, mgl32.Vec3{}, cam.Translation)

	none := NewFlyMovementSystem[string](nil, 1, label("x"), nil, nil)
	none.Update(w)
	assert.Equal(t, mgl32.Vec3{}, cam.Translation)
}

func TestFlyMovementLocalFrame(t *testing.T) {
	w := ecs.NewWorld()
	axes := fakeAxes{"x": 1}
	s := NewFlyMovementSystem[string](axes, 1, label("x"), nil, nil)
	setDelta(w, time.Second)
	_, cam := spawn(w, mgl32.Vec3{}, flyControl(w))
	cam.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	s.Update(w)
	assert.True(t, cam.Translation.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6), "got %v", cam.Translation)
}

func TestFlyMovementOnlyFlyControlled(t *testing.T) {
	w := ecs.NewWorld()
	axes := fakeAxes{"z": -1}
	s := NewFlyMovementSystem[string](axes, 4, nil, nil, label("z"))
	setDelta(w, 250*time.Millisecond)
	_, fly := spawn(w, mgl32.Vec3{}, flyControl(w))
	_, still := spawn(w, mgl32.Vec3{})

	s.Update(w)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, fly.Translation)
	assert.Equal(t, mgl32.Vec3{}, still.Translation)
}
