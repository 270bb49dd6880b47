package system

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

var errRefused = errors.New("refused")

type windowCall struct {
	op string
	on bool
}

type fakeWindow struct {
	calls   []windowCall
	grabErr error
}

func (f *fakeWindow) GrabCursor(grab bool) error {
	f.calls = append(f.calls, windowCall{"grab", grab})
	return f.grabErr
}

func (f *fakeWindow) HideCursor(hide bool) {
	f.calls = append(f.calls, windowCall{"hide", hide})
}

type fakeAxes map[string]float32

func (f fakeAxes) Axis(label string) float32 { return f[label] }

type fakeActions map[string]bool

func (f fakeActions) JustPressed(label string) bool { return f[label] }

func label(s string) *string { return &s }

func setFocus(w *ecs.World, focused, hide bool) {
	ecs.SetResource(w, &component.WindowFocus{IsFocused: focused})
	ecs.SetResource(w, &component.HideCursor{Hide: hide})
}

func setDelta(w *ecs.World, dt time.Duration) {
	clock := ecs.EnsureResource(w, func() *component.Time { return &component.Time{} })
	clock.Advance(dt)
}

func spawn(w *ecs.World, pos mgl32.Vec3, tags ...func(ecs.Entity)) (ecs.Entity, *component.Transform) {
	e := w.CreateEntity()
	t := component.NewTransform(pos)
	if err := ecs.Add(w, e, component.TransformComponent, t); err != nil {
		panic(err)
	}
	for _, tag := range tags {
		tag(e)
	}
	return e, t
}

func flyControl(w *ecs.World) func(ecs.Entity) {
	return func(e ecs.Entity) {
		if err := ecs.Add(w, e, component.FlyControlComponent, &component.FlyControl{}); err != nil {
			panic(err)
		}
	}
}

func arcBall(w *ecs.World, target ecs.Entity, distance float32) func(ecs.Entity) {
	return func(e ecs.Entity) {
		ctrl := &component.ArcBallControl{Target: uint64(target), Distance: distance}
		if err := ecs.Add(w, e, component.ArcBallControlComponent, ctrl); err != nil {
			panic(err)
		}
	}
}
