package main

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/ecs/system"
	"github.com/milk9111/flycam/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool { return f[k] }

func TestSceneOrbitCameraFollowsTarget(t *testing.T) {
	w := ecs.NewWorld()
	clock := &component.Time{}
	ecs.SetResource(w, clock)

	s, err := buildScene(w, 8)
	require.NoError(t, err)
	assert.Equal(t, []ecs.Entity{s.flyCam, s.orbitCam}, s.cameraSet)

	cam, ok := ecs.First(w, component.CameraTagComponent)
	require.True(t, ok)
	assert.Equal(t, s.flyCam, cam)

	sched := ecs.NewScheduler(wanderSystem{}, system.NewArcBallSystem())
	for range 30 {
		clock.Advance(time.Second / 60)
		sched.Update(w)
	}

	target, ok := ecs.Get(w, s.target, component.TransformComponent)
	require.True(t, ok)
	orbit, ok := ecs.Get(w, s.orbitCam, component.TransformComponent)
	require.True(t, ok)

	assert.InDelta(t, 4, target.Translation.Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-4)
	want := target.Translation.Add(mgl32.Vec3{0, 0, 8})
	assert.True(t, orbit.Translation.ApproxEqualThreshold(want, 1e-4), "got %v want %v", orbit.Translation, want)
}

func TestPausableAxes(t *testing.T) {
	b := input.NewBindings[string]()
	b.Axes["move_x"] = input.Axis{Pos: []ebiten.Key{ebiten.KeyD}}
	g := &Game{input: input.NewHandler(fakeKeys{ebiten.KeyD: true}, b)}
	g.input.Update(nil)

	axes := pausableAxes{g: g}
	assert.Equal(t, float32(1), axes.Axis("move_x"))

	g.paused = true
	assert.Zero(t, axes.Axis("move_x"))
}
