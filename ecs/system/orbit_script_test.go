package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOrbitScriptDrivesArcBallRotation(t *testing.T) {
	s, err := NewOrbitScriptSystem([]byte("yaw := t\npitch := 0.0"), nil)
	require.NoError(t, err)

	w := ecs.NewWorld()
	setDelta(w, 1500*time.Millisecond)
	target, _ := spawn(w, mgl32.Vec3{})
	_, cam := spawn(w, mgl32.Vec3{}, arcBall(w, target, 3))
	_, flying := spawn(w, mgl32.Vec3{}, arcBall(w, target, 3), flyControl(w))

	s.Update(w)

	want := mgl32.QuatRotate(1.5, mgl32.Vec3{0, 1, 0})
	assert.True(t, cam.Rotation.ApproxEqualThreshold(want, quatEpsilon), "got %v", cam.Rotation)
	assert.Equal(t, mgl32.QuatIdent(), flying.Rotation, "pointer-driven arc balls are left alone")
}

func TestOrbitScriptDefaultCompiles(t *testing.T) {
	s, err := NewOrbitScriptSystem([]byte(DefaultOrbitScript), nil)
	require.NoError(t, err)

	w := ecs.NewWorld()
	setDelta(w, time.Second)
	target, _ := spawn(w, mgl32.Vec3{})
	_, cam := spawn(w, mgl32.Vec3{}, arcBall(w, target, 3))

	s.Update(w)
	assert.NotEqual(t, mgl32.QuatIdent(), cam.Rotation)
	assert.InDelta(t, 1, cam.Rotation.Len(), 1e-6)
}

func TestOrbitScriptErrors(t *testing.T) {
	_, err := NewOrbitScriptSystem([]byte("yaw := ("), nil)
	assert.Error(t, err)

	_, err = NewOrbitScriptSystem([]byte("yaw := 1.0"), nil)
	assert.ErrorIs(t, err, ErrOrbitScriptOutputs)
}

func TestOrbitScriptRuntimeFailureDisables(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s, err := NewOrbitScriptSystem([]byte(`
yaw := 0.0
pitch := 0.0
if t > 0.5 { yaw = 1 / 0 }
`), zap.New(core))
	require.NoError(t, err)

	w := ecs.NewWorld()
	setDelta(w, time.Second)
	target, _ := spawn(w, mgl32.Vec3{})
	_, cam := spawn(w, mgl32.Vec3{}, arcBall(w, target, 3))

	s.Update(w)
	s.Update(w)
	assert.Equal(t, mgl32.QuatIdent(), cam.Rotation)
	assert.Equal(t, 1, logs.Len(), "failure is reported once")
}
