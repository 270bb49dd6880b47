package system

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"go.uber.org/zap"
)

var ErrOrbitScriptOutputs = errors.New("orbit script: yaw and pitch must be defined")

// DefaultOrbitScript circles the target once every ~12 seconds while
// bobbing the pitch.
const DefaultOrbitScript = `
math := import("math")
yaw := t * 0.5
pitch := -0.35 + 0.15 * math.sin(t * 0.7)
`

// OrbitScriptSystem drives the rotation of arc-ball entities from a tengo
// script. The script sees t (seconds since start) and entity, and must set
// yaw and pitch in radians. Arc-ball entities also under FlyControl are left
// to the pointer.
type OrbitScriptSystem struct {
	compiled *tengo.Compiled
	logger   *zap.Logger
	failed   bool
}

func NewOrbitScriptSystem(src []byte, logger *zap.Logger) (*OrbitScriptSystem, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("orbit script: add t: %w", err)
	}
	if err := script.Add("entity", 0); err != nil {
		return nil, fmt.Errorf("orbit script: add entity: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("orbit script: compile: %w", err)
	}
	if !compiled.IsDefined("yaw") || !compiled.IsDefined("pitch") {
		return nil, ErrOrbitScriptOutputs
	}
	return &OrbitScriptSystem{compiled: compiled, logger: logger}, nil
}

func (s *OrbitScriptSystem) Update(w *ecs.World) {
	if s.failed {
		return
	}
	var seconds float64
	if clock, ok := ecs.Resource[component.Time](w); ok {
		seconds = clock.Total.Seconds()
	}

	ecs.ForEach2(w, component.ArcBallControlComponent, component.TransformComponent, func(e ecs.Entity, _ *component.ArcBallControl, t *component.Transform) {
		if s.failed || ecs.Has(w, e, component.FlyControlComponent) {
			return
		}
		yaw, pitch, err := s.run(seconds, e)
		if err != nil {
			// A broken script would fail every frame; report it once.
			s.logger.Error("orbit script failed, disabling", zap.Stringer("entity", e), zap.Error(err))
			s.failed = true
			return
		}
		t.Rotation = mgl32.QuatRotate(yaw, axisY).Mul(mgl32.QuatRotate(pitch, axisX)).Normalize()
	})
}

func (s *OrbitScriptSystem) run(seconds float64, e ecs.Entity) (float32, float32, error) {
	if err := s.compiled.Set("t", seconds); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Set("entity", int64(e)); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return float32(s.compiled.Get("yaw").Float()), float32(s.compiled.Get("pitch").Float()), nil
}
