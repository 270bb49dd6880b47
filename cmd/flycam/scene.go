package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"golang.org/x/image/colornames"
)

// box is a wireframe cube drawn around an entity's transform.
type box struct {
	Size  float32
	Color color.RGBA
}

var boxComponent = component.NewComponent[box]()

// wander moves an entity around a circle in the XZ plane.
type wander struct {
	Center mgl32.Vec3
	Radius float32
	Speed  float32
}

var wanderComponent = component.NewComponent[wander]()

type scene struct {
	flyCam    ecs.Entity
	orbitCam  ecs.Entity
	target    ecs.Entity
	cameraSet []ecs.Entity
}

func buildScene(w *ecs.World, distance float32) (*scene, error) {
	s := &scene{}

	for i, spec := range []struct {
		pos  mgl32.Vec3
		size float32
		clr  color.RGBA
	}{
		{mgl32.Vec3{-6, 1, -6}, 2, colornames.Steelblue},
		{mgl32.Vec3{7, 1.5, -3}, 3, colornames.Seagreen},
		{mgl32.Vec3{0, 0.5, 8}, 1, colornames.Goldenrod},
		{mgl32.Vec3{-9, 2, 5}, 4, colornames.Slategray},
	} {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.TransformComponent, component.NewTransform(spec.pos)); err != nil {
			return nil, err
		}
		rot := mgl32.QuatRotate(float32(i)*0.4, mgl32.Vec3{0, 1, 0})
		t, _ := ecs.Get(w, e, component.TransformComponent)
		t.Rotation = rot
		if err := ecs.Add(w, e, boxComponent, &box{Size: spec.size, Color: spec.clr}); err != nil {
			return nil, err
		}
	}

	s.target = w.CreateEntity()
	if err := ecs.Add(w, s.target, component.TransformComponent, component.NewTransform(mgl32.Vec3{4, 1, 0})); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, s.target, boxComponent, &box{Size: 1, Color: colornames.Orangered}); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, s.target, wanderComponent, &wander{Center: mgl32.Vec3{0, 1, 0}, Radius: 4, Speed: 0.6}); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, s.target, component.OrbitTargetTagComponent, &component.OrbitTargetTag{}); err != nil {
		return nil, err
	}

	s.flyCam = w.CreateEntity()
	if err := ecs.Add(w, s.flyCam, component.TransformComponent, component.NewTransform(mgl32.Vec3{0, 3, 14})); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, s.flyCam, component.FlyControlComponent, &component.FlyControl{}); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, s.flyCam, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return nil, err
	}

	s.orbitCam = w.CreateEntity()
	if err := ecs.Add(w, s.orbitCam, component.TransformComponent, component.NewTransform(mgl32.Vec3{})); err != nil {
		return nil, err
	}
	ctrl := &component.ArcBallControl{Target: uint64(s.target), Distance: distance}
	if err := ecs.Add(w, s.orbitCam, component.ArcBallControlComponent, ctrl); err != nil {
		return nil, err
	}

	s.cameraSet = []ecs.Entity{s.flyCam, s.orbitCam}
	return s, nil
}

type wanderSystem struct{}

func (wanderSystem) Update(w *ecs.World) {
	clock, ok := ecs.Resource[component.Time](w)
	if !ok {
		return
	}
	secs := clock.Total.Seconds()
	ecs.ForEach2(w, wanderComponent, component.TransformComponent, func(_ ecs.Entity, wd *wander, t *component.Transform) {
		angle := secs * float64(wd.Speed)
		offset := mgl32.Vec3{float32(math.Cos(angle)) * wd.Radius, 0, float32(math.Sin(angle)) * wd.Radius}
		t.Translation = wd.Center.Add(offset)
		t.Rotation = mgl32.QuatRotate(float32(-angle), mgl32.Vec3{0, 1, 0})
	})
}
