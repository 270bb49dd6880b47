package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	fieldOfView = 70
	nearPlane   = 0.1
	farPlane    = 500
	gridExtent  = 20
)

var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

type projector struct {
	viewProj mgl32.Mat4
	width    float32
	height   float32
}

// drawScene renders every box and a ground grid as seen from the entity
// holding the CameraTag.
func drawScene(screen *ebiten.Image, w *ecs.World) {
	cam, ok := ecs.First(w, component.CameraTagComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cam, component.TransformComponent)
	if !ok {
		return
	}

	bounds := screen.Bounds()
	p := projector{width: float32(bounds.Dx()), height: float32(bounds.Dy())}
	proj := mgl32.Perspective(mgl32.DegToRad(fieldOfView), p.width/p.height, nearPlane, farPlane)
	p.viewProj = proj.Mul4(camTransform.View())

	for i := -gridExtent; i <= gridExtent; i++ {
		f := float32(i)
		p.line(screen, mgl32.Vec3{f, 0, -gridExtent}, mgl32.Vec3{f, 0, gridExtent}, colornames.Dimgray)
		p.line(screen, mgl32.Vec3{-gridExtent, 0, f}, mgl32.Vec3{gridExtent, 0, f}, colornames.Dimgray)
	}

	ecs.ForEach2(w, boxComponent, component.TransformComponent, func(_ ecs.Entity, b *box, t *component.Transform) {
		model := t.Matrix().Mul4(mgl32.Scale3D(b.Size, b.Size, b.Size))
		var corners [8]mgl32.Vec3
		for i, c := range cubeCorners {
			corners[i] = mgl32.TransformCoordinate(c, model)
		}
		for _, edge := range cubeEdges {
			p.line(screen, corners[edge[0]], corners[edge[1]], b.Color)
		}
	})
}

// line draws a world-space segment. Segments crossing the near plane are
// dropped rather than clipped.
func (p projector) line(dst *ebiten.Image, a, b mgl32.Vec3, clr color.Color) {
	ax, ay, ok := p.project(a)
	if !ok {
		return
	}
	bx, by, ok := p.project(b)
	if !ok {
		return
	}
	vector.StrokeLine(dst, ax, ay, bx, by, 1, clr, true)
}

func (p projector) project(v mgl32.Vec3) (float32, float32, bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	if clip.W() <= nearPlane {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) / 2 * p.width
	y := (1 - ndc.Y()) / 2 * p.height
	return x, y, true
}
