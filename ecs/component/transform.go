package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is the spatial state of an entity. Rotation must stay a unit
// quaternion; systems that compose rotations renormalize to keep float error
// from accumulating.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// Forward is the local -Z axis, the direction a camera looks along.
var Forward = mgl32.Vec3{0, 0, -1}

// NewTransform returns a transform at pos with the identity rotation.
func NewTransform(pos mgl32.Vec3) *Transform {
	return &Transform{Translation: pos, Rotation: mgl32.QuatIdent()}
}

// Facing returns the world-space direction of the local forward axis.
func (t *Transform) Facing() mgl32.Vec3 {
	return t.Rotation.Rotate(Forward)
}

// Matrix returns the local-to-world matrix.
func (t *Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}

// View returns the world-to-local matrix, used as a camera view matrix.
func (t *Transform) View() mgl32.Mat4 {
	inv := t.Rotation.Conjugate()
	return inv.Mat4().Mul4(mgl32.Translate3D(-t.Translation.X(), -t.Translation.Y(), -t.Translation.Z()))
}

var TransformComponent = NewComponent[Transform]()
