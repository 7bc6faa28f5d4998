package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine 4x4 transform used for placing points and
// directions during scene assembly
type Transform struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

// Translation returns a transform that moves points by offset
func Translation(offset Vec3) Transform {
	return Transform{m: mgl64.Translate3D(offset.X, offset.Y, offset.Z)}
}

// Scaling returns a uniform scale transform
func Scaling(factor float64) Transform {
	return Transform{m: mgl64.Scale3D(factor, factor, factor)}
}

// RotationY returns a rotation of angle radians about the world Y axis
func RotationY(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DY(angle)}
}

// Then returns a transform applying t first and next second
func (t Transform) Then(next Transform) Transform {
	return Transform{m: next.m.Mul4(t.m)}
}

// Point transforms a position (w = 1)
func (t Transform) Point(p Vec3) Vec3 {
	r := mgl64.TransformCoordinate(mgl64.Vec3{p.X, p.Y, p.Z}, t.m)
	return Vec3{r[0], r[1], r[2]}
}

// Vector transforms a direction (w = 0), ignoring translation
func (t Transform) Vector(v Vec3) Vec3 {
	r := mgl64.TransformNormal(mgl64.Vec3{v.X, v.Y, v.Z}, t.m)
	return Vec3{r[0], r[1], r[2]}
}
