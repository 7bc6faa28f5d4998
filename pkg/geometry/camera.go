package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates to world-space rays
type Camera struct {
	origin core.Vec3
	view   core.Vec3 // Unit forward vector
	up     core.Vec3
	right  core.Vec3
	width  int
	height int
}

// NewCamera creates a camera at origin looking along view
func NewCamera(origin, view, up core.Vec3, width, height int) *Camera {
	c := &Camera{
		origin: origin,
		view:   view.Normalize(),
		up:     up,
	}
	c.right = c.view.Cross(c.up).Normalize()
	c.SetResolution(width, height)
	return c
}

// NewDefaultCamera returns a 640x480 camera at the origin looking down -Z
func NewDefaultCamera() *Camera {
	return NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		640, 480,
	)
}

// SetResolution sets the output size in pixels. Both must be positive.
func (c *Camera) SetResolution(width, height int) *Camera {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("camera: invalid resolution %d x %d", width, height))
	}
	c.width = width
	c.height = height
	return c
}

// SetOrigin moves the camera and keeps it aimed at the previous look-at
// target (origin + view)
func (c *Camera) SetOrigin(p core.Vec3) *Camera {
	target := c.origin.Add(c.view)
	c.view = target.Subtract(p).Normalize()
	c.origin = p
	return c
}

// PointAt aims the camera at p
func (c *Camera) PointAt(p core.Vec3) *Camera {
	c.view = p.Subtract(c.origin).Normalize()
	return c
}

// Orbit rotates the camera about the world Y axis around the point it is
// looking at, distance units ahead of the origin
func (c *Camera) Orbit(degrees, distance float64) *Camera {
	target := c.origin.Add(c.view.Multiply(distance))
	rotate := core.Translation(target.Negate()).
		Then(core.RotationY(degrees * math.Pi / 180)).
		Then(core.Translation(target))
	c.origin = rotate.Point(c.origin)
	return c.PointAt(target)
}

// GenerateRay returns the primary ray through pixel (px, py).
// Panics if the pixel lies outside the image.
func (c *Camera) GenerateRay(px, py int) core.Ray {
	if px < 0 || py < 0 || px >= c.width || py >= c.height {
		panic(fmt.Sprintf("camera: invalid coordinates %d, %d with resolution %d x %d",
			px, py, c.width, c.height))
	}

	w := float64(c.width)
	h := float64(c.height)

	// Only y is scaled by the aspect ratio
	sx := 2*(float64(px)/w) - 1
	sy := (2*(float64(py)/h) - 1) * (h / w)

	target := c.origin.Add(c.view).Add(core.NewVec3(sx, sy, 0))
	return core.NewRay(c.origin, target.Subtract(c.origin).Normalize())
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 { return c.origin }

// View returns the unit forward vector
func (c *Camera) View() core.Vec3 { return c.view }

// Up returns the up vector
func (c *Camera) Up() core.Vec3 { return c.up }

// Right returns the right vector
func (c *Camera) Right() core.Vec3 { return c.right }

// Width returns the horizontal resolution
func (c *Camera) Width() int { return c.width }

// Height returns the vertical resolution
func (c *Camera) Height() int { return c.height }
