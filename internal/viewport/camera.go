package viewport

import (
	"scrollscene/internal/page"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking down -Z from Position.
type Camera struct {
	Fov      float64 // vertical field of view, degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position page.Vec3

	width, height float64
	projection    mgl64.Mat4
}

func NewCamera(fov, near, far float64, position page.Vec3) *Camera {
	c := &Camera{Fov: fov, Aspect: 1, Near: near, Far: far, Position: position}
	c.SetOutputSize(1, 1)
	return c
}

// SetOutputSize sets the render target size used to map to pixels. It does not
// touch Aspect; resize handling updates both.
func (c *Camera) SetOutputSize(width, height int) {
	c.width, c.height = float64(width), float64(height)
}

func (c *Camera) OutputSize() (int, int) { return int(c.width), int(c.height) }

// UpdateProjectionMatrix rebuilds the projection from Fov, Aspect, Near and Far.
// Call it after changing any of them.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Projection returns the column-major projection matrix.
func (c *Camera) Projection() mgl64.Mat4 { return c.projection }

// Project maps a world point to pixel coordinates. scale is pixels per world unit
// at the point's depth, used for size attenuation.
func (c *Camera) Project(p page.Vec3) (x, y, depth, scale float64, ok bool) {
	eye := mgl64.Vec3{p.X - c.Position.X, p.Y - c.Position.Y, p.Z - c.Position.Z}

	dist := -eye.Z()
	if dist < c.Near || dist > c.Far {
		return 0, 0, 0, 0, false
	}

	clip := c.projection.Mul4x1(eye.Vec4(1))
	if clip.W() == 0 {
		return 0, 0, 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, 0, 0, false
	}

	x = (nx + 1) / 2 * c.width
	y = (1 - ny) / 2 * c.height
	scale = c.height / 2 / dist
	return x, y, dist, scale, true
}
