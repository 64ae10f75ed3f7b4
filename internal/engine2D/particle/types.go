package particle

import (
	"image/color"

	"scrollscene/internal/page"
)

// Star is one point of the field, in field-local coordinates.
type Star struct {
	Position page.Vec3
	Alpha    float64
}

// Field is a rotating point cloud. Its rotation has two owners: Base is written by
// the scroll coordinator and Drift by the render loop. Neither overwrites the other;
// Rotation composes them.
type Field struct {
	Stars   []Star
	Size    float64
	Color   color.RGBA
	Opacity float64

	Base      page.Vec2
	Drift     page.Vec2
	PositionY float64
}

type FieldOptions struct {
	Count   int
	Spread  float64 // edge length of the cube stars are scattered in
	Size    float64
	Color   color.RGBA
	Opacity float64
	Twinkle float64 // per-star alpha variance in [0,1]
	Seed    uint64
}

// ScreenPoint is a projected star ready to draw.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
	Size  float64
	Alpha float64
}

// Projector maps a world position to screen space. ok is false for points outside
// the view volume. scale converts world units at that depth to pixels.
type Projector interface {
	Project(p page.Vec3) (x, y, depth, scale float64, ok bool)
}
