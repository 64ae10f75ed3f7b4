package particle

import (
	"math/rand/v2"

	"scrollscene/internal/page"

	"github.com/go-gl/mathgl/mgl64"
)

// NewField scatters opts.Count stars uniformly in a cube centred on the origin.
func NewField(opts FieldOptions) *Field {
	count := opts.Count
	if count < 0 {
		count = 0
	}
	spread := opts.Spread
	if spread <= 0 {
		spread = 100
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	f := &Field{
		Stars:   make([]Star, count),
		Size:    opts.Size,
		Color:   opts.Color,
		Opacity: opts.Opacity,
	}
	for i := range f.Stars {
		f.Stars[i] = Star{
			Position: page.Vec3{
				X: (rng.Float64() - 0.5) * spread,
				Y: (rng.Float64() - 0.5) * spread,
				Z: (rng.Float64() - 0.5) * spread,
			},
			Alpha: 1 - rng.Float64()*clamp01(opts.Twinkle),
		}
	}
	return f
}

// Rotation is the rotation used for rendering: scroll-driven base plus accumulated drift.
func (f *Field) Rotation() page.Vec2 {
	return page.Vec2{X: f.Base.X + f.Drift.X, Y: f.Base.Y + f.Drift.Y}
}

// AddDrift accumulates a per-frame rotation increment.
func (f *Field) AddDrift(d page.Vec2) {
	f.Drift.X += d.X
	f.Drift.Y += d.Y
}

// World returns the world position of star i: rotated about Y then X, then lifted
// by PositionY.
func (f *Field) World(i int) page.Vec3 {
	return f.transform(rotation(f.Rotation()), f.Stars[i].Position)
}

func rotation(rot page.Vec2) mgl64.Mat3 {
	return mgl64.Rotate3DX(rot.X).Mul3(mgl64.Rotate3DY(rot.Y))
}

func (f *Field) transform(m mgl64.Mat3, p page.Vec3) page.Vec3 {
	w := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return page.Vec3{X: w.X(), Y: w.Y() + f.PositionY, Z: w.Z()}
}

// Project appends every visible star to dst and returns it.
func (f *Field) Project(cam Projector, dst []ScreenPoint) []ScreenPoint {
	m := rotation(f.Rotation())
	for i := range f.Stars {
		w := f.transform(m, f.Stars[i].Position)
		x, y, depth, scale, ok := cam.Project(w)
		if !ok {
			continue
		}
		dst = append(dst, ScreenPoint{
			X:     x,
			Y:     y,
			Depth: depth,
			Size:  f.Size * scale,
			Alpha: f.Opacity * f.Stars[i].Alpha,
		})
	}
	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
