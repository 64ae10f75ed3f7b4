package engine2D

import (
	"image/color"
	"math"
	"os"

	"scrollscene/internal/anim"
	"scrollscene/internal/contact"
	"scrollscene/internal/cursor"
	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
	"scrollscene/internal/utils"
	"scrollscene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var logger = utils.For("render")

const (
	fontSize      = 20
	titleFontSize = 40
)

var fontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

type RendererOptions struct {
	Page         *page.Page
	Layers       []*anim.ParallaxLayer
	Field        *particle.Field
	Camera       *viewport.Camera
	Source       *scroll.Source
	Cursor       *cursor.Follower
	Form         *contact.Form
	CursorRadius float64
}

// NewRenderer builds render objects for every page element. Must be called after
// the window is open.
func NewRenderer(opts RendererOptions) *Renderer {
	p := opts.Page
	r := &Renderer{
		Page:         p,
		Field:        opts.Field,
		Camera:       opts.Camera,
		Source:       opts.Source,
		Cursor:       opts.Cursor,
		Form:         opts.Form,
		BgColor:      page.ColorOr(p.Background, color.RGBA{10, 10, 15, 255}),
		Accent:       page.ColorOr(p.Accent, color.RGBA{124, 92, 255, 255}),
		CursorRadius: opts.CursorRadius,
	}

	byElement := make(map[*page.Element]*anim.ParallaxLayer, len(opts.Layers))
	for _, l := range opts.Layers {
		byElement[l.Element] = l
	}

	for i := range p.Elements {
		el := &p.Elements[i]
		r.RenderObjects = append(r.RenderObjects, RenderObject{
			Element: el,
			Layer:   byElement[el],
			Color:   page.ColorOr(el.Color, color.RGBA{255, 255, 255, 0}),
		})
	}

	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			r.font = rl.LoadFontEx(path, 64, nil, 0)
			rl.SetTextureFilter(r.font.Texture, rl.FilterBilinear)
			logger.Debug("Loaded font %s", path)
			break
		}
	}

	r.UpdateViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
	logger.Debug("Renderer ready: %d objects, %d parallax layers", len(r.RenderObjects), len(opts.Layers))
	return r
}

// UpdateViewport centres the page horizontally in the window. Registered as a
// resize listener.
func (r *Renderer) UpdateViewport(screenWidth, screenHeight int) {
	r.ScreenWidth = screenWidth
	r.ScreenHeight = screenHeight
	r.SceneOffsetX = math.Max(0, (float64(screenWidth)-r.Page.Width)/2)
	r.layoutForm()
}

// ElementRect is el's on-screen rectangle at the current smoothed offset,
// including its parallax displacement.
func (r *Renderer) ElementRect(ro *RenderObject) rl.Rectangle {
	b := ro.Element.Bounds
	y := b.Top - r.scrollY() + ro.Offset()
	return rl.NewRectangle(float32(r.SceneOffsetX+b.Left), float32(y), float32(b.Width), float32(b.Height))
}

func (r *Renderer) scrollY() float64 {
	if r.Source == nil {
		return 0
	}
	return r.Source.State().Smoothed
}

// Paint draws one frame. The render loop calls it at most once per refresh.
func (r *Renderer) Paint() {
	rl.BeginDrawing()
	rl.ClearBackground(r.BgColor)

	r.drawStarfield()

	for i := range r.RenderObjects {
		r.renderObject(&r.RenderObjects[i])
	}

	r.drawForm()
	r.drawCursor()

	if r.Overlay != nil {
		r.Overlay()
	}
	rl.EndDrawing()
}

func (r *Renderer) renderObject(ro *RenderObject) {
	rect := r.ElementRect(ro)
	if rect.Y+rect.Height < 0 || rect.Y > float32(r.ScreenHeight) {
		return
	}

	if ro.Color.A > 0 {
		if ro.Layer != nil {
			rl.DrawRectangleRounded(rect, 0.08, 8, ro.Color)
		} else {
			rl.DrawRectangleRec(rect, ro.Color)
		}
	}

	if ro.Element.Text == "" {
		return
	}
	size := float32(fontSize)
	if ro.Element.HasClass("section") {
		size = titleFontSize
	}
	r.drawText(ro.Element.Text, rect.X+24, rect.Y+24, size, rl.RayWhite)
}

func (r *Renderer) drawStarfield() {
	if r.Field == nil || r.Camera == nil {
		return
	}
	r.points = r.Field.Project(r.Camera, r.points[:0])
	c := r.Field.Color
	for _, p := range r.points {
		radius := float32(math.Max(p.Size, 0.5))
		col := rl.NewColor(c.R, c.G, c.B, uint8(255*p.Alpha))
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), radius, col)
	}
}

func (r *Renderer) drawCursor() {
	if r.Cursor == nil {
		return
	}
	pos := r.Cursor.Position()
	centre := rl.NewVector2(float32(pos.X), float32(pos.Y))
	radius := float32(r.CursorRadius)
	rl.DrawCircleV(centre, radius, rl.Fade(r.Accent, 0.35))
	rl.DrawCircleLines(int32(pos.X), int32(pos.Y), radius, r.Accent)
}

func (r *Renderer) drawText(text string, x, y, size float32, col color.RGBA) {
	if r.font.BaseSize > 0 {
		rl.DrawTextEx(r.font, text, rl.NewVector2(x, y), size, 1, col)
	} else {
		rl.DrawText(text, int32(x), int32(y), int32(size), col)
	}
}

// Unload releases GPU resources owned by the renderer.
func (r *Renderer) Unload() {
	if r.font.BaseSize > 0 {
		rl.UnloadFont(r.font)
	}
}
