package engine2D

import (
	"image/color"

	"scrollscene/internal/anim"
	"scrollscene/internal/contact"
	"scrollscene/internal/cursor"
	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
	"scrollscene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer paints the scrolled document, the starfield behind it, the contact
// panel and the cursor marker.
type Renderer struct {
	RenderObjects []RenderObject
	Page          *page.Page
	Field         *particle.Field
	Camera        *viewport.Camera
	Source        *scroll.Source
	Cursor        *cursor.Follower
	Form          *contact.Form

	SceneOffsetX float64
	ScreenWidth  int
	ScreenHeight int
	BgColor      color.RGBA
	Accent       color.RGBA
	CursorRadius float64

	// Overlay draws on top of the frame before it is presented.
	Overlay func()

	font   rl.Font
	points []particle.ScreenPoint
	form   formLayout
}

// RenderObject is one element of the page, optionally displaced by a parallax layer.
type RenderObject struct {
	Element *page.Element
	Layer   *anim.ParallaxLayer
	Color   color.RGBA
}

// Offset is the layer's current vertical displacement.
func (ro *RenderObject) Offset() float64 {
	if ro.Layer == nil {
		return 0
	}
	return ro.Layer.Offset
}

type formLayout struct {
	panel  rl.Rectangle
	fields []rl.Rectangle
	submit rl.Rectangle
	status rl.Vector2
}
