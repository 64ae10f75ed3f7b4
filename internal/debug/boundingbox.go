package debug

import (
	"fmt"

	"scrollscene/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) getBoundingBoxToggleRect() rl.Rectangle {
	return rl.NewRectangle(
		10,
		float32(d.tabHeight+5),
		float32(d.sidebarWidth-20),
		20,
	)
}

func (d *DebugOverlay) drawBoundingBoxToggle() {
	rect := d.getBoundingBoxToggleRect()

	boxSize := float32(d.fontHeight) * 1.2
	boxX := rect.X
	boxY := rect.Y + (rect.Height-boxSize)/2

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxSize), int32(boxSize), rl.White)
	if d.ShowBoundingBoxes {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(boxSize-4), int32(boxSize-4), rl.White)
	}

	d.DrawText("Show Bounding Boxes", int32(boxX+boxSize+10), int32(boxY), int32(d.fontHeight), rl.White)
}

// drawSceneBoundingBoxes outlines every element at its painted position. Parallax
// layers also get their undisplaced box and a line per trigger edge.
func (d *DebugOverlay) drawSceneBoundingBoxes(r *engine2D.Renderer) {
	for i := range r.RenderObjects {
		ro := &r.RenderObjects[i]
		rect := r.ElementRect(ro)
		if ro.Layer == nil {
			rl.DrawRectangleLinesEx(rect, 1, rl.NewColor(0, 255, 255, 100))
			continue
		}

		home := rect
		home.Y -= float32(ro.Offset())
		rl.DrawRectangleLinesEx(home, 1, rl.NewColor(255, 255, 255, 60))
		rl.DrawRectangleLinesEx(rect, 2, rl.NewColor(0, 255, 0, 255))

		label := fmt.Sprintf("%s %+.0f", ro.Element.ID, ro.Offset())
		d.DrawText(label, int32(rect.X+4), int32(rect.Y+4), int32(d.fontHeight), rl.NewColor(0, 255, 0, 255))

		if ro.Layer.Trigger() != nil {
			d.drawTriggerEdges(r, ro)
		}
	}
}

// drawTriggerEdges marks where the element's start and end edges sit in the
// viewport. They only line up with the window edges at the trigger boundaries.
func (d *DebugOverlay) drawTriggerEdges(r *engine2D.Renderer, ro *engine2D.RenderObject) {
	rect := r.ElementRect(ro)
	home := rect.Y - float32(ro.Offset())
	x := rect.X + rect.Width - 6
	rl.DrawLine(int32(x), int32(home), int32(x), int32(home+rect.Height), rl.Yellow)
	rl.DrawCircle(int32(x), int32(home), 3, rl.Green)
	rl.DrawCircle(int32(x), int32(home+rect.Height), 3, rl.Red)
}
