package engine2D

import (
	"scrollscene/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowVisible is the render loop's visibility probe.
func WindowVisible() bool {
	return !rl.IsWindowMinimized() && !rl.IsWindowHidden()
}

// WindowPointer reads the pointer from raylib. It reports nothing while the
// pointer is outside the window.
type WindowPointer struct{}

func (WindowPointer) Pointer() (float64, float64, bool) {
	if !rl.IsCursorOnScreen() {
		return 0, 0, false
	}
	p := rl.GetMousePosition()
	return float64(p.X), float64(p.Y), true
}

// GlobalPointer reads the X11 pointer and maps it into window coordinates, so the
// marker keeps following while another window has focus.
type GlobalPointer struct{}

func (GlobalPointer) Pointer() (float64, float64, bool) {
	x, y, err := utils.GetGlobalMousePosition()
	if err != nil {
		return 0, 0, false
	}
	win := rl.GetWindowPosition()
	return float64(x) - float64(win.X), float64(y) - float64(win.Y), true
}
