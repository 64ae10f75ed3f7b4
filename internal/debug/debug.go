package debug

import (
	"math"
	"os"
	"runtime"
	"time"

	"scrollscene/internal/anim"
	"scrollscene/internal/engine2D"
	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/scroll"
	"scrollscene/internal/trigger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DebugTab int

const (
	TabScroll DebugTab = iota
	TabTriggers
	TabPerformance
)

// Stats is the loop state shown by the overlay, sampled once per painted frame.
type Stats struct {
	Scroll      scroll.State
	Mode        scroll.Mode
	Triggers    []*trigger.Trigger
	Layers      []*anim.ParallaxLayer
	Skipped     []string
	Field       *particle.Field
	Frames      uint64
	Painted     uint64
	Dropped     uint64
	Callbacks   []string
	Resizes     int
	Tweens      int
	Pending     int
	CursorMoves int
}

type DebugOverlay struct {
	ActiveTab         DebugTab
	ShowBoundingBoxes bool
	ScrollOffset      float64

	// UI State
	fontHeight   int
	lineHeight   int
	tabHeight    int
	sidebarWidth int

	// Input State
	prevLeftMouseButton bool
	mouseX              int
	mouseY              int
	clicked             bool

	// Rendering
	uiBuffer          rl.RenderTexture2D
	uiScale           float64
	font              rl.Font
	cachedWidth       int
	cachedHeight      int
	monitorWidth      int
	monitorHeight     int
	bufferInitialized bool

	// Performance Monitoring
	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

func NewDebugOverlay() *DebugOverlay {
	monitor := rl.GetCurrentMonitor()

	d := &DebugOverlay{
		ActiveTab:      TabScroll,
		monitorWidth:   rl.GetMonitorWidth(monitor),
		monitorHeight:  rl.GetMonitorHeight(monitor),
		lastUpdateTime: time.Now(),
	}

	d.updateLayout()

	fontPaths := []string{
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	}

	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			d.font = rl.LoadFontEx(path, 64, nil, 0)
			rl.SetTextureFilter(d.font.Texture, rl.FilterBilinear)
			break
		}
	}

	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(d.monitorHeight)/1080.0)
	d.fontHeight = int(16 * scale)
	d.lineHeight = int(26 * scale)
	d.tabHeight = int(40 * scale)
	d.sidebarWidth = int(460 * scale)
	d.uiScale = scale
}

// Update handles overlay input. Returns true when the pointer is over the sidebar
// so the caller can keep wheel and clicks away from the page.
func (d *DebugOverlay) Update() bool {
	d.updateLayout()

	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	mPos := rl.GetMousePosition()
	d.mouseX = int(mPos.X)
	d.mouseY = int(mPos.Y)
	x := float64(d.mouseX)
	y := float64(d.mouseY)

	leftPressed := rl.IsMouseButtonDown(rl.MouseLeftButton)
	d.clicked = leftPressed && !d.prevLeftMouseButton
	d.prevLeftMouseButton = leftPressed

	over := x < float64(d.sidebarWidth)

	if d.clicked && y < float64(d.tabHeight) && over {
		tabWidth := float64(d.sidebarWidth) / 3
		d.ActiveTab = DebugTab(int(x / tabWidth))
	}

	toggleRect := d.getBoundingBoxToggleRect()
	if d.clicked && x >= float64(toggleRect.X) && x <= float64(toggleRect.X+toggleRect.Width) && y >= float64(toggleRect.Y) && y <= float64(toggleRect.Y+toggleRect.Height) {
		d.ShowBoundingBoxes = !d.ShowBoundingBoxes
	}

	if d.ActiveTab == TabTriggers && over {
		dy := float64(rl.GetMouseWheelMove())
		d.ScrollOffset -= dy * 20
		if d.ScrollOffset < 0 {
			d.ScrollOffset = 0
		}
	}
	return over
}

func (d *DebugOverlay) Draw(r *engine2D.Renderer, stats Stats) {
	sh := rl.GetScreenHeight()

	if d.cachedWidth != d.sidebarWidth || d.cachedHeight != sh || !d.bufferInitialized {
		if d.bufferInitialized {
			rl.UnloadRenderTexture(d.uiBuffer)
		}
		d.uiBuffer = rl.LoadRenderTexture(int32(d.sidebarWidth), int32(sh))
		d.bufferInitialized = true
		d.cachedWidth = d.sidebarWidth
		d.cachedHeight = sh
	}

	if d.ShowBoundingBoxes {
		d.drawSceneBoundingBoxes(r)
	}

	rl.BeginTextureMode(d.uiBuffer)
	rl.ClearBackground(rl.Blank)

	rl.DrawRectangle(0, 0, int32(d.sidebarWidth), int32(sh), rl.NewColor(0, 0, 0, 200))

	d.drawTabs()
	d.drawBoundingBoxToggle()

	contentY := d.tabHeight + int(float64(d.tabHeight)*0.75)
	switch d.ActiveTab {
	case TabScroll:
		d.drawScroll(contentY, stats)
	case TabTriggers:
		d.drawTriggers(contentY, sh, stats)
	case TabPerformance:
		d.drawPerformance(contentY, r, stats)
	}

	rl.EndTextureMode()

	sourceRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), -float32(sh))
	destRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), float32(sh))
	rl.DrawTexturePro(d.uiBuffer.Texture, sourceRec, destRec, rl.NewVector2(0, 0), 0, rl.White)
}

func (d *DebugOverlay) drawTabs() {
	tabs := []string{"Scroll", "Triggers", "Performance"}
	tabWidth := d.sidebarWidth / len(tabs)

	for i, name := range tabs {
		tab := DebugTab(i)
		color := rl.NewColor(100, 100, 100, 255)
		if d.ActiveTab == tab {
			color = rl.NewColor(150, 150, 150, 255)
		}

		x := int32(i * tabWidth)
		rl.DrawRectangle(x, 0, int32(tabWidth), int32(d.tabHeight), color)
		d.DrawText(name, x+10, int32(float64(d.tabHeight)*0.3), int32(d.fontHeight), rl.White)
	}
}

func (d *DebugOverlay) DrawText(text string, x, y int32, fontSize int32, color rl.Color) {
	if d.font.BaseSize > 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, color)
	} else {
		rl.DrawText(text, x, y, fontSize, color)
	}
}

// Unload frees the overlay's font and buffer.
func (d *DebugOverlay) Unload() {
	if d.bufferInitialized {
		rl.UnloadRenderTexture(d.uiBuffer)
		d.bufferInitialized = false
	}
	if d.font.BaseSize > 0 {
		rl.UnloadFont(d.font)
	}
}
