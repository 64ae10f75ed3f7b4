package debug

import (
	"fmt"
	"runtime"
	"strings"

	"scrollscene/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) drawPerformance(startY int, r *engine2D.Renderer, stats Stats) {
	ui := NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font, d.mouseX, d.mouseY, d.clicked)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %.1f", float64(rl.GetFPS())), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)

	monitor := rl.GetCurrentMonitor()
	ui.IndentLabel(fmt.Sprintf("Refresh Rate: %d Hz", rl.GetMonitorRefreshRate(monitor)), 10)

	ui.Separator()

	ui.Header("Frame Loop:")
	ui.IndentLabel(fmt.Sprintf("Frames: %d", stats.Frames), 10)
	ui.IndentLabel(fmt.Sprintf("Painted: %d", stats.Painted), 10)
	ui.IndentLabel(fmt.Sprintf("Dropped (hidden): %d", stats.Dropped), 10)
	ui.IndentLabel(fmt.Sprintf("Pending events: %d", stats.Pending), 10)
	ui.IndentLabel("Order: "+strings.Join(stats.Callbacks, " > "), 10)

	ui.Separator()

	ui.Header("Memory Usage:")

	allocMB := float64(d.memStats.Alloc) / 1024 / 1024
	ui.IndentLabel(fmt.Sprintf("Allocated: %.2f MB", allocMB), 10)

	heapAllocMB := float64(d.memStats.HeapAlloc) / 1024 / 1024
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", heapAllocMB), 10)

	sysMB := float64(d.memStats.Sys) / 1024 / 1024
	ui.IndentLabel(fmt.Sprintf("Process Total: %.2f MB", sysMB), 10)

	ui.Separator()

	ui.Header("System:")
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)
	ui.IndentLabel(fmt.Sprintf("OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH), 10)
	ui.IndentLabel(fmt.Sprintf("Monitor: %s", rl.GetMonitorName(monitor)), 10)
	ui.IndentLabel(fmt.Sprintf("Window: %dx%d", r.ScreenWidth, r.ScreenHeight), 10)
	if r.Camera != nil {
		ui.IndentLabel(fmt.Sprintf("Camera: fov %.0f, aspect %.3f", r.Camera.Fov, r.Camera.Aspect), 10)
	}
	ui.IndentLabel(fmt.Sprintf("UI Scale: %.2fx", d.uiScale), 10)
}
