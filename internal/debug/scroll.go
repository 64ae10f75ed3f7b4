package debug

import (
	"fmt"
)

func (d *DebugOverlay) drawScroll(startY int, stats Stats) {
	ui := NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font, d.mouseX, d.mouseY, d.clicked)
	st := stats.Scroll

	ui.Header("Scroll:")
	ui.IndentLabel(fmt.Sprintf("Mode: %s", stats.Mode), 10)
	ui.IndentLabel(fmt.Sprintf("Target: %.1f px", st.Raw), 10)
	ui.IndentLabel(fmt.Sprintf("Smoothed: %.1f px", st.Smoothed), 10)
	ui.IndentLabel(fmt.Sprintf("Velocity: %.1f px/s", st.Velocity), 10)
	ui.IndentLabel(fmt.Sprintf("Direction: %d", st.Direction), 10)
	ui.IndentLabel(fmt.Sprintf("Limit: %.0f px", st.Limit), 10)
	ui.Bar("Progress", st.Progress(), -1, d.sidebarWidth-20)

	ui.Separator()

	ui.Header("Starfield:")
	if f := stats.Field; f != nil {
		rot := f.Rotation()
		ui.IndentLabel(fmt.Sprintf("Stars: %d", len(f.Stars)), 10)
		ui.IndentLabel(fmt.Sprintf("Base Y: %.4f rad", f.Base.Y), 10)
		ui.IndentLabel(fmt.Sprintf("Drift: %.4f, %.4f rad", f.Drift.X, f.Drift.Y), 10)
		ui.IndentLabel(fmt.Sprintf("Rotation: %.4f, %.4f rad", rot.X, rot.Y), 10)
		ui.IndentLabel(fmt.Sprintf("Lift: %.3f", f.PositionY), 10)
	} else {
		ui.IndentLabel("Disabled", 10)
	}

	ui.Separator()

	ui.Header("Input:")
	ui.IndentLabel(fmt.Sprintf("Cursor moves: %d", stats.CursorMoves), 10)
	ui.IndentLabel(fmt.Sprintf("Resizes applied: %d", stats.Resizes), 10)
	ui.IndentLabel(fmt.Sprintf("Active tweens: %d", stats.Tweens), 10)
}

func (d *DebugOverlay) drawTriggers(startY, maxHeight int, stats Stats) {
	ui := NewUIContext(10, startY-int(d.ScrollOffset), d.lineHeight, d.fontHeight, d.font, d.mouseX, d.mouseY, d.clicked)
	width := d.sidebarWidth - 20

	ui.Header(fmt.Sprintf("Triggers (%d):", len(stats.Triggers)))
	for _, t := range stats.Triggers {
		if ui.Y > maxHeight {
			break
		}
		start, end := t.Range()
		state := "idle"
		if t.Active() {
			state = "active"
		}
		ui.IndentLabel(fmt.Sprintf("%s  [%.0f, %.0f]  %s", t.Name, start, end, state), 10)
		ui.Bar("  applied", t.Applied(), t.Progress(), width)
	}

	ui.Separator()

	ui.Header("Layers:")
	for _, l := range stats.Layers {
		ui.IndentLabel(fmt.Sprintf("%s  speed %.0f  offset %.1f", l.Element.ID, l.Speed, l.Offset), 10)
	}

	if len(stats.Skipped) > 0 {
		ui.Separator()
		ui.Header("Skipped (no target):")
		for _, name := range stats.Skipped {
			ui.IndentLabel(name, 10)
		}
	}
}
