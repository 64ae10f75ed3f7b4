package engine2D

import (
	"strings"

	"scrollscene/internal/contact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	formWidth    = 560
	fieldHeight  = 44
	messageRows  = 3
	fieldSpacing = 16
	formTop      = 110
)

// layoutForm places the form panel inside its host element at the current scroll
// offset. It runs every frame since the panel scrolls with the page.
func (r *Renderer) layoutForm() {
	r.form = formLayout{}
	if r.Form == nil || r.Page == nil || r.Page.Form == nil {
		return
	}
	host, err := r.Page.First("#" + r.Page.Form.ElementID)
	if err != nil {
		return
	}

	b := host.Bounds
	x := float32(r.SceneOffsetX + b.Left + (b.Width-formWidth)/2)
	y := float32(b.Top - r.scrollY() + formTop)

	cur := y
	r.form.fields = r.form.fields[:0]
	for _, f := range r.Form.Fields {
		h := float32(fieldHeight)
		if f.Name == "message" {
			h *= messageRows
		}
		r.form.fields = append(r.form.fields, rl.NewRectangle(x, cur, formWidth, h))
		cur += h + fieldSpacing
	}
	r.form.submit = rl.NewRectangle(x, cur, formWidth, fieldHeight)
	r.form.status = rl.NewVector2(x, cur+fieldHeight+fieldSpacing)
	r.form.panel = rl.NewRectangle(x-24, y-24, formWidth+48, r.form.status.Y-y+fontSize+48)
}

// FormHit reports which form control contains the window point (x, y): a field
// index, or submit. field is -1 when no field was hit.
func (r *Renderer) FormHit(x, y float32) (field int, submit bool) {
	r.layoutForm()
	pt := rl.NewVector2(x, y)
	for i, rect := range r.form.fields {
		if rl.CheckCollisionPointRec(pt, rect) {
			return i, false
		}
	}
	if r.Form != nil && len(r.form.fields) > 0 && rl.CheckCollisionPointRec(pt, r.form.submit) {
		return -1, true
	}
	return -1, false
}

func (r *Renderer) drawForm() {
	r.layoutForm()
	if len(r.form.fields) == 0 {
		return
	}
	if r.form.panel.Y > float32(r.ScreenHeight) || r.form.panel.Y+r.form.panel.Height < 0 {
		return
	}

	rl.DrawRectangleRounded(r.form.panel, 0.04, 8, rl.NewColor(18, 18, 28, 230))

	for i, rect := range r.form.fields {
		f := r.Form.Fields[i]
		border := rl.NewColor(70, 70, 90, 255)
		if i == r.Form.Focus {
			border = r.Accent
		}
		rl.DrawRectangleRec(rect, rl.NewColor(10, 10, 16, 255))
		rl.DrawRectangleLinesEx(rect, 2, border)

		text := f.Value
		col := rl.RayWhite
		if text == "" {
			text = strings.ToUpper(f.Name)
			col = rl.Gray
		}
		r.drawText(text, rect.X+12, rect.Y+12, fontSize, col)
	}

	btn := rl.NewColor(r.Accent.R, r.Accent.G, r.Accent.B, 255)
	if !r.Form.SubmitEnabled {
		btn = rl.Fade(btn, 0.5)
	}
	rl.DrawRectangleRec(r.form.submit, btn)
	label := r.Form.SubmitLabel
	w := float32(rl.MeasureText(label, fontSize))
	r.drawText(label, r.form.submit.X+(r.form.submit.Width-w)/2, r.form.submit.Y+12, fontSize, rl.White)

	if r.Form.Status != "" {
		r.drawText(r.Form.Status, r.form.status.X, r.form.status.Y, fontSize, r.toneColor(r.Form.Tone))
	}
}

func (r *Renderer) toneColor(t contact.Tone) rl.Color {
	switch t {
	case contact.ToneSuccess:
		return r.Accent
	case contact.ToneError:
		return rl.NewColor(255, 90, 90, 255)
	default:
		return rl.RayWhite
	}
}
