package main

import (
	"context"
	"net/http"
	"time"

	"scrollscene/internal/anim"
	"scrollscene/internal/config"
	"scrollscene/internal/contact"
	"scrollscene/internal/cursor"
	"scrollscene/internal/debug"
	"scrollscene/internal/engine2D"
	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/frame"
	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
	"scrollscene/internal/trigger"
	"scrollscene/internal/tween"
	"scrollscene/internal/utils"
	"scrollscene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// wheelStep converts one raylib wheel notch into pixels.
const wheelStep = 100

type Window struct {
	cfg  config.Config
	page *page.Page

	source      *scroll.Source
	registry    *trigger.Registry
	coordinator *anim.Coordinator
	field       *particle.Field
	tracker     *viewport.Tracker
	tweens      *tween.Scheduler
	follower    *cursor.Follower
	pointer     cursor.Source
	form        *contact.Form
	submitter   *contact.Submitter
	mailbox     *frame.Mailbox

	frames     *frame.Scheduler
	clock      *frame.Clock
	renderLoop *frame.RenderLoop
	renderer   *engine2D.Renderer

	debugOverlay *debug.DebugOverlay
	overlayHover bool
	painted      bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewWindow(cfg config.Config, doc *page.Page, globalPointer bool) (*Window, error) {
	w := &Window{cfg: cfg, page: doc}
	w.ctx, w.cancel = context.WithCancel(context.Background())

	screen := viewport.Size{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}

	w.source = scroll.NewSource(cfg.Scroll)
	w.source.SetLimit(doc.Height() - float64(screen.Height))

	w.registry = trigger.NewRegistry(float64(screen.Height))
	w.source.OnScroll(w.registry.Update)

	if cfg.Stars.Count > 0 {
		w.field = particle.NewField(cfg.FieldOptions())
	}

	w.coordinator = anim.NewCoordinator(w.registry)
	layers, err := w.coordinator.BindParallax(doc, cfg.ParallaxOptions())
	if err != nil {
		return nil, err
	}
	if err := w.coordinator.BindField(doc, w.field, cfg.FieldBinding()); err != nil {
		return nil, err
	}
	utils.Info("Bound %d animations (%d parallax layers)", w.coordinator.Len(), len(layers))

	camera := viewport.NewCamera(cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far, page.Vec3{Z: cfg.Camera.Z})
	w.tracker = viewport.NewTracker(camera, screen)

	w.tweens = tween.NewScheduler()
	w.follower, err = cursor.NewFollower(w.tweens, cfg.CursorOptions())
	if err != nil {
		return nil, err
	}
	w.pointer = engine2D.WindowPointer{}
	if globalPointer {
		w.pointer = engine2D.GlobalPointer{}
	}

	w.mailbox = frame.NewMailbox()
	w.form = newContactForm(doc, cfg.Contact)
	w.submitter = contact.NewSubmitter(&http.Client{}, w.mailbox, w.tweens, contact.Options{
		Timeout:       time.Duration(cfg.Contact.Timeout),
		ReenableDelay: cfg.Contact.ReenableDelay,
	})

	w.renderer = engine2D.NewRenderer(engine2D.RendererOptions{
		Page:         doc,
		Layers:       layers,
		Field:        w.field,
		Camera:       camera,
		Source:       w.source,
		Cursor:       w.follower,
		Form:         w.form,
		CursorRadius: cfg.Cursor.Radius,
	})

	w.tracker.OnResize(func(s viewport.Size) {
		w.registry.Refresh(float64(s.Height))
		w.source.SetLimit(doc.Height() - float64(s.Height))
		w.renderer.UpdateViewport(s.Width, s.Height)
	})

	w.debugOverlay = debug.NewDebugOverlay()
	w.renderer.Overlay = func() {
		if utils.ShowDebugUI {
			w.debugOverlay.Draw(w.renderer, w.stats())
		}
	}

	w.clock = frame.NewClock(w.source)
	w.renderLoop = frame.NewRenderLoop(
		frame.VisibilityFunc(engine2D.WindowVisible),
		w.renderer,
		w.field,
		w.source,
		cfg.RenderLoopOptions(),
	)

	// Resizes land before anything reads the viewport; painting comes last so a
	// frame always shows this tick's state.
	w.frames = frame.NewScheduler(cfg.Window.MaxDelta)
	w.frames.Register("resize", func(frame.Frame) { w.tracker.Apply() })
	w.frames.Register("clock", w.clock.Tick)
	w.frames.Register("scrub", func(f frame.Frame) { w.coordinator.Step(f.Delta) })
	w.frames.Register("events", func(frame.Frame) { w.mailbox.Drain() })
	w.frames.Register("tweens", func(f frame.Frame) { w.tweens.Step(f.Delta) })
	w.frames.Register("cursor", func(frame.Frame) { w.follower.Poll(w.pointer) })
	w.frames.Register("render", func(f frame.Frame) { w.painted = w.renderLoop.Tick(f) })

	return w, nil
}

func (w *Window) Run() {
	rl.SetTargetFPS(int32(w.cfg.Window.FPS))
	// Escape leaves a focused form field instead of closing the window.
	rl.SetExitKey(rl.KeyNull)

	for !rl.WindowShouldClose() {
		w.Update()
		w.frames.Tick(time.Now())

		// EndDrawing polls input and paces the loop; without a painted frame both
		// have to happen here or a minimized window never sees its restore.
		if !w.painted {
			rl.PollInputEvents()
			rl.WaitTime(1 / float64(w.cfg.Window.FPS))
		}
	}
}

// Update turns raylib input into scroll, form and resize events.
func (w *Window) Update() {
	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	w.overlayHover = false
	if utils.ShowDebugUI {
		w.overlayHover = w.debugOverlay.Update()
	}

	if rl.IsWindowResized() {
		w.tracker.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if !w.overlayHover {
		if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
			w.source.Wheel(-float64(wheel.X)*wheelStep, -float64(wheel.Y)*wheelStep)
		}
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			w.click(rl.GetMousePosition())
		}
	}

	if w.form != nil && w.form.Focus >= 0 {
		w.updateFormInput()
		return
	}
	w.updateScrollKeys()
}

func (w *Window) updateScrollKeys() {
	pageStep := float64(w.tracker.Size().Height) * 0.9
	step := w.cfg.Scroll.KeyStep

	switch {
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressedRepeat(rl.KeyDown):
		w.source.ScrollBy(step)
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressedRepeat(rl.KeyUp):
		w.source.ScrollBy(-step)
	case rl.IsKeyPressed(rl.KeyPageDown), rl.IsKeyPressed(rl.KeySpace):
		w.source.ScrollBy(pageStep)
	case rl.IsKeyPressed(rl.KeyPageUp):
		w.source.ScrollBy(-pageStep)
	case rl.IsKeyPressed(rl.KeyHome):
		w.source.ScrollTo(0, false)
	case rl.IsKeyPressed(rl.KeyEnd):
		w.source.ScrollTo(w.source.State().Limit, false)
	case rl.IsKeyPressed(rl.KeyTab) && w.form != nil:
		w.form.FocusNext()
	}
}

func (w *Window) updateFormInput() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		w.form.Type(rune(r))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
		w.form.Backspace()
	case rl.IsKeyPressed(rl.KeyTab):
		w.form.FocusNext()
	case rl.IsKeyPressed(rl.KeyEscape):
		w.form.Focus = -1
	case rl.IsKeyPressed(rl.KeyEnter):
		w.submit()
	}
}

func (w *Window) click(pos rl.Vector2) {
	if w.form == nil {
		return
	}
	field, submit := w.renderer.FormHit(pos.X, pos.Y)
	switch {
	case submit:
		w.submit()
	default:
		w.form.Focus = field
	}
}

func (w *Window) submit() {
	if w.submitter.Submit(w.ctx, w.form) {
		utils.Info("Submitting contact form to %s", w.form.Action)
	}
}

func (w *Window) stats() debug.Stats {
	return debug.Stats{
		Scroll:      w.source.State(),
		Mode:        w.cfg.Scroll.Mode,
		Triggers:    w.registry.Triggers(),
		Layers:      w.coordinator.Layers(),
		Skipped:     w.coordinator.Skipped(),
		Field:       w.field,
		Frames:      w.frames.Frames(),
		Painted:     w.renderLoop.Painted(),
		Dropped:     w.renderLoop.Skipped(),
		Callbacks:   w.frames.Names(),
		Resizes:     w.tracker.Applied(),
		Tweens:      w.tweens.Len(),
		Pending:     w.mailbox.Len(),
		CursorMoves: w.follower.Moves(),
	}
}

// Close cancels in-flight requests and frees GPU resources. The window itself is
// closed by main.
func (w *Window) Close() {
	w.cancel()
	w.debugOverlay.Unload()
	w.renderer.Unload()
}
