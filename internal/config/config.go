package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"scrollscene/internal/anim"
	"scrollscene/internal/cursor"
	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/frame"
	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
)

// EnvPrefix namespaces every environment override, e.g. SCROLLSCENE_SCROLL_LERP.
const EnvPrefix = "SCROLLSCENE_"

var ErrUnknownPreset = errors.New("unknown preset")

// Duration reads "1.5s" style strings from both JSON and the environment.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

type Parallax struct {
	Selector string  `json:"selector" env:"SELECTOR"`
	Start    string  `json:"start" env:"START"`
	End      string  `json:"end" env:"END"`
	Scrub    float64 `json:"scrub" env:"SCRUB"`
	Ease     string  `json:"ease" env:"EASE"`
}

type Stars struct {
	Count       int     `json:"count" env:"COUNT"`
	Spread      float64 `json:"spread" env:"SPREAD"`
	Size        float64 `json:"size" env:"SIZE"`
	Color       string  `json:"color" env:"COLOR"`
	Opacity     float64 `json:"opacity" env:"OPACITY"`
	Twinkle     float64 `json:"twinkle" env:"TWINKLE"`
	Seed        uint64  `json:"seed" env:"SEED"`
	Selector    string  `json:"selector" env:"SELECTOR"`
	Start       string  `json:"start" env:"START"`
	End         string  `json:"end" env:"END"`
	Scrub       float64 `json:"scrub" env:"SCRUB"`
	Ease        string  `json:"ease" env:"EASE"`
	MaxRotation float64 `json:"maxRotation" env:"MAX_ROTATION"`

	// Per-frame idle rotation, radians.
	DriftX float64 `json:"driftX" env:"DRIFT_X"`
	DriftY float64 `json:"driftY" env:"DRIFT_Y"`
	// ScrollLift moves the field vertically by smoothed offset times this factor.
	ScrollLift float64 `json:"scrollLift" env:"SCROLL_LIFT"`
}

type Camera struct {
	Fov  float64 `json:"fov" env:"FOV"`
	Near float64 `json:"near" env:"NEAR"`
	Far  float64 `json:"far" env:"FAR"`
	Z    float64 `json:"z" env:"Z"`
}

type Cursor struct {
	Duration float64 `json:"duration" env:"DURATION"`
	Ease     string  `json:"ease" env:"EASE"`
	Radius   float64 `json:"radius" env:"RADIUS"`
}

type Contact struct {
	// Endpoint overrides the page form's action when set.
	Endpoint      string   `json:"endpoint" env:"ENDPOINT"`
	Method        string   `json:"method" env:"METHOD"`
	Timeout       Duration `json:"timeout" env:"TIMEOUT"`
	ReenableDelay float64  `json:"reenableDelay" env:"REENABLE_DELAY"`
}

type Window struct {
	Width    int     `json:"width" env:"WIDTH"`
	Height   int     `json:"height" env:"HEIGHT"`
	FPS      int     `json:"fps" env:"FPS"`
	Title    string  `json:"title" env:"TITLE"`
	MaxDelta float64 `json:"maxDelta" env:"MAX_DELTA"`
}

type Config struct {
	Scroll   scroll.Config `json:"scroll" envPrefix:"SCROLL_"`
	Parallax Parallax      `json:"parallax" envPrefix:"PARALLAX_"`
	Stars    Stars         `json:"stars" envPrefix:"STARS_"`
	Camera   Camera        `json:"camera" envPrefix:"CAMERA_"`
	Cursor   Cursor        `json:"cursor" envPrefix:"CURSOR_"`
	Contact  Contact       `json:"contact" envPrefix:"CONTACT_"`
	Window   Window        `json:"window" envPrefix:"WINDOW_"`
}

// Presets lists the built-in tunings by name.
var Presets = map[string]func() Config{
	"snappy":  Snappy,
	"classic": Classic,
}

// DefaultPreset is used when no preset is named.
const DefaultPreset = "snappy"

// Snappy is the responsive tuning: short lerp, quick layer scrub, slow idle spin.
func Snappy() Config {
	return Config{
		Scroll: scroll.DefaultConfig(),
		Parallax: Parallax{
			Selector: ".parallax-layer",
			Start:    "top bottom",
			End:      "bottom top",
			Scrub:    0.5,
			Ease:     "none",
		},
		Stars: Stars{
			Count:       3000,
			Spread:      100,
			Size:        0.1,
			Color:       "#ffffff",
			Opacity:     0.7,
			Twinkle:     0.3,
			Seed:        1,
			Selector:    "body",
			Start:       "top top",
			End:         "bottom bottom",
			Scrub:       1,
			Ease:        "power1.out",
			MaxRotation: math.Pi * 0.5,
			DriftY:      0.0005,
		},
		Camera: Camera{Fov: 75, Near: 0.1, Far: 1000, Z: 30},
		Cursor: Cursor{Duration: 0.1, Ease: "power1.out", Radius: 10},
		Contact: Contact{
			Timeout:       Duration(10 * time.Second),
			ReenableDelay: 1.5,
		},
		Window: Window{Width: 1280, Height: 800, FPS: 60, Title: "scrollscene", MaxDelta: 0.1},
	}
}

// Classic is the heavier tuning: longer glide, full-speed wheel, and a field that
// drifts on two axes and lifts with the page.
func Classic() Config {
	c := Snappy()
	c.Scroll.Lerp = 0.1
	c.Scroll.Duration = 1.2
	c.Scroll.WheelMultiplier = 1
	c.Stars.DriftX = 0.0001
	c.Stars.DriftY = 0.0002
	c.Stars.ScrollLift = 0.0005
	return c
}

func Preset(name string) (Config, error) {
	if name == "" {
		name = DefaultPreset
	}
	fn, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

// Load resolves the configuration in order: preset, then the JSON file at path
// (if any), then SCROLLSCENE_* environment variables.
func Load(preset, path string) (Config, error) {
	cfg, err := Preset(preset)
	if err != nil {
		return cfg, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Scroll.Validate(); err != nil {
		return err
	}
	if c.Stars.Count < 0 || c.Stars.Spread <= 0 {
		return fmt.Errorf("stars: count must be >= 0 and spread positive")
	}
	if c.Stars.Opacity < 0 || c.Stars.Opacity > 1 {
		return fmt.Errorf("stars: opacity must be in [0,1], got %v", c.Stars.Opacity)
	}
	if _, err := page.ParseColor(c.Stars.Color); err != nil {
		return fmt.Errorf("stars: %w", err)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera: fov must be in (0,180), got %v", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: need 0 < near < far")
	}
	if c.Cursor.Duration < 0 || c.Contact.ReenableDelay < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.FPS <= 0 {
		return fmt.Errorf("window: size and fps must be positive")
	}
	if c.Window.MaxDelta <= 0 {
		return fmt.Errorf("window: maxDelta must be positive")
	}
	return nil
}

func (c Config) ParallaxOptions() anim.ParallaxOptions {
	p := c.Parallax
	return anim.ParallaxOptions{
		Selector: p.Selector,
		Spec:     anim.Spec{Start: p.Start, End: p.End, Scrub: p.Scrub, Ease: p.Ease},
	}
}

func (c Config) FieldBinding() anim.FieldOptions {
	s := c.Stars
	return anim.FieldOptions{
		Selector:    s.Selector,
		MaxRotation: s.MaxRotation,
		Spec:        anim.Spec{Start: s.Start, End: s.End, Scrub: s.Scrub, Ease: s.Ease},
	}
}

func (c Config) FieldOptions() particle.FieldOptions {
	s := c.Stars
	return particle.FieldOptions{
		Count:   s.Count,
		Spread:  s.Spread,
		Size:    s.Size,
		Color:   page.ColorOr(s.Color, color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Opacity: s.Opacity,
		Twinkle: s.Twinkle,
		Seed:    s.Seed,
	}
}

func (c Config) RenderLoopOptions() frame.RenderLoopOptions {
	return frame.RenderLoopOptions{
		Drift:      page.Vec2{X: c.Stars.DriftX, Y: c.Stars.DriftY},
		ScrollLift: c.Stars.ScrollLift,
	}
}

func (c Config) CursorOptions() cursor.Options {
	return cursor.Options{Duration: c.Cursor.Duration, Ease: c.Cursor.Ease}
}

// String renders the effective configuration for debug logs.
func (c Config) String() string {
	b, err := json.Marshal(c)
	if err != nil {
		return "config: " + err.Error()
	}
	return string(b)
}
