package scroll

import "fmt"

// Mode selects how the smoothed offset chases the target offset.
type Mode string

const (
	// ModeLerp damps toward the target at a frame-rate independent rate.
	ModeLerp Mode = "lerp"
	// ModeDuration eases from the current offset to the target over a fixed duration.
	ModeDuration Mode = "duration"
	// ModeSpring follows the target with a damped harmonic spring.
	ModeSpring Mode = "spring"
)

// Orientation selects which wheel axis scrolls the document.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
	Both       Orientation = "both"
)

// Config holds the smoothing knobs. The coordinator passes them through untouched.
type Config struct {
	Mode               Mode        `json:"mode" env:"MODE"`
	Duration           float64     `json:"duration" env:"DURATION"`
	Lerp               float64     `json:"lerp" env:"LERP"`
	WheelMultiplier    float64     `json:"wheelMultiplier" env:"WHEEL_MULTIPLIER"`
	KeyStep            float64     `json:"keyStep" env:"KEY_STEP"`
	GestureOrientation Orientation `json:"gestureOrientation" env:"GESTURE_ORIENTATION"`
	NormalizeWheel     bool        `json:"normalizeWheel" env:"NORMALIZE_WHEEL"`
	SmoothWheel        bool        `json:"smoothWheel" env:"SMOOTH_WHEEL"`
	SpringFrequency    float64     `json:"springFrequency" env:"SPRING_FREQUENCY"`
	SpringDamping      float64     `json:"springDamping" env:"SPRING_DAMPING"`
}

// DefaultConfig matches the responsive tuning used by the landing page.
func DefaultConfig() Config {
	return Config{
		Mode:               ModeLerp,
		Duration:           0.7,
		Lerp:               0.12,
		WheelMultiplier:    1.1,
		KeyStep:            40,
		GestureOrientation: Vertical,
		NormalizeWheel:     true,
		SmoothWheel:        true,
		SpringFrequency:    6,
		SpringDamping:      1,
	}
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeLerp:
		if c.Lerp <= 0 || c.Lerp > 1 {
			return fmt.Errorf("scroll: lerp must be in (0,1], got %v", c.Lerp)
		}
	case ModeDuration:
		if c.Duration <= 0 {
			return fmt.Errorf("scroll: duration must be positive, got %v", c.Duration)
		}
	case ModeSpring:
		if c.SpringFrequency <= 0 || c.SpringDamping <= 0 {
			return fmt.Errorf("scroll: spring needs positive frequency and damping")
		}
	default:
		return fmt.Errorf("scroll: unknown mode %q", c.Mode)
	}

	switch c.GestureOrientation {
	case Vertical, Horizontal, Both:
	default:
		return fmt.Errorf("scroll: unknown gesture orientation %q", c.GestureOrientation)
	}
	if c.WheelMultiplier <= 0 {
		return fmt.Errorf("scroll: wheel multiplier must be positive, got %v", c.WheelMultiplier)
	}
	return nil
}
