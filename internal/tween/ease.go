package tween

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease maps linear progress in [0,1] to eased progress. Eases must return 0 at 0 and 1 at 1.
type Ease func(t float64) float64

// Linear is the identity ease, named "none" or "linear".
func Linear(t float64) float64 { return t }

// DefaultEase is used when a binding names no ease.
const DefaultEase = "power1.out"

// family holds the three variants of one curve. Curves that overshoot on purpose
// keep their excursions; the rest are bounded to [0,1].
type family struct {
	in, out, inOut ease.TweenFunc
	overshoots     bool
}

var (
	quad  = family{in: ease.InQuad, out: ease.OutQuad, inOut: ease.InOutQuad}
	cubic = family{in: ease.InCubic, out: ease.OutCubic, inOut: ease.InOutCubic}
	quart = family{in: ease.InQuart, out: ease.OutQuart, inOut: ease.InOutQuart}
	quint = family{in: ease.InQuint, out: ease.OutQuint, inOut: ease.InOutQuint}
)

var families = map[string]family{
	"power0":  {in: ease.Linear, out: ease.Linear, inOut: ease.Linear},
	"power1":  quad,
	"power2":  cubic,
	"power3":  quart,
	"power4":  quint,
	"quad":    quad,
	"cubic":   cubic,
	"quart":   quart,
	"quint":   quint,
	"sine":    {in: ease.InSine, out: ease.OutSine, inOut: ease.InOutSine},
	"expo":    {in: ease.InExpo, out: ease.OutExpo, inOut: ease.InOutExpo},
	"circ":    {in: ease.InCirc, out: ease.OutCirc, inOut: ease.InOutCirc},
	"bounce":  {in: ease.InBounce, out: ease.OutBounce, inOut: ease.InOutBounce},
	"back":    {in: ease.InBack, out: ease.OutBack, inOut: ease.InOutBack, overshoots: true},
	"elastic": {in: ease.InElastic, out: ease.OutElastic, inOut: ease.InOutElastic, overshoots: true},
}

// fromTween adapts a (t, begin, change, duration) curve to unit progress.
func fromTween(fn ease.TweenFunc, bounded bool) Ease {
	return func(t float64) float64 {
		v := float64(fn(float32(t), 0, 1, 1))
		if bounded {
			v = min(max(v, 0), 1)
		}
		return v
	}
}

// ParseEase resolves names of the form "family[.in|.out|.inOut]", for example
// "none", "power2.inOut" or "sine.out". A bare family name means ".out". The empty
// string resolves to DefaultEase.
func ParseEase(name string) (Ease, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEase
	}
	if name == "none" || name == "linear" {
		return clamp(Linear), nil
	}

	fam, variant, _ := strings.Cut(name, ".")
	f, ok := families[strings.ToLower(fam)]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}

	var fn ease.TweenFunc
	switch strings.ToLower(variant) {
	case "in":
		fn = f.in
	case "", "out":
		fn = f.out
	case "inout":
		fn = f.inOut
	default:
		return nil, fmt.Errorf("unknown ease variant %q", name)
	}
	return clamp(fromTween(fn, !f.overshoots)), nil
}

// MustEase is ParseEase for names fixed at compile time.
func MustEase(name string) Ease {
	e, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return e
}

func clamp(e Ease) Ease {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return e(t)
	}
}
