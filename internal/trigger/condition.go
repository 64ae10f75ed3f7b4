package trigger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scrollscene/internal/page"
)

// ErrInvalidCondition is returned for start/end rules that cannot be parsed.
var ErrInvalidCondition = errors.New("trigger: invalid condition")

// Edge is a position along a box: Fraction of its height plus a pixel offset.
type Edge struct {
	Fraction float64
	Pixels   float64
}

func (e Edge) resolve(size float64) float64 {
	return e.Fraction*size + e.Pixels
}

// Condition is an "<element edge> <viewport edge>" rule: it holds when the first
// edge of the trigger element meets the second edge of the viewport.
type Condition struct {
	Element  Edge
	Viewport Edge
	text     string
}

func (c Condition) String() string { return c.text }

// ScrollOffset is the document offset at which the condition holds for an element
// with bounds b seen through a viewport of the given height.
func (c Condition) ScrollOffset(b page.Bounds, viewportHeight float64) float64 {
	return b.Top + c.Element.resolve(b.Height) - c.Viewport.resolve(viewportHeight)
}

// ParseCondition parses rules such as "top bottom", "center 80%", "top+=100 top"
// or "bottom-=20px 50%". A single edge pins the element edge to the viewport top.
func ParseCondition(s string) (Condition, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Condition{}, fmt.Errorf("%w: %q", ErrInvalidCondition, s)
	}

	el, err := parseEdge(fields[0])
	if err != nil {
		return Condition{}, fmt.Errorf("%w: %q: %v", ErrInvalidCondition, s, err)
	}

	vp := Edge{}
	if len(fields) == 2 {
		vp, err = parseEdge(fields[1])
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %q: %v", ErrInvalidCondition, s, err)
		}
	}

	return Condition{Element: el, Viewport: vp, text: strings.Join(fields, " ")}, nil
}

// MustCondition is ParseCondition for rules fixed at compile time.
func MustCondition(s string) Condition {
	c, err := ParseCondition(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseEdge(tok string) (Edge, error) {
	base, rel := tok, ""
	sign := 0.0
	if i := strings.Index(tok, "+="); i > 0 {
		base, rel, sign = tok[:i], tok[i+2:], 1
	} else if i := strings.Index(tok, "-="); i > 0 {
		base, rel, sign = tok[:i], tok[i+2:], -1
	}

	edge, err := parseBase(base)
	if err != nil {
		return Edge{}, err
	}
	if rel != "" {
		px, err := parsePixels(rel)
		if err != nil {
			return Edge{}, err
		}
		edge.Pixels += sign * px
	}
	return edge, nil
}

func parseBase(tok string) (Edge, error) {
	switch tok {
	case "top":
		return Edge{Fraction: 0}, nil
	case "center":
		return Edge{Fraction: 0.5}, nil
	case "bottom":
		return Edge{Fraction: 1}, nil
	}

	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return Edge{}, fmt.Errorf("bad percentage %q", tok)
		}
		return Edge{Fraction: v / 100}, nil
	}

	px, err := parsePixels(tok)
	if err != nil {
		return Edge{}, err
	}
	return Edge{Pixels: px}, nil
}

func parsePixels(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("bad pixel value %q", tok)
	}
	return v, nil
}
