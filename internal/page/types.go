package page

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a selector matches no element.
var ErrNotFound = errors.New("page: no element matches selector")

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Bounds is an element box in document coordinates (y grows downwards).
type Bounds struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b Bounds) Bottom() float64 { return b.Top + b.Height }

// Element is one positioned block of the document.
type Element struct {
	ID      string            `json:"id"`
	Classes []string          `json:"class"`
	Bounds  Bounds            `json:"bounds"`
	Color   string            `json:"color"`
	Text    string            `json:"text"`
	Data    map[string]string `json:"data"`
}

func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the data attribute stored under key ("speed" for data-speed).
func (e *Element) Attr(key string) (string, bool) {
	if e.Data == nil {
		return "", false
	}
	v, ok := e.Data[strings.TrimPrefix(key, "data-")]
	return v, ok
}

// Speed reads the parallax speed attribute. Absent or non-numeric values are 0.
func (e *Element) Speed() float64 {
	raw, ok := e.Attr("speed")
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormSpec places the contact form inside the document.
type FormSpec struct {
	ElementID string   `json:"element"`
	Action    string   `json:"action"`
	Method    string   `json:"method"`
	Fields    []string `json:"fields"`
}

// Page is the whole scrollable document.
type Page struct {
	Title      string    `json:"title"`
	Width      float64   `json:"width"`
	Background string    `json:"background"`
	Accent     string    `json:"accent"`
	Elements   []Element `json:"elements"`
	Form       *FormSpec `json:"form,omitempty"`
}

// Height is the document height: the lowest element bottom.
func (p *Page) Height() float64 {
	h := 0.0
	for i := range p.Elements {
		if b := p.Elements[i].Bounds.Bottom(); b > h {
			h = b
		}
	}
	return h
}

// Body is the pseudo-element covering the whole document.
func (p *Page) Body() *Element {
	return &Element{
		ID:     "body",
		Bounds: Bounds{Width: p.Width, Height: p.Height()},
	}
}
