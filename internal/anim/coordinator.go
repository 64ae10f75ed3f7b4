package anim

import (
	"fmt"

	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/page"
	"scrollscene/internal/trigger"
	"scrollscene/internal/tween"
	"scrollscene/internal/utils"
)

var logger = utils.For("anim")

// Spec describes one scroll-linked animation: when it runs, how much it lags and
// how progress is shaped before it reaches the target.
type Spec struct {
	Start string
	End   string
	Scrub float64
	Ease  string
}

// ParallaxOptions selects the layers to displace and how.
type ParallaxOptions struct {
	Selector string
	Spec
}

// FieldOptions binds particle field rotation to the whole-document scroll.
type FieldOptions struct {
	Selector    string
	MaxRotation float64 // radians reached at the end of the document
	Spec
}

// ParallaxLayer is an element displaced vertically by scroll progress.
type ParallaxLayer struct {
	Element *page.Element
	Speed   float64
	Offset  float64

	trigger *trigger.Trigger
}

// TargetOffset is where the layer settles for the current raw progress.
func (l *ParallaxLayer) TargetOffset() float64 {
	return -l.trigger.Progress() * l.Speed
}

func (l *ParallaxLayer) Trigger() *trigger.Trigger { return l.trigger }

type binding struct {
	name    string
	trigger *trigger.Trigger
	ease    tween.Ease
	apply   func(v float64)
}

// Coordinator subscribes visual targets to registry triggers. Each trigger update
// is eased and written straight to the target; there is no buffering between
// frames.
type Coordinator struct {
	registry *trigger.Registry
	bindings []*binding
	layers   []*ParallaxLayer
	skipped  []string
}

func NewCoordinator(reg *trigger.Registry) *Coordinator {
	return &Coordinator{registry: reg}
}

// Bind links el's trigger range to apply. A nil element is skipped without error
// so optional page regions do not break the other bindings.
func (c *Coordinator) Bind(name string, el *page.Element, spec Spec, apply func(v float64)) (*trigger.Trigger, error) {
	if el == nil {
		logger.Debug("Animation %s: target not on page, skipping", name)
		c.skipped = append(c.skipped, name)
		return nil, nil
	}

	start, err := trigger.ParseCondition(spec.Start)
	if err != nil {
		return nil, fmt.Errorf("animation %s start: %w", name, err)
	}
	end, err := trigger.ParseCondition(spec.End)
	if err != nil {
		return nil, fmt.Errorf("animation %s end: %w", name, err)
	}
	ease, err := tween.ParseEase(spec.Ease)
	if err != nil {
		return nil, fmt.Errorf("animation %s: %w", name, err)
	}

	tr, err := c.registry.Add(trigger.Binding{
		Name:   name,
		Bounds: el.Bounds,
		Start:  start,
		End:    end,
		Scrub:  spec.Scrub,
	})
	if err != nil {
		return nil, err
	}

	b := &binding{name: name, trigger: tr, ease: ease, apply: apply}
	tr.OnUpdate(func(t *trigger.Trigger) {
		b.apply(b.ease(t.Applied()))
	})
	b.apply(b.ease(tr.Applied()))
	c.bindings = append(c.bindings, b)

	logger.Debug("Animation %s: %s -> %s, scrub %.2f", name, start, end, spec.Scrub)
	return tr, nil
}

// BindParallax creates one layer per element matching opts.Selector. The layer's
// speed is read once from its data-speed attribute.
func (c *Coordinator) BindParallax(p *page.Page, opts ParallaxOptions) ([]*ParallaxLayer, error) {
	els := p.Query(opts.Selector)
	if len(els) == 0 {
		logger.Debug("No parallax layers match %q", opts.Selector)
		c.skipped = append(c.skipped, opts.Selector)
		return nil, nil
	}

	var layers []*ParallaxLayer
	for i, el := range els {
		layer := &ParallaxLayer{Element: el, Speed: el.Speed()}
		name := el.ID
		if name == "" {
			name = fmt.Sprintf("%s[%d]", opts.Selector, i)
		}
		tr, err := c.Bind(name, el, opts.Spec, func(v float64) {
			layer.Offset = -v * layer.Speed
		})
		if err != nil {
			return layers, err
		}
		layer.trigger = tr
		layers = append(layers, layer)
	}
	c.layers = append(c.layers, layers...)
	return layers, nil
}

// BindField drives f.Base.Y from 0 to opts.MaxRotation across the trigger range.
// Drift written by the render loop is left untouched.
func (c *Coordinator) BindField(p *page.Page, f *particle.Field, opts FieldOptions) error {
	if f == nil {
		c.skipped = append(c.skipped, "field")
		return nil
	}
	var el *page.Element
	if els := p.Query(opts.Selector); len(els) > 0 {
		el = els[0]
	}
	_, err := c.Bind("field", el, opts.Spec, func(v float64) {
		f.Base.Y = v * opts.MaxRotation
	})
	return err
}

// Step advances scrub damping. Register it as a per-frame callback after the
// frame clock.
func (c *Coordinator) Step(dt float64) {
	c.registry.Step(dt)
}

func (c *Coordinator) Layers() []*ParallaxLayer { return c.layers }

func (c *Coordinator) Registry() *trigger.Registry { return c.registry }

// Skipped lists bindings whose targets were missing at setup.
func (c *Coordinator) Skipped() []string { return c.skipped }

func (c *Coordinator) Len() int { return len(c.bindings) }
