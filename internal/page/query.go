package page

import (
	"fmt"
	"strings"
)

// Query returns every element matching selector. Supported selectors are "body",
// "#id", ".class" and a comma separated list of those. Unknown forms match nothing.
func (p *Page) Query(selector string) []*Element {
	var out []*Element
	seen := make(map[*Element]bool)

	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "body":
			out = append(out, p.Body())
		case strings.HasPrefix(part, "#"):
			if el := p.byID(part[1:]); el != nil && !seen[el] {
				seen[el] = true
				out = append(out, el)
			}
		case strings.HasPrefix(part, "."):
			class := part[1:]
			for i := range p.Elements {
				el := &p.Elements[i]
				if el.HasClass(class) && !seen[el] {
					seen[el] = true
					out = append(out, el)
				}
			}
		}
	}
	return out
}

// First returns the first element matching selector or ErrNotFound.
func (p *Page) First(selector string) (*Element, error) {
	els := p.Query(selector)
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return els[0], nil
}

func (p *Page) byID(id string) *Element {
	for i := range p.Elements {
		if p.Elements[i].ID == id {
			return &p.Elements[i]
		}
	}
	return nil
}
