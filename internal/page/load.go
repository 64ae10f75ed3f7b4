package page

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed default_page.json
var defaultPage []byte

const defaultWidth = 1280

// Default returns the built-in landing page.
func Default() *Page {
	p, err := Parse(defaultPage)
	if err != nil {
		panic(fmt.Sprintf("page: embedded default is invalid: %v", err))
	}
	return p
}

// Load reads and validates a page document from disk.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a page document and fills defaults.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.normalize(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Page) normalize() error {
	if p.Width <= 0 {
		p.Width = defaultWidth
	}
	if p.Background == "" {
		p.Background = "#0a0a0f"
	}
	if p.Accent == "" {
		p.Accent = "#7c5cff"
	}

	ids := make(map[string]bool)
	for i := range p.Elements {
		el := &p.Elements[i]
		if el.Bounds.Height < 0 || el.Bounds.Width < 0 {
			return fmt.Errorf("element %d (%s): negative size", i, el.ID)
		}
		if el.Bounds.Width == 0 {
			el.Bounds.Width = p.Width - el.Bounds.Left
		}
		if el.ID != "" {
			if ids[el.ID] {
				return fmt.Errorf("duplicate element id %q", el.ID)
			}
			ids[el.ID] = true
		}
	}

	if p.Form != nil {
		if p.Form.Method == "" {
			p.Form.Method = "POST"
		}
		if len(p.Form.Fields) == 0 {
			p.Form.Fields = []string{"name", "email", "message"}
		}
	}
	return nil
}
