package main

import (
	"fmt"
	"os"

	"scrollscene/internal/config"
	"scrollscene/internal/contact"
	"scrollscene/internal/page"
	"scrollscene/internal/utils"
)

// loadPage resolves name against the page search path. An empty name yields the
// built-in page.
func loadPage(name string) (*page.Page, error) {
	if name == "" {
		utils.Debug("No page given, using the built-in page")
		return page.Default(), nil
	}
	path := utils.ResolvePagePath(name)
	if path == "" {
		return nil, fmt.Errorf("page %q not found: %w", name, os.ErrNotExist)
	}
	utils.Info("Using page: %s", path)
	return page.Load(path)
}

// resolveConfigPath finds the -config file, falling back to scrollscene.json in
// the config search path when the flag is empty.
func resolveConfigPath(name string) string {
	if name != "" {
		if path := utils.ResolvePagePath(name); path != "" {
			return path
		}
		// Let config.Load report the missing file.
		return name
	}
	if path := utils.ResolvePagePath("scrollscene.json"); path != "" {
		utils.Info("Using config file: %s", path)
		return path
	}
	return ""
}

// newContactForm builds the form state from the page's form spec. The endpoint and
// method from the configuration win over the page. A page without a form gets nil.
func newContactForm(doc *page.Page, cfg config.Contact) *contact.Form {
	if doc.Form == nil {
		utils.Debug("Page has no contact form")
		return nil
	}
	action := doc.Form.Action
	if cfg.Endpoint != "" {
		action = cfg.Endpoint
	}
	method := doc.Form.Method
	if cfg.Method != "" {
		method = cfg.Method
	}
	if action == "" {
		utils.Warn("Contact form has no endpoint; submissions will fail")
	}
	utils.Debug("Contact form: %s %s, fields %v", method, action, doc.Form.Fields)
	return contact.NewForm(action, method, doc.Form.Fields)
}
