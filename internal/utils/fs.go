package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigHome is the per-user directory searched for page and config files.
var ConfigHome string

func init() {
	if dir, err := os.UserConfigDir(); err == nil {
		ConfigHome = filepath.Join(dir, "scrollscene")
	}
}

// ResolvePagePath returns the first existing candidate for a page or config file.
// Relative names are tried as given, under ./pages, and under ConfigHome. An empty
// string is returned when nothing matches.
func ResolvePagePath(name string) string {
	if name == "" {
		return ""
	}

	if filepath.IsAbs(name) {
		if fileExists(name) {
			return name
		}
		return ""
	}

	searchDirs := []string{
		".",
		"pages",
	}
	if ConfigHome != "" {
		searchDirs = append(searchDirs, ConfigHome, filepath.Join(ConfigHome, "pages"))
	}

	extensions := []string{"", ".json"}
	for _, dir := range searchDirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if strings.HasSuffix(name, ".json") && ext != "" {
				continue
			}
			if fileExists(p) {
				Debug("Resolved %s to %s", name, p)
				return p
			}
		}
	}

	return ""
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
