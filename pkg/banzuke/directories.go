package banzuke

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ConfigDirectory is where bare roster file names are looked up when they do
// not resolve relative to the working directory.
var ConfigDirectory = filepath.Join(xdg.ConfigHome, "sumo-ilp")

// Resolve expands a leading ~ and falls back to the sumo-ilp config
// directory for paths that do not exist as given. The original path is
// returned when neither exists, so the subsequent read reports a sensible
// error.
func Resolve(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if !filepath.IsAbs(path) {
		fallback := filepath.Join(ConfigDirectory, path)
		if _, err := os.Stat(fallback); err == nil {
			return fallback
		}
	}
	return path
}
