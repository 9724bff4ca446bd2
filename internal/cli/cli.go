// Package cli implements the qdraw command-line interface.
//
// This package provides commands for rendering circuit files as diagram
// images, previewing circuits in the terminal, browsing the supported
// gate set, serving the render API over HTTP, and managing the artifact
// cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF, or JSON geometry from a circuit file
//   - preview: Draw a circuit with Unicode glyphs in the terminal
//   - gates: List the supported gate vocabulary
//   - serve: Run the HTTP render API
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
//
// # Example
//
//	import "github.com/qdrawlabs/qdraw/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"os"
	"path/filepath"

	"github.com/qdrawlabs/qdraw/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "qdraw"

// newCache returns the artifact cache for CLI use: a file cache under
// the XDG cache directory, or NullCache when caching is disabled or the
// cache directory cannot be resolved.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/qdraw/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
