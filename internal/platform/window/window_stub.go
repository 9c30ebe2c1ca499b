//go:build !ebiten

// Package window runs a snake variant in a desktop window through ebiten.
// This build has no window support; rebuild with -tags ebiten.
package window

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Available reports whether this binary was built with the windowed frontend.
const Available = false

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the 'ebiten' tag; rebuild with -tags ebiten")

// Run always fails in the headless build.
func Run(registry.Game, core.RuntimeConfig) error {
	return ErrUnavailable
}
