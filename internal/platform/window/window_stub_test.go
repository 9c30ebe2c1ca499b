//go:build !ebiten

package window

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRunWithoutEbitenTag(t *testing.T) {
	if Available {
		t.Fatal("stub build should not report a window frontend")
	}
	if err := Run(nil, core.DefaultConfig()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() error = %v, want ErrUnavailable", err)
	}
}
