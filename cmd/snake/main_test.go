package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagLogLevel = "info"
		flagDifficulty = ""
		flagConfig = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "snake_v1")
	assert.Contains(t, out, "snake_v2")
	assert.Contains(t, out, "wasd")
	assert.Contains(t, out, "arrows")
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestPlayRejectsBadDifficulty(t *testing.T) {
	_, err := execute(t, "play", "snake", "--difficulty", "insane")
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestPlayRejectsMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := execute(t, "play", "snake", "--config", missing)
	assert.ErrorContains(t, err, "failed to read config")
}
