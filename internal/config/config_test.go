package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/config"
)

func TestDefaultMatchesSpecPrompt(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "> ", cfg.Prompt)
	require.True(t, cfg.EchoValues)
	require.Equal(t, config.ColorAuto, cfg.Color)
}

func TestLoadWithNoFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".loxirc.yaml"), []byte("prompt: \"lox> \"\necho_values: false\ncolor: never\n"), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "lox> ", cfg.Prompt)
	require.False(t, cfg.EchoValues)
	require.Equal(t, config.ColorNever, cfg.Color)
}
