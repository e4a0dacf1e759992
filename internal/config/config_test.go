package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
game:
  players: 4
  hand_size: 6

deck:
  number_copies: 2
  special_copies: 3
  tutors:
    - Anna
    - Brae
  coders:
    - Ada
    - Grace
    - Linus
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.Game.Players)
	assert.Equal(t, 6, cfg.Game.HandSize)
	assert.Equal(t, 2, cfg.Deck.NumberCopies)
	assert.Equal(t, 3, cfg.Deck.SpecialCopies)
	assert.Equal(t, []string{"Anna", "Brae"}, cfg.Deck.Tutors)
	assert.Len(t, cfg.Deck.Coders, 3)
}

func TestLoad_FillsDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("game:\n  players: 2\n"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Game.Players)
	assert.Equal(t, 5, cfg.Game.HandSize)
	assert.Equal(t, 3, cfg.Deck.NumberCopies)
	assert.Equal(t, 4, cfg.Deck.SpecialCopies)
	assert.NotEmpty(t, cfg.Deck.Tutors)
	assert.NotEmpty(t, cfg.Deck.Coders)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("game: [broken"), 0o600)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, 3, cfg.Game.Players)
	assert.Equal(t, 5, cfg.Game.HandSize)
	assert.Equal(t, 3, cfg.Deck.NumberCopies)
	assert.Equal(t, 4, cfg.Deck.SpecialCopies)
	assert.Len(t, cfg.Deck.Tutors, 4)
	assert.Len(t, cfg.Deck.Coders, 12)
}
