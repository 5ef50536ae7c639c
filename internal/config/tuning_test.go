package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTuningOverrides(t *testing.T) {
	path := writeTuningFile(t, `
weapons:
  value_min: 50
  value_max: 500
materials:
  value_max: 90
`)

	tuning, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 50, tuning.Weapons.ValueMin)
	assert.Equal(t, 500, tuning.Weapons.ValueMax)

	// Unset fields fall back to defaults.
	defaults := DefaultTuning()
	assert.Equal(t, defaults.Materials.ValueMin, tuning.Materials.ValueMin)
	assert.Equal(t, 90, tuning.Materials.ValueMax)
	assert.Equal(t, defaults.Armor, tuning.Armor)
	assert.Equal(t, defaults.Consumables, tuning.Consumables)
}

func TestLoadTuningEmptyFileKeepsDefaults(t *testing.T) {
	path := writeTuningFile(t, "")

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadTuningErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTuningFile(t, "weapons: [not a mapping")
		_, err := LoadTuning(path)
		assert.Error(t, err)
	})
}

func TestTuningValidate(t *testing.T) {
	assert.NoError(t, DefaultTuning().Validate())

	t.Run("non-positive floor rejected", func(t *testing.T) {
		tuning := DefaultTuning()
		tuning.Consumables.ValueMin = 0
		assert.Error(t, tuning.Validate())
	})

	t.Run("inverted band rejected", func(t *testing.T) {
		tuning := DefaultTuning()
		tuning.Armor.ValueMax = tuning.Armor.ValueMin - 1
		assert.Error(t, tuning.Validate())
	})
}
