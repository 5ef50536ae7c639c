package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategoryTuning holds the gold value floor and ceiling for one category.
// Rarity rank interpolates between the two.
type CategoryTuning struct {
	ValueMin int `yaml:"value_min"`
	ValueMax int `yaml:"value_max"`
}

// Tuning holds the per-category value bands. Zero fields in a loaded file
// fall back to the defaults.
type Tuning struct {
	Weapons     CategoryTuning `yaml:"weapons"`
	Armor       CategoryTuning `yaml:"armor"`
	Accessories CategoryTuning `yaml:"accessories"`
	Consumables CategoryTuning `yaml:"consumables"`
	Materials   CategoryTuning `yaml:"materials"`
}

// DefaultTuning returns the built-in value bands.
func DefaultTuning() Tuning {
	return Tuning{
		Weapons:     CategoryTuning{ValueMin: 100, ValueMax: 900},
		Armor:       CategoryTuning{ValueMin: 120, ValueMax: 1800},
		Accessories: CategoryTuning{ValueMin: 150, ValueMax: 1800},
		Consumables: CategoryTuning{ValueMin: 20, ValueMax: 400},
		Materials:   CategoryTuning{ValueMin: 3, ValueMax: 45},
	}
}

// LoadTuning reads tuning overrides from a YAML file, falling back to the
// defaults for any field left unset.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	defaults := DefaultTuning()
	applyDefaults(&tuning.Weapons, defaults.Weapons)
	applyDefaults(&tuning.Armor, defaults.Armor)
	applyDefaults(&tuning.Accessories, defaults.Accessories)
	applyDefaults(&tuning.Consumables, defaults.Consumables)
	applyDefaults(&tuning.Materials, defaults.Materials)

	return tuning, nil
}

func applyDefaults(ct *CategoryTuning, def CategoryTuning) {
	if ct.ValueMin == 0 {
		ct.ValueMin = def.ValueMin
	}
	if ct.ValueMax == 0 {
		ct.ValueMax = def.ValueMax
	}
}

// Validate checks that every value band is sane.
func (t Tuning) Validate() error {
	bands := map[string]CategoryTuning{
		"weapons":     t.Weapons,
		"armor":       t.Armor,
		"accessories": t.Accessories,
		"consumables": t.Consumables,
		"materials":   t.Materials,
	}
	for name, band := range bands {
		if band.ValueMin <= 0 {
			return fmt.Errorf("%s: value_min must be positive, got %d", name, band.ValueMin)
		}
		if band.ValueMax < band.ValueMin {
			return fmt.Errorf("%s: value_max %d below value_min %d", name, band.ValueMax, band.ValueMin)
		}
	}
	return nil
}
