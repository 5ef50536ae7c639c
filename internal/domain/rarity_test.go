package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarityLadder(t *testing.T) {
	assert.Len(t, Rarities, 5)
	assert.Equal(t, RarityCommon, Rarities[0])
	assert.Equal(t, RarityLegendary, Rarities[4])

	for i, r := range Rarities {
		assert.Equal(t, i, r.Rank(), "rank must match ladder position for %s", r)
		assert.True(t, r.Valid())
	}
}

func TestRarityMultipliersMonotone(t *testing.T) {
	prev := 0.0
	for _, r := range Rarities {
		mult := r.Multiplier()
		assert.Greater(t, mult, prev, "multiplier must strictly increase at %s", r)
		prev = mult
	}

	assert.Equal(t, 1.0, RarityCommon.Multiplier())
	assert.Equal(t, 6.5, RarityLegendary.Multiplier())
}

func TestRarityColors(t *testing.T) {
	seen := make(map[string]Rarity)
	for _, r := range Rarities {
		color := r.Color()
		assert.Regexp(t, `^#[0-9A-F]{6}$`, color)
		if other, dup := seen[color]; dup {
			t.Errorf("color %s shared by %s and %s", color, other, r)
		}
		seen[color] = r
	}
}

func TestUnknownRarity(t *testing.T) {
	unknown := Rarity("mythic")
	assert.False(t, unknown.Valid())
	assert.Equal(t, 0, unknown.Rank())
	assert.Equal(t, 0.0, unknown.Multiplier())
}

// Published tables are copies: mutating one must not leak into the source.
func TestRarityTableCopies(t *testing.T) {
	mults := RarityMultipliers()
	mults[RarityCommon] = 99.0
	assert.Equal(t, 1.0, RarityCommon.Multiplier())

	colors := RarityColors()
	colors[RarityCommon] = "#000000"
	assert.Equal(t, "#FFFFFF", RarityCommon.Color())

	assert.Len(t, RarityMultipliers(), len(Rarities))
	assert.Len(t, RarityColors(), len(Rarities))
}
