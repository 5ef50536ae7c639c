package generator

import (
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// rarityThreshold defines a mapping between a roll threshold and a tier.
type rarityThreshold struct {
	threshold float64
	rarity    domain.Rarity
}

// rarityThresholds is the cumulative distribution for gear and consumable
// rarity: common 45%, uncommon 30%, rare 17%, epic 6.5%, legendary 1.5%.
// The order is critical: checks run from most to least common.
var rarityThresholds = []rarityThreshold{
	{0.45, domain.RarityCommon},
	{0.75, domain.RarityUncommon},
	{0.92, domain.RarityRare},
	{0.985, domain.RarityEpic},
	{1.0, domain.RarityLegendary},
}

// PickRarity samples a tier from the fixed cumulative distribution.
func (s *Session) PickRarity() domain.Rarity {
	roll := s.Float()
	for _, rt := range rarityThresholds {
		if roll < rt.threshold {
			return rt.rarity
		}
	}
	return domain.RarityLegendary
}

// materialRarityWeights is the integer-weighted distribution used for
// crafting materials (45/30/18/6/1), slightly flatter at the top end than
// the gear distribution.
var materialRarityWeights = []int{45, 30, 18, 6, 1}

// PickMaterialRarity samples a tier from the material weight table.
func (s *Session) PickMaterialRarity() domain.Rarity {
	total := 0
	for _, w := range materialRarityWeights {
		total += w
	}
	roll := s.Int(0, total-1)
	for i, w := range materialRarityWeights {
		if roll < w {
			return domain.Rarities[i]
		}
		roll -= w
	}
	return domain.RarityLegendary
}
