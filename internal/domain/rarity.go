// Package domain defines the catalog's core types: rarity tiers, item
// records for every category, and the document envelope. Pure data, no
// generation logic.
package domain

// Rarity is an item's tier. The five tiers form a strict quality ladder;
// every numeric formula in the generator keys off the tier's rank or
// multiplier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every tier in ascending quality order. Rank() indexes
// into this slice.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

var rarityMultipliers = map[Rarity]float64{
	RarityCommon:    1.0,
	RarityUncommon:  1.5,
	RarityRare:      2.5,
	RarityEpic:      4.0,
	RarityLegendary: 6.5,
}

var rarityColors = map[Rarity]string{
	RarityCommon:    "#FFFFFF",
	RarityUncommon:  "#00FF00",
	RarityRare:      "#0080FF",
	RarityEpic:      "#8000FF",
	RarityLegendary: "#FF8000",
}

// Multiplier returns the tier's stat scaling factor.
func (r Rarity) Multiplier() float64 {
	return rarityMultipliers[r]
}

// Color returns the tier's display color as a hex string.
func (r Rarity) Color() string {
	return rarityColors[r]
}

// Rank returns the tier's zero-based position in the quality ladder.
// Unknown tiers rank as common.
func (r Rarity) Rank() int {
	for i, known := range Rarities {
		if known == r {
			return i
		}
	}
	return 0
}

// Valid reports whether r is one of the five known tiers.
func (r Rarity) Valid() bool {
	_, ok := rarityMultipliers[r]
	return ok
}

// RarityMultipliers returns a fresh copy of the tier multiplier table for
// publication in the document.
func RarityMultipliers() map[Rarity]float64 {
	out := make(map[Rarity]float64, len(rarityMultipliers))
	for k, v := range rarityMultipliers {
		out[k] = v
	}
	return out
}

// RarityColors returns a fresh copy of the tier color table for publication
// in the document.
func RarityColors() map[Rarity]string {
	out := make(map[Rarity]string, len(rarityColors))
	for k, v := range rarityColors {
		out[k] = v
	}
	return out
}
