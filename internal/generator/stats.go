package generator

import (
	"math"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/lexicon"
	"github.com/osse101/ItemForge_Go/internal/utils"
)

// levelBands holds the non-overlapping level_requirement range per tier,
// indexed by rarity rank.
var levelBands = [5][2]int{
	{1, 4},   // common
	{5, 8},   // uncommon
	{9, 12},  // rare
	{13, 17}, // epic
	{18, 20}, // legendary
}

// LevelForRarity samples a level requirement from the tier's band.
func (s *Session) LevelForRarity(r domain.Rarity) int {
	band := levelBands[r.Rank()]
	return s.Int(band[0], band[1])
}

// StatBonus is the flat attribute bonus for the tier: the rounded multiplier.
func StatBonus(r domain.Rarity) int {
	return int(math.Round(r.Multiplier()))
}

// MaybeBonus rolls StatBonus half the time and zero otherwise: some items
// get a secondary stat, some don't.
func (s *Session) MaybeBonus(r domain.Rarity) int {
	if s.Float() < MaybeBonusChance {
		return StatBonus(r)
	}
	return 0
}

// critChanceBands holds the critical chance range per tier, indexed by rank.
// Bands overlap intentionally at the rare/epic boundary.
var critChanceBands = [5][2]int{
	{3, 4},
	{5, 7},
	{8, 10},
	{10, 12},
	{12, 15},
}

// CritChance samples a critical hit chance from the tier's band.
func (s *Session) CritChance(r domain.Rarity) int {
	band := critChanceBands[r.Rank()]
	return s.Int(band[0], band[1])
}

// CritDamage is the critical damage percentage: linear in the multiplier.
func CritDamage(r domain.Rarity) int {
	return CritDamageBase + int(math.Round(CritDamagePerMult*r.Multiplier()))
}

// GoldValue interpolates between a category's floor and ceiling by rarity
// rank, then adds uniform jitter in [0, floor]. Expected value is
// non-decreasing in rarity; the jitter allows overlap at band boundaries.
func (s *Session) GoldValue(r domain.Rarity, minValue, maxValue int) int {
	t := float64(r.Rank()) / float64(len(domain.Rarities)-1)
	base := float64(minValue) + float64(maxValue-minValue)*t
	return int(base) + s.Int(0, minValue)
}

// CraftMats samples a recipe's material requirements from the fixed pool.
// Quantity per material is 1 + rank/2. Liquid recipes rebias non-water
// picks toward pure water. Drawing the same material twice collapses into
// one entry, so recipes may end up with fewer distinct materials than the
// sampled count.
func (s *Session) CraftMats(r domain.Rarity, minCount, maxCount int, liquid bool) map[string]int {
	quantity := 1 + r.Rank()/2
	mats := make(map[string]int)

	n := s.Int(minCount, maxCount)
	for i := 0; i < n; i++ {
		mat := choice(s, lexicon.CraftPool)
		if liquid && mat != lexicon.PureWaterID && s.Float() < LiquidBiasChance {
			mat = lexicon.PureWaterID
		}
		mats[utils.ToID(mat)] = quantity
	}
	return mats
}

// elemResChoices holds the resistance values each tier may roll, indexed by
// rank. Common never rolls, so no draw is consumed for it.
var elemResChoices = [5][]int{
	{0},
	{0, 5},
	{5, 10, 15},
	{10, 15, 20},
	{15, 20, 25},
}

// ElementalResistance samples one element's resistance for the tier.
func (s *Session) ElementalResistance(r domain.Rarity) int {
	options := elemResChoices[r.Rank()]
	if len(options) == 1 {
		return options[0]
	}
	return choice(s, options)
}

// ElementalResistances rolls every element in fixed order.
func (s *Session) ElementalResistances(r domain.Rarity) map[string]int {
	res := make(map[string]int, len(lexicon.Elements))
	for _, element := range lexicon.Elements {
		res[element] = s.ElementalResistance(r)
	}
	return res
}

// ExperienceBonus is the accessory experience bonus: rare and above only.
func ExperienceBonus(r domain.Rarity) int {
	if r.Rank() >= domain.RarityRare.Rank() {
		return int(5 * r.Multiplier())
	}
	return 0
}
