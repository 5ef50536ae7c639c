package generator

import (
	"fmt"
	"strings"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/lexicon"
)

// dotOnHitTags are the effects parameterized with both a proc chance and a
// duration.
var dotOnHitTags = map[string]struct{}{
	"bleed_on_hit":  {},
	"burn_on_hit":   {},
	"freeze_on_hit": {},
	"shock_on_hit":  {},
}

// MaybeEffects rolls 0-2 special effect tags. The baseline inclusion chance
// is SpecialEffectChance; rare and above always roll, and epic/legendary get
// two tags. Parameter suffixes scale with the rarity multiplier. The roll is
// always consumed so the draw order stays stable across rarities.
func (s *Session) MaybeEffects(r domain.Rarity) []string {
	effects := []string{}

	roll := s.Float()
	if roll >= SpecialEffectChance && r.Rank() < domain.RarityRare.Rank() {
		return effects
	}

	count := 1
	if r == domain.RarityEpic || r == domain.RarityLegendary {
		count = 2
	}

	for i := 0; i < count; i++ {
		effects = append(effects, s.effectTag(r))
	}
	return effects
}

func (s *Session) effectTag(r domain.Rarity) string {
	tag := choice(s, lexicon.SpecialEffectPool)
	mult := r.Multiplier()

	switch {
	case strings.HasPrefix(tag, "elemental_affinity"):
		return fmt.Sprintf("%s:%d%%", tag, 5+int(5*mult))
	case tag == "clarity:spell_focus":
		return fmt.Sprintf("clarity:spell_focus:%d%%", 5+int(5*mult))
	default:
		if _, ok := dotOnHitTags[tag]; ok {
			return fmt.Sprintf("%s:%d%%:%ds", tag, 10+int(5*mult), s.Int(3, 6))
		}
		return tag
	}
}

// Consumable effect magnitude tables, indexed by rarity rank.
var (
	healValues        = [5]int{120, 350, 600, 900, 1400}
	manaRestoreValues = [5]int{100, 200, 350, 500, 750}
	speedBoostValues  = [5]int{15, 20, 25, 30, 35}
)

// coreAttributes are the six attributes a stat_boost elixir may raise.
var coreAttributes = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// BuildEffect assembles a consumable's structured effect for its kind and
// tier. The stats_affected block always carries all eight attribute keys;
// only the fields the kind touches are non-zero.
func (s *Session) BuildEffect(kind string, r domain.Rarity) domain.ConsumableEffect {
	eff := domain.ConsumableEffect{
		Type:    kind,
		Instant: true,
	}
	rank := r.Rank()

	switch kind {
	case domain.EffectHeal:
		eff.Value = healValues[rank]
		eff.StatsAffected.Health = eff.Value

	case domain.EffectManaRestore:
		eff.Value = manaRestoreValues[rank]
		eff.StatsAffected.Mana = eff.Value

	case domain.EffectStatBoost:
		eff.Instant = false
		eff.Duration = statBoostDuration(r)
		amount := rank + 1
		switch choice(s, coreAttributes) {
		case "strength":
			eff.StatsAffected.Strength = amount
		case "dexterity":
			eff.StatsAffected.Dexterity = amount
		case "constitution":
			eff.StatsAffected.Constitution = amount
		case "intelligence":
			eff.StatsAffected.Intelligence = amount
		case "wisdom":
			eff.StatsAffected.Wisdom = amount
		case "charisma":
			eff.StatsAffected.Charisma = amount
		}

	case domain.EffectSpeedBoost:
		eff.Instant = false
		eff.Duration = speedBoostDuration(r)
		eff.Value = speedBoostValues[rank]
	}

	return eff
}

func statBoostDuration(r domain.Rarity) int {
	switch r {
	case domain.RarityCommon, domain.RarityUncommon:
		return 300
	case domain.RarityRare:
		return 600
	case domain.RarityEpic:
		return 900
	default:
		return 1200
	}
}

func speedBoostDuration(r domain.Rarity) int {
	switch r {
	case domain.RarityCommon, domain.RarityUncommon:
		return 180
	case domain.RarityRare:
		return 300
	default:
		return 420
	}
}

// healDescriptions vary by tier; the other kinds use one line each.
var healDescriptions = [5]string{
	"Restores a modest amount of health instantly.",
	"A potent brew that restores more health.",
	"A strong restorative for grievous wounds.",
	"An elite draught favored by champions.",
	"A mythical concoction that mends any injury.",
}

// ConsumableDescription returns the flavor text for an effect kind and tier.
func ConsumableDescription(kind string, r domain.Rarity) string {
	switch kind {
	case domain.EffectHeal:
		return healDescriptions[r.Rank()]
	case domain.EffectManaRestore:
		return "Replenishes a portion of mana instantly."
	case domain.EffectStatBoost:
		return "Temporarily enhances attributes."
	case domain.EffectSpeedBoost:
		return "Increases movement speed for a short time."
	default:
		return ""
	}
}
