// Package lexicon holds the static vocabulary the generator draws from:
// name cores, flavor affixes, material and effect pools, and the token
// tables used to validate name/subtype consistency. Pure data, no behavior
// beyond total lookups.
package lexicon

import (
	"sort"
	"strings"
)

// Prefixes is the shared flavor prefix pool used by all gear and material names.
var Prefixes = []string{
	"Iron", "Steel", "Shadow", "Storm", "Ember", "Frost", "Moon", "Sun", "Dragon",
	"Raven", "Phoenix", "Crystal", "Obsidian", "Silver", "Golden", "Void", "Arcane",
	"Whisper", "Glacier", "Oak", "Sunsteel",
}

// Suffixes is the optional flavor suffix pool, applied to gear categories only.
var Suffixes = []string{
	" of Dawn", " of Dusk", " of Whispers", " of the Phoenix", " of the Glacier", " of Storms",
	" of Shadows", " of Radiance", " of Embers", " of Frost", " of the Dragon", " of the Raven",
	" of Clarity", " of Might", " of Swiftness", " of Focus", " of the Tide", " of Sparks",
}

// WeaponCore ties a weapon name core to the weapon_type it implies.
type WeaponCore struct {
	Core string
	Type string
}

// WeaponCores drives both weapon name generation and subtype derivation:
// the chosen core IS the weapon_type, the name never contradicts it.
var WeaponCores = []WeaponCore{
	{"Sword", "sword"}, {"Blade", "sword"}, {"Saber", "sword"}, {"Cutlass", "sword"}, {"Claymore", "sword"},
	{"Axe", "axe"}, {"Waraxe", "axe"},
	{"Mace", "mace"}, {"Hammer", "mace"}, {"Maul", "mace"},
	{"Dagger", "dagger"}, {"Dirk", "dagger"},
	{"Spear", "spear"},
	{"Halberd", "polearm"}, {"Glaive", "polearm"},
	{"Lance", "lance"},
	{"Bow", "bow"}, {"Crossbow", "crossbow"},
	{"Staff", "staff"},
	{"Scythe", "scythe"},
}

// WeaponTypeTokens maps each weapon_type to the lowercased name tokens that
// may represent it. Used for validation; must stay in sync with WeaponCores.
var WeaponTypeTokens = map[string][]string{
	"sword":    {"sword", "blade", "saber", "cutlass", "claymore"},
	"axe":      {"axe", "waraxe"},
	"mace":     {"mace", "hammer", "maul"},
	"dagger":   {"dagger", "dirk"},
	"spear":    {"spear"},
	"lance":    {"lance"},
	"polearm":  {"halberd", "glaive"},
	"bow":      {"bow"},
	"crossbow": {"crossbow"},
	"staff":    {"staff"},
	"scythe":   {"scythe"},
}

// WeaponTokens returns the flat, sorted set of all weapon name tokens.
func WeaponTokens() []string {
	seen := make(map[string]struct{})
	for _, tokens := range WeaponTypeTokens {
		for _, tok := range tokens {
			seen[tok] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// ArmorCores are the suit nouns armor names are built from. Armor is
// suit-only; there is no per-piece subtype.
var ArmorCores = []string{
	"Armor", "Mail", "Plate Armor", "Scale Armor", "Brigandine",
	"Leather Armor", "Chainmail Armor", "Dragonscale Armor", "Battle Armor", "War Armor",
}

// ArmorTokens are the lowercased tokens an armor name must contain.
var ArmorTokens = []string{
	"armor", "mail", "brigandine", "dragonscale", "war armor", "plate armor", "scale armor", "chainmail",
}

// AccessoryCore ties an accessory name core to the accessory_type it implies.
type AccessoryCore struct {
	Core string
	Type string
}

// AccessoryCores drives accessory name generation and subtype derivation.
// Each type token equals its core lowercased.
var AccessoryCores = []AccessoryCore{
	{"Ring", "ring"}, {"Amulet", "amulet"}, {"Charm", "charm"}, {"Band", "band"},
	{"Brooch", "brooch"}, {"Talisman", "talisman"}, {"Circlet", "circlet"},
	{"Pendant", "pendant"}, {"Bracelet", "bracelet"}, {"Anklet", "anklet"}, {"Sash", "sash"},
}

// ConsumableTemplate ties a fixed consumable base name to its effect kind.
// The consumable_type stays "potion" regardless of kind.
type ConsumableTemplate struct {
	Name string
	Kind string
}

var ConsumableTemplates = []ConsumableTemplate{
	{"Health Potion", "heal"},
	{"Greater Health Potion", "heal"},
	{"Mana Potion", "mana_restore"},
	{"Elixir of Strength", "stat_boost"},
	{"Elixir of Dexterity", "stat_boost"},
	{"Elixir of Constitution", "stat_boost"},
	{"Elixir of Intelligence", "stat_boost"},
	{"Elixir of Wisdom", "stat_boost"},
	{"Elixir of Charisma", "stat_boost"},
	{"Potion of Swiftness", "speed_boost"},
}

// ConsumableKeywords are the tokens a consumable name must contain.
var ConsumableKeywords = []string{"potion", "elixir", "draught", "scroll", "tonic"}

// MaterialTypes is the closed set of material subtypes, sampled
// independently of the material's name.
var MaterialTypes = []string{"metal", "wood", "gem", "stone", "cloth", "herb", "essence", "bone", "leather"}

// MaterialCores are the nouns material names are built from.
var MaterialCores = []string{
	"Ingot", "Bar", "Ore", "Shard", "Crystal", "Gem", "Thread", "Fiber", "Silk", "Heartwood", "Wood", "Plank",
	"Pelt", "Leather", "Feather", "Bone", "Scale", "Powder", "Resin", "Herb", "Blossom", "Root", "Seed", "Essence", "Core",
}

// MaterialTokens returns the lowercased material nouns used for validation.
func MaterialTokens() []string {
	out := make([]string, len(MaterialCores))
	for i, core := range MaterialCores {
		out[i] = strings.ToLower(core)
	}
	return out
}

// CraftPool is the fixed pool of material ids recipes draw from.
var CraftPool = []string{
	"iron_ingot", "steel_ingot", "leather_strip", "oak_wood", "obsidian_shard", "ember_crystal",
	"arcane_thread", "moonshade_fabric", "vitality_herb", "frost_core", "storm_essence",
	"sunsteel_ingot", "drakescale", "pure_water", "healing_herb", "luminescent_moss",
	"crystal_shard", "runed_stone", "ghost_essence", "phoenix_feather",
}

// PureWaterID is the material liquid recipes are biased toward.
const PureWaterID = "pure_water"

// SpecialEffectPool lists every special effect tag. Some tags receive
// percentage/duration parameters during generation.
var SpecialEffectPool = []string{
	"bleed_on_hit", "burn_on_hit", "freeze_on_hit", "shock_on_hit",
	"mana_leech", "life_leech", "backstab_bonus", "parry_window",
	"elemental_affinity:fire", "elemental_affinity:ice", "elemental_affinity:lightning",
	"clarity:spell_focus", "frost_aura", "fear_aura", "thorns", "regen_over_time",
	"dash_cooldown_reduction", "crit_chain", "lightning_chain",
}

// Elements are the damage elements armor rolls resistances for.
var Elements = []string{"fire", "ice", "lightning", "poison"}

// TerritoryPool lists territories that can yield materials as passive income.
var TerritoryPool = []string{
	"verdant_lands_mines", "forest_logging_camps", "tannery", "crystal_cavern", "ashmire_deep", "ember_hollows",
}

// Dungeons lists dungeons that can drop materials.
var Dungeons = []string{"ember_hollows", "ashmire_deep", "moonlit_keep", "glacier_pass"}

// MaterialShops lists shops that may stock raw materials.
var MaterialShops = []string{"blacksmith", "general_store", "alchemist", "rare_goods"}

// MaterialDescriptions is the fixed flavor text pool for materials.
var MaterialDescriptions = []string{
	"A bar of smelted stock, sturdy and ubiquitous.",
	"Highly sought for advanced recipes.",
	"Flickers with latent energy.",
	"Seasoned resource prized by artisans.",
	"Conductive material suited for runework.",
}
