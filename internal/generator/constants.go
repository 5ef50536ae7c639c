package generator

// Name generation retry budgets
const (
	// MaxNameRetries bounds numeric-disambiguator redraws after a collision.
	MaxNameRetries = 20
	// MaxVocabRetries bounds full name redraws when an armor name lacks a
	// suit token.
	MaxVocabRetries = 5
	// DisambiguatorMax is the upper bound of the numeric suffix appended to
	// colliding names.
	DisambiguatorMax = 999
)

// Probabilities
const (
	// FlavorSuffixChance is the chance a gear name gains a flavor suffix.
	FlavorSuffixChance = 0.5
	// MaybeBonusChance is the chance a secondary stat actually rolls.
	MaybeBonusChance = 0.5
	// SpecialEffectChance is the baseline chance of any special effect;
	// rare and above always get one.
	SpecialEffectChance = 0.33
	// LiquidBiasChance is the chance a non-water pick in a liquid recipe is
	// rebiased to pure water.
	LiquidBiasChance = 0.33
	// DungeonDropChance is the chance a material gains a dungeon source.
	DungeonDropChance = 0.33
)

// Weapon stat bounds
const (
	WeaponBaseAttackMin = 10
	WeaponBaseAttackMax = 20
	WeaponAttackJitter  = 3
	WeaponDurabilityMin = 70
	WeaponDurabilityMax = 180
	WeaponMatsMin       = 2
	WeaponMatsMax       = 4
)

// Armor stat bounds (suits are beefier than single pieces would be)
const (
	ArmorBaseDefenseMin = 12
	ArmorBaseDefenseMax = 20
	ArmorDefenseJitter  = 3
	ArmorClassBonusCap  = 3
	ArmorDurabilityMin  = 110
	ArmorDurabilityMax  = 190
	ArmorMatsMin        = 3
	ArmorMatsMax        = 5
)

// Accessory stat bounds
const (
	AccessoryDurabilityMin = 40
	AccessoryDurabilityMax = 120
	AccessoryMatsMin       = 2
	AccessoryMatsMax       = 3
)

// Consumable bounds
const (
	ConsumableMatsMin   = 2
	ConsumableMatsMax   = 3
	ConsumableStackLow  = 99
	ConsumableStackHigh = 10
)

// Material bounds
const (
	MaterialStackSize   = 999
	MaterialRateMin     = 1.5
	MaterialRateMax     = 4.5
	MaterialDropRateMin = 5.0
	MaterialDropRateMax = 18.0
)

// Critical damage formula: base percentage plus ten points per multiplier.
const (
	CritDamageBase    = 120
	CritDamagePerMult = 10
)
