package domain

// CraftingBundle describes how an item is produced: a recipe id plus the
// required material quantities keyed by material id.
type CraftingBundle struct {
	RecipeID  string         `json:"recipe_id"`
	Materials map[string]int `json:"materials"`
}

// WeaponStats is the numeric block attached to weapons.
type WeaponStats struct {
	Attack            int `json:"attack"`
	StrengthBonus     int `json:"strength_bonus"`
	DexterityBonus    int `json:"dexterity_bonus"`
	ConstitutionBonus int `json:"constitution_bonus"`
	IntelligenceBonus int `json:"intelligence_bonus"`
	WisdomBonus       int `json:"wisdom_bonus"`
	CharismaBonus     int `json:"charisma_bonus"`
	CriticalChance    int `json:"critical_chance"`
	CriticalDamage    int `json:"critical_damage"`
}

// WeaponItem is a complete weapon record. WeaponType is derived from the
// name core chosen during generation; the name is the source of truth.
type WeaponItem struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	WeaponType       string         `json:"weapon_type"`
	Rarity           Rarity         `json:"rarity"`
	LevelRequirement int            `json:"level_requirement"`
	Stats            WeaponStats    `json:"stats"`
	SpecialEffects   []string       `json:"special_effects"`
	Value            int            `json:"value"`
	Durability       int            `json:"durability"`
	Crafting         CraftingBundle `json:"crafting"`
	ShopAvailability []string       `json:"shop_availability"`
	Image            string         `json:"image"`
}

// ArmorStats is the numeric block attached to armor suits.
type ArmorStats struct {
	Defense             int            `json:"defense"`
	ArmorClassBonus     int            `json:"armor_class_bonus"`
	StrengthBonus       int            `json:"strength_bonus"`
	DexterityBonus      int            `json:"dexterity_bonus"`
	ConstitutionBonus   int            `json:"constitution_bonus"`
	IntelligenceBonus   int            `json:"intelligence_bonus"`
	WisdomBonus         int            `json:"wisdom_bonus"`
	CharismaBonus       int            `json:"charisma_bonus"`
	ElementalResistance map[string]int `json:"elemental_resistance"`
}

// ArmorItem is a complete armor record. ArmorType is always "suit".
type ArmorItem struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	ArmorType        string         `json:"armor_type"`
	Rarity           Rarity         `json:"rarity"`
	LevelRequirement int            `json:"level_requirement"`
	Stats            ArmorStats     `json:"stats"`
	SpecialEffects   []string       `json:"special_effects"`
	Value            int            `json:"value"`
	Durability       int            `json:"durability"`
	Crafting         CraftingBundle `json:"crafting"`
	ShopAvailability []string       `json:"shop_availability"`
	Image            string         `json:"image"`
}

// AccessoryStats is the numeric block attached to accessories.
type AccessoryStats struct {
	StrengthBonus      int `json:"strength_bonus"`
	DexterityBonus     int `json:"dexterity_bonus"`
	ConstitutionBonus  int `json:"constitution_bonus"`
	IntelligenceBonus  int `json:"intelligence_bonus"`
	WisdomBonus        int `json:"wisdom_bonus"`
	CharismaBonus      int `json:"charisma_bonus"`
	ManaRegeneration   int `json:"mana_regeneration"`
	HealthRegeneration int `json:"health_regeneration"`
	ExperienceBonus    int `json:"experience_bonus"`
}

// AccessoryItem is a complete accessory record. AccessoryType is derived
// from the chosen name core, same as weapons.
type AccessoryItem struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	AccessoryType    string         `json:"accessory_type"`
	Rarity           Rarity         `json:"rarity"`
	LevelRequirement int            `json:"level_requirement"`
	Stats            AccessoryStats `json:"stats"`
	SpecialEffects   []string       `json:"special_effects"`
	Value            int            `json:"value"`
	Durability       int            `json:"durability"`
	Crafting         CraftingBundle `json:"crafting"`
	ShopAvailability []string       `json:"shop_availability"`
	Image            string         `json:"image"`
}

// EffectStats is the fixed attribute breakdown of a consumable effect.
// Every key is always present; at most two are non-zero depending on kind.
type EffectStats struct {
	Health       int `json:"health"`
	Mana         int `json:"mana"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// ConsumableEffect describes what a consumable does when used.
type ConsumableEffect struct {
	Type          string      `json:"type"`
	Value         int         `json:"value"`
	Duration      int         `json:"duration"`
	Instant       bool        `json:"instant"`
	StatsAffected EffectStats `json:"stats_affected"`
}

// ConsumableItem is a complete consumable record.
type ConsumableItem struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Type             string           `json:"type"`
	ConsumableType   string           `json:"consumable_type"`
	Rarity           Rarity           `json:"rarity"`
	Effect           ConsumableEffect `json:"effect"`
	StackSize        int              `json:"stack_size"`
	Value            int              `json:"value"`
	Crafting         CraftingBundle   `json:"crafting"`
	ShopAvailability []string         `json:"shop_availability"`
	Description      string           `json:"description"`
	Image            string           `json:"image"`
}

// MaterialSource is one acquisition channel for a crafting material.
type MaterialSource struct {
	Type        string  `json:"type"`
	SourceID    string  `json:"source_id"`
	RatePerHour float64 `json:"rate_per_hour"`
	DropRate    float64 `json:"drop_rate"`
}

// MaterialItem is a complete crafting material record. Materials carry
// acquisition sources instead of crafting and shop fields.
type MaterialItem struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	MaterialType string           `json:"material_type"`
	Rarity       Rarity           `json:"rarity"`
	StackSize    int              `json:"stack_size"`
	Value        int              `json:"value"`
	Sources      []MaterialSource `json:"sources"`
	Description  string           `json:"description"`
	Image        string           `json:"image"`
}

// Categories holds the five item lists plus the published rarity tables.
type Categories struct {
	Weapons           []WeaponItem       `json:"weapons"`
	Armor             []ArmorItem        `json:"armor"`
	Accessories       []AccessoryItem    `json:"accessories"`
	Consumables       []ConsumableItem   `json:"consumables"`
	Materials         []MaterialItem     `json:"materials"`
	RarityMultipliers map[Rarity]float64 `json:"rarity_multipliers"`
	RarityColors      map[Rarity]string  `json:"rarity_colors"`
}

// Document is the full generated catalog. It is built once per run and
// never mutated after serialization.
type Document struct {
	Version    string     `json:"version"`
	Categories Categories `json:"categories"`
}
