package domain

// DocumentVersion is the static version stamp written into every catalog.
const DocumentVersion = "1.0"

// CategoryCount is the number of item categories in a catalog.
const CategoryCount = 5

// Item type discriminators (the `type` field of every record)
const (
	TypeWeapon           = "weapon"
	TypeArmor            = "armor"
	TypeAccessory        = "accessory"
	TypeConsumable       = "consumable"
	TypeCraftingMaterial = "crafting_material"
)

// Category folder names, used in the document layout and image paths
const (
	CategoryWeapons     = "weapons"
	CategoryArmor       = "armor"
	CategoryAccessories = "accessories"
	CategoryConsumables = "consumables"
	CategoryMaterials   = "materials"
)

// ArmorTypeSuit is the only armor subtype: catalogs contain full suits,
// never individual pieces.
const ArmorTypeSuit = "suit"

// ConsumableTypePotion is the fixed consumable subtype regardless of effect kind.
const ConsumableTypePotion = "potion"

// Consumable effect kinds
const (
	EffectHeal        = "heal"
	EffectManaRestore = "mana_restore"
	EffectStatBoost   = "stat_boost"
	EffectSpeedBoost  = "speed_boost"
)

// Material acquisition channel types
const (
	SourceTerritoryIncome = "territory_income"
	SourceShop            = "shop"
	SourceDungeonDrop     = "dungeon_drop"
)

// RecipeIDPrefix is prepended to an item id to form its crafting recipe id.
const RecipeIDPrefix = "rcp_"
