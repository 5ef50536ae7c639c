package generator

import (
	"fmt"
	"math"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/lexicon"
	"github.com/osse101/ItemForge_Go/internal/utils"
)

// imagePath builds the deterministic texture path for an item. The path is
// a generated string; nothing checks that the asset exists.
func imagePath(root, category, id string) string {
	return fmt.Sprintf("%s/%s/%s.png", root, category, id)
}

// recipeID derives the crafting recipe id for an item id.
func recipeID(id string) string {
	return domain.RecipeIDPrefix + id
}

// buildWeapon assembles one weapon record. Locals are computed in draw
// order before assembly so the random stream stays stable.
func (s *Session) buildWeapon(opts Options) (domain.WeaponItem, error) {
	rarity := s.PickRarity()
	name, weaponType, err := s.weaponName()
	if err != nil {
		return domain.WeaponItem{}, err
	}
	id := utils.ToID(name)

	baseAttack := s.Int(WeaponBaseAttackMin, WeaponBaseAttackMax)
	attack := int(math.Round(float64(baseAttack)*rarity.Multiplier())) + s.Int(0, WeaponAttackJitter)
	level := s.LevelForRarity(rarity)
	strength := StatBonus(rarity)
	dexterity := StatBonus(rarity)
	constitution := s.MaybeBonus(rarity)
	critChance := s.CritChance(rarity)
	effects := s.MaybeEffects(rarity)
	value := s.GoldValue(rarity, opts.Tuning.Weapons.ValueMin, opts.Tuning.Weapons.ValueMax)
	durability := s.Int(WeaponDurabilityMin, WeaponDurabilityMax)
	mats := s.CraftMats(rarity, WeaponMatsMin, WeaponMatsMax, false)

	item := domain.WeaponItem{
		ID:               id,
		Name:             name,
		Type:             domain.TypeWeapon,
		WeaponType:       weaponType,
		Rarity:           rarity,
		LevelRequirement: level,
		Stats: domain.WeaponStats{
			Attack:            attack,
			StrengthBonus:     strength,
			DexterityBonus:    dexterity,
			ConstitutionBonus: constitution,
			CriticalChance:    critChance,
			CriticalDamage:    CritDamage(rarity),
		},
		SpecialEffects:   effects,
		Value:            value,
		Durability:       durability,
		Crafting:         domain.CraftingBundle{RecipeID: recipeID(id), Materials: mats},
		ShopAvailability: lexicon.ShopsFor(domain.TypeWeapon, rarity),
		Image:            imagePath(opts.TexturesRoot, domain.CategoryWeapons, id),
	}

	if err := ValidateName(domain.TypeWeapon, name, weaponType); err != nil {
		return domain.WeaponItem{}, err
	}
	return item, nil
}

// buildArmor assembles one armor suit. A name without a suit token is
// redrawn a bounded number of times; failing validation after that is a
// lexicon inconsistency and aborts the run.
func (s *Session) buildArmor(opts Options) (domain.ArmorItem, error) {
	rarity := s.PickRarity()
	name, err := s.armorName()
	if err != nil {
		return domain.ArmorItem{}, err
	}
	for tries := 0; tries < MaxVocabRetries && ValidateName(domain.TypeArmor, name, domain.ArmorTypeSuit) != nil; tries++ {
		if name, err = s.armorName(); err != nil {
			return domain.ArmorItem{}, err
		}
	}
	id := utils.ToID(name)

	baseDefense := s.Int(ArmorBaseDefenseMin, ArmorBaseDefenseMax)
	defense := int(math.Round(float64(baseDefense)*rarity.Multiplier())) + s.Int(0, ArmorDefenseJitter)
	resistances := s.ElementalResistances(rarity)
	level := s.LevelForRarity(rarity)
	strength := s.MaybeBonus(rarity)
	dexterity := s.MaybeBonus(rarity)
	constitution := s.MaybeBonus(rarity)
	effects := s.MaybeEffects(rarity)
	value := s.GoldValue(rarity, opts.Tuning.Armor.ValueMin, opts.Tuning.Armor.ValueMax)
	durability := s.Int(ArmorDurabilityMin, ArmorDurabilityMax)
	mats := s.CraftMats(rarity, ArmorMatsMin, ArmorMatsMax, false)

	armorClass := int(rarity.Multiplier())
	if armorClass > ArmorClassBonusCap {
		armorClass = ArmorClassBonusCap
	}

	item := domain.ArmorItem{
		ID:               id,
		Name:             name,
		Type:             domain.TypeArmor,
		ArmorType:        domain.ArmorTypeSuit,
		Rarity:           rarity,
		LevelRequirement: level,
		Stats: domain.ArmorStats{
			Defense:             defense,
			ArmorClassBonus:     armorClass,
			StrengthBonus:       strength,
			DexterityBonus:      dexterity,
			ConstitutionBonus:   constitution,
			ElementalResistance: resistances,
		},
		SpecialEffects:   effects,
		Value:            value,
		Durability:       durability,
		Crafting:         domain.CraftingBundle{RecipeID: recipeID(id), Materials: mats},
		ShopAvailability: lexicon.ShopsFor(domain.TypeArmor, rarity),
		Image:            imagePath(opts.TexturesRoot, domain.CategoryArmor, id),
	}

	if err := ValidateName(domain.TypeArmor, name, domain.ArmorTypeSuit); err != nil {
		return domain.ArmorItem{}, err
	}
	return item, nil
}

// buildAccessory assembles one accessory record.
func (s *Session) buildAccessory(opts Options) (domain.AccessoryItem, error) {
	rarity := s.PickRarity()
	name, accessoryType, err := s.accessoryName()
	if err != nil {
		return domain.AccessoryItem{}, err
	}
	id := utils.ToID(name)

	level := s.LevelForRarity(rarity)
	strength := s.MaybeBonus(rarity)
	dexterity := s.MaybeBonus(rarity)
	constitution := s.MaybeBonus(rarity)
	intelligence := s.MaybeBonus(rarity)
	wisdom := s.MaybeBonus(rarity)
	charisma := s.MaybeBonus(rarity)
	manaRegen := int(math.Round(rarity.Multiplier()))
	healthRegen := manaRegen - 1
	if healthRegen < 0 {
		healthRegen = 0
	}
	effects := s.MaybeEffects(rarity)
	value := s.GoldValue(rarity, opts.Tuning.Accessories.ValueMin, opts.Tuning.Accessories.ValueMax)
	durability := s.Int(AccessoryDurabilityMin, AccessoryDurabilityMax)
	mats := s.CraftMats(rarity, AccessoryMatsMin, AccessoryMatsMax, false)

	item := domain.AccessoryItem{
		ID:               id,
		Name:             name,
		Type:             domain.TypeAccessory,
		AccessoryType:    accessoryType,
		Rarity:           rarity,
		LevelRequirement: level,
		Stats: domain.AccessoryStats{
			StrengthBonus:      strength,
			DexterityBonus:     dexterity,
			ConstitutionBonus:  constitution,
			IntelligenceBonus:  intelligence,
			WisdomBonus:        wisdom,
			CharismaBonus:      charisma,
			ManaRegeneration:   manaRegen,
			HealthRegeneration: healthRegen,
			ExperienceBonus:    ExperienceBonus(rarity),
		},
		SpecialEffects:   effects,
		Value:            value,
		Durability:       durability,
		Crafting:         domain.CraftingBundle{RecipeID: recipeID(id), Materials: mats},
		ShopAvailability: lexicon.ShopsFor(domain.TypeAccessory, rarity),
		Image:            imagePath(opts.TexturesRoot, domain.CategoryAccessories, id),
	}

	if err := ValidateName(domain.TypeAccessory, name, accessoryType); err != nil {
		return domain.AccessoryItem{}, err
	}
	return item, nil
}

// buildConsumable assembles one consumable record. The subtype is always
// "potion"; the effect kind comes from the chosen name template.
func (s *Session) buildConsumable(opts Options) (domain.ConsumableItem, error) {
	rarity := s.PickRarity()
	name, kind, err := s.consumableName()
	if err != nil {
		return domain.ConsumableItem{}, err
	}
	id := utils.ToID(name)

	effect := s.BuildEffect(kind, rarity)
	value := s.GoldValue(rarity, opts.Tuning.Consumables.ValueMin, opts.Tuning.Consumables.ValueMax)
	mats := s.CraftMats(rarity, ConsumableMatsMin, ConsumableMatsMax, true)

	stackSize := ConsumableStackHigh
	if rarity == domain.RarityCommon || rarity == domain.RarityUncommon {
		stackSize = ConsumableStackLow
	}

	item := domain.ConsumableItem{
		ID:               id,
		Name:             name,
		Type:             domain.TypeConsumable,
		ConsumableType:   domain.ConsumableTypePotion,
		Rarity:           rarity,
		Effect:           effect,
		StackSize:        stackSize,
		Value:            value,
		Crafting:         domain.CraftingBundle{RecipeID: recipeID(id), Materials: mats},
		ShopAvailability: lexicon.ShopsFor(domain.TypeConsumable, rarity),
		Description:      ConsumableDescription(kind, rarity),
		Image:            imagePath(opts.TexturesRoot, domain.CategoryConsumables, id),
	}

	if err := ValidateName(domain.TypeConsumable, name, domain.ConsumableTypePotion); err != nil {
		return domain.ConsumableItem{}, err
	}
	return item, nil
}

// buildMaterial assembles one crafting material. Materials use the flatter
// weighted rarity distribution and carry acquisition sources instead of
// crafting and shop fields.
func (s *Session) buildMaterial(opts Options) (domain.MaterialItem, error) {
	rarity := s.PickMaterialRarity()
	name, err := s.materialName()
	if err != nil {
		return domain.MaterialItem{}, err
	}
	id := utils.ToID(name)
	materialType := choice(s, lexicon.MaterialTypes)

	sources := []domain.MaterialSource{
		{
			Type:        domain.SourceTerritoryIncome,
			SourceID:    choice(s, lexicon.TerritoryPool),
			RatePerHour: roundTo2(s.FloatRange(MaterialRateMin, MaterialRateMax)),
		},
		{
			Type:     domain.SourceShop,
			SourceID: choice(s, lexicon.MaterialShops),
		},
	}
	if s.Float() < DungeonDropChance {
		sources = append(sources, domain.MaterialSource{
			Type:     domain.SourceDungeonDrop,
			SourceID: choice(s, lexicon.Dungeons),
			DropRate: roundTo2(s.FloatRange(MaterialDropRateMin, MaterialDropRateMax)),
		})
	}

	value := s.GoldValue(rarity, opts.Tuning.Materials.ValueMin, opts.Tuning.Materials.ValueMax)
	description := choice(s, lexicon.MaterialDescriptions)

	item := domain.MaterialItem{
		ID:           id,
		Name:         name,
		Type:         domain.TypeCraftingMaterial,
		MaterialType: materialType,
		Rarity:       rarity,
		StackSize:    MaterialStackSize,
		Value:        value,
		Sources:      sources,
		Description:  description,
		Image:        imagePath(opts.TexturesRoot, domain.CategoryMaterials, id),
	}

	if err := ValidateName(domain.TypeCraftingMaterial, name, materialType); err != nil {
		return domain.MaterialItem{}, err
	}
	return item, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
