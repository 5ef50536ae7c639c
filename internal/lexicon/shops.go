package lexicon

import "github.com/osse101/ItemForge_Go/internal/domain"

// Shop identifiers
const (
	ShopBlacksmith      = "blacksmith"
	ShopGeneralStore    = "general_store"
	ShopMagicShop       = "magic_shop"
	ShopAlchemist       = "alchemist"
	ShopRareGoods       = "rare_goods"
	ShopHuntersGuild    = "hunters_guild"
	ShopDungeonMerchant = "dungeon_merchant"
)

// Shops lists every known shop identifier.
var Shops = []string{
	ShopBlacksmith, ShopGeneralStore, ShopMagicShop, ShopAlchemist,
	ShopRareGoods, ShopHuntersGuild, ShopDungeonMerchant,
}

// ShopsFor returns the fixed shop routing for an item type and rarity band.
// Common and uncommon items go to everyday shops; rare and above move to
// specialty vendors.
func ShopsFor(itemType string, rarity domain.Rarity) []string {
	lowTier := rarity == domain.RarityCommon || rarity == domain.RarityUncommon

	switch itemType {
	case domain.TypeWeapon:
		if lowTier {
			return []string{ShopBlacksmith, ShopGeneralStore}
		}
		return []string{ShopBlacksmith, ShopRareGoods}
	case domain.TypeArmor:
		if lowTier {
			return []string{ShopGeneralStore, ShopBlacksmith}
		}
		return []string{ShopBlacksmith, ShopRareGoods}
	case domain.TypeAccessory:
		if lowTier {
			return []string{ShopGeneralStore, ShopMagicShop}
		}
		return []string{ShopMagicShop, ShopRareGoods}
	case domain.TypeConsumable:
		if lowTier {
			return []string{ShopGeneralStore, ShopAlchemist}
		}
		return []string{ShopAlchemist, ShopRareGoods}
	default:
		return []string{ShopGeneralStore}
	}
}
