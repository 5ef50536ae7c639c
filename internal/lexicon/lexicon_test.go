package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Every weapon core must be represented in the token table under its own
// type, or name validation would reject names the generator itself produced.
func TestWeaponCoresCoveredByTokens(t *testing.T) {
	for _, core := range WeaponCores {
		tokens, ok := WeaponTypeTokens[core.Type]
		if !ok {
			t.Errorf("weapon type %q has no token entry", core.Type)
			continue
		}
		assert.Contains(t, tokens, strings.ToLower(core.Core),
			"core %q missing from tokens of type %q", core.Core, core.Type)
	}
}

func TestWeaponTokensFlat(t *testing.T) {
	tokens := WeaponTokens()
	assert.NotEmpty(t, tokens)

	seen := make(map[string]struct{})
	for _, tok := range tokens {
		assert.Equal(t, strings.ToLower(tok), tok, "tokens must be lowercase")
		if _, dup := seen[tok]; dup {
			t.Errorf("duplicate token %q", tok)
		}
		seen[tok] = struct{}{}
	}
}

func TestArmorCoresCoveredByTokens(t *testing.T) {
	for _, core := range ArmorCores {
		low := strings.ToLower(core)
		found := false
		for _, tok := range ArmorTokens {
			if strings.Contains(low, tok) {
				found = true
				break
			}
		}
		assert.True(t, found, "armor core %q matches no armor token", core)
	}
}

func TestAccessoryCoreTypesMatchCores(t *testing.T) {
	for _, core := range AccessoryCores {
		assert.Equal(t, strings.ToLower(core.Core), core.Type,
			"accessory type must equal its core lowercased")
	}
}

func TestConsumableTemplatesCarryKeyword(t *testing.T) {
	validKinds := map[string]struct{}{
		domain.EffectHeal:        {},
		domain.EffectManaRestore: {},
		domain.EffectStatBoost:   {},
		domain.EffectSpeedBoost:  {},
	}

	for _, tmpl := range ConsumableTemplates {
		low := strings.ToLower(tmpl.Name)
		found := false
		for _, kw := range ConsumableKeywords {
			if strings.Contains(low, kw) {
				found = true
				break
			}
		}
		assert.True(t, found, "template %q carries no consumable keyword", tmpl.Name)

		_, ok := validKinds[tmpl.Kind]
		assert.True(t, ok, "template %q has unknown effect kind %q", tmpl.Name, tmpl.Kind)
	}
}

func TestMaterialTokensLowercaseCores(t *testing.T) {
	tokens := MaterialTokens()
	assert.Len(t, tokens, len(MaterialCores))
	for i, core := range MaterialCores {
		assert.Equal(t, strings.ToLower(core), tokens[i])
	}
}

// Craft pool entries are referenced by id in recipes, so they must already
// be in canonical slug form.
func TestCraftPoolEntriesAreSlugs(t *testing.T) {
	for _, id := range CraftPool {
		assert.Regexp(t, `^[a-z0-9]+(_[a-z0-9]+)*$`, id)
	}
	assert.Contains(t, CraftPool, PureWaterID)
}

func TestShopsForRouting(t *testing.T) {
	gearTypes := []string{
		domain.TypeWeapon, domain.TypeArmor, domain.TypeAccessory, domain.TypeConsumable,
	}

	known := make(map[string]struct{}, len(Shops))
	for _, shop := range Shops {
		known[shop] = struct{}{}
	}

	for _, itemType := range gearTypes {
		for _, rarity := range domain.Rarities {
			shops := ShopsFor(itemType, rarity)
			assert.NotEmpty(t, shops, "%s/%s must route somewhere", itemType, rarity)
			for _, shop := range shops {
				_, ok := known[shop]
				assert.True(t, ok, "%s/%s routed to unknown shop %q", itemType, rarity, shop)
			}
		}
	}
}

// Rare and above always reach the rare goods vendor for gear categories.
func TestShopsForHighTierRouting(t *testing.T) {
	for _, rarity := range []domain.Rarity{domain.RarityRare, domain.RarityEpic, domain.RarityLegendary} {
		for _, itemType := range []string{domain.TypeWeapon, domain.TypeArmor, domain.TypeAccessory, domain.TypeConsumable} {
			assert.Contains(t, ShopsFor(itemType, rarity), ShopRareGoods,
				"%s/%s should reach rare goods", itemType, rarity)
		}
	}
}

func TestSourcePoolsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, TerritoryPool)
	assert.NotEmpty(t, Dungeons)
	assert.NotEmpty(t, MaterialShops)
	assert.NotEmpty(t, MaterialDescriptions)
}
