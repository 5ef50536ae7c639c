package generator

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/lexicon"
)

func TestWeaponNameDerivesSubtype(t *testing.T) {
	s := NewSession(1)

	for i := 0; i < 200; i++ {
		name, weaponType, err := s.weaponName()
		require.NoError(t, err)

		tokens, ok := lexicon.WeaponTypeTokens[weaponType]
		require.True(t, ok, "unknown weapon type %q from name %q", weaponType, name)

		low := strings.ToLower(name)
		found := false
		for _, tok := range tokens {
			if strings.Contains(low, tok) {
				found = true
				break
			}
		}
		assert.True(t, found, "name %q carries no token of its type %q", name, weaponType)
	}
}

func TestNamesUniqueWithinSession(t *testing.T) {
	s := NewSession(7)

	seen := make(map[string]struct{})
	record := func(name string) {
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate name issued: %q", name)
		}
		seen[name] = struct{}{}
	}

	for i := 0; i < 300; i++ {
		name, _, err := s.weaponName()
		require.NoError(t, err)
		record(name)
	}
	// Consumables draw from only ten templates, so collisions are constant
	// and the numeric disambiguator does all the work.
	for i := 0; i < 300; i++ {
		name, _, err := s.consumableName()
		require.NoError(t, err)
		record(name)
	}
}

func TestUniqueNameExhaustion(t *testing.T) {
	s := NewSession(3)

	// Occupy the base name and the entire disambiguator space so every
	// retry collides.
	base := "Health Potion"
	s.usedNames[base] = struct{}{}
	for n := 0; n <= DisambiguatorMax; n++ {
		s.usedNames[fmt.Sprintf("%s %d", base, n)] = struct{}{}
	}

	_, err := s.uniqueName(base, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNameExhausted))
}

func TestDisambiguatedNamesStillValidate(t *testing.T) {
	name := "Iron Sword 417"
	assert.NoError(t, ValidateName(domain.TypeWeapon, name, "sword"))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		itemType string
		itemName string
		subtype  string
		wantErr  bool
	}{
		{"weapon with matching core", domain.TypeWeapon, "Shadow Claymore of Dawn", "sword", false},
		{"weapon with wrong core", domain.TypeWeapon, "Shadow Bow", "sword", true},
		{"weapon with unknown type", domain.TypeWeapon, "Shadow Blade", "club", true},
		{"armor with suit token", domain.TypeArmor, "Frost Dragonscale Armor", domain.ArmorTypeSuit, false},
		{"armor without suit token", domain.TypeArmor, "Frost Cloak", domain.ArmorTypeSuit, true},
		{"accessory core equals subtype", domain.TypeAccessory, "Moon Amulet of Focus", "amulet", false},
		{"accessory mismatched subtype", domain.TypeAccessory, "Moon Amulet", "ring", true},
		{"consumable with keyword", domain.TypeConsumable, "Greater Health Potion", domain.ConsumableTypePotion, false},
		{"consumable without keyword", domain.TypeConsumable, "Mystery Brew", domain.ConsumableTypePotion, true},
		{"material with noun", domain.TypeCraftingMaterial, "Sunsteel Ingot", "metal", false},
		{"material without noun", domain.TypeCraftingMaterial, "Sunsteel Chunk", "metal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.itemType, tt.itemName, tt.subtype)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrNameVocabularyMismatch))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumableNameMapsToKind(t *testing.T) {
	kinds := map[string]string{}
	for _, tmpl := range lexicon.ConsumableTemplates {
		kinds[tmpl.Name] = tmpl.Kind
	}

	s := NewSession(11)
	for i := 0; i < 100; i++ {
		name, kind, err := s.consumableName()
		require.NoError(t, err)

		// Strip a numeric disambiguator if present.
		base := name
		if idx := strings.LastIndex(name, " "); idx > 0 {
			if _, ok := kinds[name[:idx]]; ok && !strings.ContainsAny(name[idx+1:], "abcdefghijklmnopqrstuvwxyz") {
				base = name[:idx]
			}
		}
		want, ok := kinds[base]
		require.True(t, ok, "name %q maps to no template", name)
		assert.Equal(t, want, kind)
	}
}
