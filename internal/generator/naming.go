package generator

import (
	"fmt"
	"strings"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/lexicon"
)

// uniqueName finalizes a candidate base name and reserves it in the session.
// Gear names gain a flavor suffix half the time. Collisions append a numeric
// disambiguator to the bare base and redraw; exhausting the budget is a
// fatal generation error rather than a silently accepted duplicate.
func (s *Session) uniqueName(base string, allowFlavor bool) (string, error) {
	name := base
	if allowFlavor && s.Float() < FlavorSuffixChance {
		name += choice(s, lexicon.Suffixes)
	}

	candidate := name
	for tries := 0; ; tries++ {
		if _, taken := s.usedNames[candidate]; !taken {
			break
		}
		if tries >= MaxNameRetries {
			return "", fmt.Errorf("%w: %q after %d attempts", domain.ErrNameExhausted, base, MaxNameRetries)
		}
		candidate = fmt.Sprintf("%s %d", base, s.Int(0, DisambiguatorMax))
	}

	s.usedNames[candidate] = struct{}{}
	return candidate, nil
}

// weaponName builds a weapon name and returns the weapon_type the chosen
// core implies.
func (s *Session) weaponName() (string, string, error) {
	core := choice(s, lexicon.WeaponCores)
	base := choice(s, lexicon.Prefixes) + " " + core.Core
	name, err := s.uniqueName(base, true)
	return name, core.Type, err
}

// armorName builds a suit name from the armor core pool.
func (s *Session) armorName() (string, error) {
	base := choice(s, lexicon.Prefixes) + " " + choice(s, lexicon.ArmorCores)
	return s.uniqueName(base, true)
}

// accessoryName builds an accessory name and returns the accessory_type the
// chosen core implies.
func (s *Session) accessoryName() (string, string, error) {
	core := choice(s, lexicon.AccessoryCores)
	base := choice(s, lexicon.Prefixes) + " " + core.Core
	name, err := s.uniqueName(base, true)
	return name, core.Type, err
}

// consumableName picks a consumable template and returns its effect kind.
// Consumables take no flavor affixes, so uniqueness relies entirely on the
// numeric disambiguator.
func (s *Session) consumableName() (string, string, error) {
	tmpl := choice(s, lexicon.ConsumableTemplates)
	name, err := s.uniqueName(tmpl.Name, false)
	return name, tmpl.Kind, err
}

// materialName builds a material name. No flavor suffixes.
func (s *Session) materialName() (string, error) {
	base := choice(s, lexicon.Prefixes) + " " + choice(s, lexicon.MaterialCores)
	return s.uniqueName(base, false)
}

// ValidateName checks the name/vocabulary consistency invariant: the name
// must contain (case-insensitively) at least one token belonging to the
// declared subtype, or to the category for subtype-less categories. A nil
// return means the invariant holds.
func ValidateName(itemType, name, subtype string) error {
	var tokens []string
	switch itemType {
	case domain.TypeWeapon:
		tokens = lexicon.WeaponTypeTokens[subtype]
	case domain.TypeArmor:
		tokens = lexicon.ArmorTokens
	case domain.TypeAccessory:
		// Accessory type tokens equal their name cores lowercased.
		tokens = []string{subtype}
	case domain.TypeConsumable:
		tokens = lexicon.ConsumableKeywords
	case domain.TypeCraftingMaterial:
		tokens = lexicon.MaterialTokens()
	}

	if len(tokens) == 0 || !containsToken(name, tokens) {
		return fmt.Errorf("%w: %q (%s/%s)", domain.ErrNameVocabularyMismatch, name, itemType, subtype)
	}
	return nil
}

// containsToken reports whether name contains any token, case-insensitively.
func containsToken(name string, tokens []string) bool {
	low := strings.ToLower(name)
	for _, tok := range tokens {
		if strings.Contains(low, tok) {
			return true
		}
	}
	return false
}
