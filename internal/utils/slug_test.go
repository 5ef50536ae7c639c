package utils

import (
	"testing"
)

func TestToID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Iron Sword", "iron_sword"},
		{"flavor suffix", "Shadow Blade of Dawn", "shadow_blade_of_dawn"},
		{"apostrophe removed", "Hunter's Mark", "hunters_mark"},
		{"numeric disambiguator", "Mana Potion 42", "mana_potion_42"},
		{"punctuation collapses", "Frost -- Core!!", "frost_core"},
		{"leading and trailing junk", "  **Ember Crystal**  ", "ember_crystal"},
		{"accented runes fold", "Sabré Élite", "sabre_elite"},
		{"already an id", "iron_ingot", "iron_ingot"},
		{"empty string", "", ""},
		{"only punctuation", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToID(tt.input)
			if got != tt.want {
				t.Errorf("ToID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestToIDIdempotent verifies that slugging a slug is a no-op, which keeps
// recipe ids and image paths stable when derived from ids instead of names.
func TestToIDIdempotent(t *testing.T) {
	inputs := []string{
		"Iron Sword", "Hunter's Mark", "Phoenix Staff of the Glacier", "Mana Potion 999",
	}
	for _, input := range inputs {
		once := ToID(input)
		twice := ToID(once)
		if once != twice {
			t.Errorf("ToID not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
