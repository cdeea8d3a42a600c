package inventory

import "testing"

func TestSession_OptionsComeFromPreFilterItems(t *testing.T) {
	template := modItem("RES_SHIELD", "VERY_RARE")
	raw := []Item{
		capsuleItem("CAPSULE", StackEntry{ItemGUIDs: []string{"m1"}, Example: &template}),
		resourceItem(TypeDrone, ""),
	}

	session := NewSession(raw)

	// The extracted mod shows up in the options even though a rarity
	// filter might exclude it from a particular view.
	if _, ok := session.Options.Categories[CategoryMods]; !ok {
		t.Fatalf("expected Mods in options, got %v", session.Options.Categories)
	}
	if _, ok := session.Options.Rarities["VERY_RARE"]; !ok {
		t.Fatalf("expected VERY_RARE in options, got %v", session.Options.Rarities)
	}
	if _, ok := session.Options.Categories[TypeDrone]; ok {
		t.Fatal("drones must not appear in options")
	}
}

func TestSession_ViewDoesNotMutateSession(t *testing.T) {
	raw := []Item{
		modItem("RES_SHIELD", "RARE"),
		modItem("MULTIHACK", "VERY_RARE"),
	}
	session := NewSession(raw)
	before := len(session.Expanded)

	filtered := session.View(FilterConfig{Rarity: "RARE"}, SortConfig{})
	if len(filtered[CategoryMods]) != 1 {
		t.Fatalf("expected 1 RARE mod group, got %d", len(filtered[CategoryMods]))
	}

	full := session.View(FilterConfig{}, SortConfig{})
	if len(full[CategoryMods]) != 2 {
		t.Fatalf("expected 2 mod groups on the unfiltered view, got %d", len(full[CategoryMods]))
	}
	if len(session.Expanded) != before {
		t.Fatalf("session mutated: %d items became %d", before, len(session.Expanded))
	}
}
