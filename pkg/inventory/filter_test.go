package inventory

import "testing"

func TestFilter_DronesAlwaysExcluded(t *testing.T) {
	drone := resourceItem(TypeDrone, "")
	burster := leveledItem(TypeEmpBurster, 1)

	out := Filter([]Item{drone, burster}, FilterConfig{})
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if out[0].Metadata.RawType() != TypeEmpBurster {
		t.Fatalf("expected the burster to survive, got %q", out[0].Metadata.RawType())
	}
}

func TestFilter_RarityMatchesResourceAndMod(t *testing.T) {
	rareCapsule := resourceItem("CAPSULE", "RARE")
	rareShield := modItem("RES_SHIELD", "RARE")
	commonShield := modItem("RES_SHIELD", "COMMON")

	out := Filter([]Item{rareCapsule, rareShield, commonShield}, FilterConfig{Rarity: "RARE"})
	if len(out) != 2 {
		t.Fatalf("expected 2 RARE items, got %d", len(out))
	}
}

func TestFilter_NoRarityExcludedUnderActiveFilter(t *testing.T) {
	burster := leveledItem(TypeEmpBurster, 8) // no resolvable rarity

	if out := Filter([]Item{burster}, FilterConfig{Rarity: "RARE"}); len(out) != 0 {
		t.Fatalf("expected rarity filter to drop the unrated item, got %d", len(out))
	}
	if out := Filter([]Item{burster}, FilterConfig{}); len(out) != 1 {
		t.Fatalf("expected the unrated item to pass without a filter, got %d", len(out))
	}
}

func TestScanOptions(t *testing.T) {
	items := []Item{
		resourceItem("CAPSULE", "RARE"),
		modItem("RES_SHIELD", "VERY_RARE"),
		leveledItem(TypeResonator, 6),
		resourceItem(TypeDrone, "VERY_RARE"),
	}

	opts := ScanOptions(items)

	for _, category := range []string{CategoryCapsules, CategoryMods, CategoryResonators} {
		if _, ok := opts.Categories[category]; !ok {
			t.Fatalf("expected category %q in options, got %v", category, opts.Categories)
		}
	}
	if _, ok := opts.Categories[TypeDrone]; ok {
		t.Fatal("drones must not appear in the filter options")
	}
	if len(opts.Rarities) != 2 {
		t.Fatalf("expected RARE and VERY_RARE, got %v", opts.Rarities)
	}
}
