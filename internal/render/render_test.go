package render

import (
	"testing"

	"github.com/twelve345/ingress-inventory/internal/utils"
	"github.com/twelve345/ingress-inventory/pkg/geo"
	"github.com/twelve345/ingress-inventory/pkg/inventory"
)

func TestCategories_PreferredOrderThenAlphabetical(t *testing.T) {
	grouped := inventory.Grouped{
		"MYSTERY_ITEM":               {},
		inventory.CategoryMods:       {},
		inventory.CategoryKeys:       {},
		"AAA_UNKNOWN":                {},
		inventory.CategoryResonators: {},
	}

	got := Categories(grouped)
	want := []string{
		inventory.CategoryKeys,
		inventory.CategoryResonators,
		inventory.CategoryMods,
		"AAA_UNKNOWN",
		"MYSTERY_ITEM",
	}
	if !utils.AreSlicesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestVisibleCount_HidesCarriedItems(t *testing.T) {
	group := &inventory.Group{
		Items: []inventory.Item{
			{ID: "free"},
			{ID: "carried", Provenance: &inventory.Provenance{ContainerID: "cap", ContainerType: "CAPSULE"}},
		},
	}

	if got := visibleCount(group, false); got != 2 {
		t.Fatalf("expected 2 without hiding, got %d", got)
	}
	if got := visibleCount(group, true); got != 1 {
		t.Fatalf("expected 1 with hiding, got %d", got)
	}
}

func TestDistanceColumn(t *testing.T) {
	group := &inventory.Group{
		Items: []inventory.Item{{
			Metadata: inventory.Metadata{
				PortalCoupler: &inventory.PortalCoupler{PortalLocation: "0000000a,fffffff6"},
			},
		}},
	}

	if got := distanceColumn(group, Options{}); got != "-" {
		t.Fatalf("expected '-' without a location, got %q", got)
	}

	from := &geo.Point{Lat: 0, Lng: 0}
	if got := distanceColumn(group, Options{Location: from}); got != "0.0km" {
		t.Fatalf("expected 0.0km, got %q", got)
	}
	if got := distanceColumn(group, Options{Location: from, Miles: true}); got != "0.0mi" {
		t.Fatalf("expected 0.0mi, got %q", got)
	}

	lost := &inventory.Group{Items: []inventory.Item{{ID: "no-coupler"}}}
	if got := distanceColumn(lost, Options{Location: from}); got != "-" {
		t.Fatalf("expected '-' for a group without a coupler, got %q", got)
	}
}
