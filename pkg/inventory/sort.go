package inventory

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/twelve345/ingress-inventory/pkg/geo"
)

// KeySort selects how key groups are ordered.
type KeySort string

const (
	KeySortName     KeySort = "name"
	KeySortCount    KeySort = "count"
	KeySortRecent   KeySort = "recent"
	KeySortDistance KeySort = "distance"
)

// SortConfig carries the selectable parts of the sort: the key-category
// mode with its direction, and the reference location for distance mode.
type SortConfig struct {
	KeyMode    KeySort
	Descending bool

	// Location is the point distances are measured from. Nil, or a key
	// group with an undecodable portal location, makes that group's
	// distance +Inf: the comparative maximum whichever way the sort
	// runs, so a descending distance sort surfaces it first.
	Location *geo.Point
}

// Alphabetical comparisons are locale-aware.
var collator = collate.New(language.English)

// SortGroups orders the groups inside every category of the grouped view.
// Group slices are reordered in place; items and metadata are untouched.
// Every comparator ends with a stable fallback on title, then on the raw
// group key, so equal primary keys always come out in one order.
func SortGroups(grouped Grouped, cfg SortConfig) {
	for category, groups := range grouped {
		sortCategory(category, groups, cfg)
	}
}

func sortCategory(category string, groups []*Group, cfg SortConfig) {
	var cmp func(a, b *Group) int

	switch category {
	case CategoryKeys:
		cmp = keyCompare(cfg)
	case CategoryWeapons:
		cmp = weaponCompare
	case CategoryResonators:
		cmp = resonatorCompare
	case CategoryCubes:
		cmp = cubeCompare
	case CategoryMods:
		cmp = modCompare
	case CategoryPowerups:
		cmp = powerupCompare
	default:
		cmp = titleCompare
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if c := cmp(groups[i], groups[j]); c != 0 {
			return c < 0
		}
		return tieBreak(groups[i], groups[j]) < 0
	})
}

// keyCompare builds the comparator for the four selectable key modes.
// The direction flips the primary comparison only; ties still fall back
// to the stable title/key ordering.
func keyCompare(cfg SortConfig) func(a, b *Group) int {
	var primary func(a, b *Group) int

	switch cfg.KeyMode {
	case KeySortCount:
		primary = func(a, b *Group) int {
			return compareInt(len(a.Items), len(b.Items))
		}
	case KeySortRecent:
		primary = func(a, b *Group) int {
			return compareInt64(newestTimestamp(a), newestTimestamp(b))
		}
	case KeySortDistance:
		primary = func(a, b *Group) int {
			return compareFloat(groupDistanceKm(a, cfg.Location), groupDistanceKm(b, cfg.Location))
		}
	default: // KeySortName
		primary = func(a, b *Group) int {
			return collator.CompareString(a.Meta.Title, b.Meta.Title)
		}
	}

	if !cfg.Descending {
		return primary
	}
	return func(a, b *Group) int {
		return -primary(a, b)
	}
}

func weaponCompare(a, b *Group) int {
	if c := compareInt(weaponRank(a.Meta.WeaponType), weaponRank(b.Meta.WeaponType)); c != 0 {
		return c
	}
	if c := compareInt(b.Meta.Level, a.Meta.Level); c != 0 {
		return c
	}
	return collator.CompareString(a.Meta.Title, b.Meta.Title)
}

func resonatorCompare(a, b *Group) int {
	return compareInt(b.Meta.Level, a.Meta.Level)
}

func cubeCompare(a, b *Group) int {
	if c := collator.CompareString(a.Meta.CubeType, b.Meta.CubeType); c != 0 {
		return c
	}
	return compareInt(b.Meta.Level, a.Meta.Level)
}

func modCompare(a, b *Group) int {
	if c := compareInt(modRank(a.Meta.ModType), modRank(b.Meta.ModType)); c != 0 {
		return c
	}
	if c := compareInt(rarityRank(b.Meta.Rarity), rarityRank(a.Meta.Rarity)); c != 0 {
		return c
	}
	if c := collator.CompareString(a.Meta.ModType, b.Meta.ModType); c != 0 {
		return c
	}
	return collator.CompareString(a.Meta.Title, b.Meta.Title)
}

func powerupCompare(a, b *Group) int {
	if c := compareInt(len(b.Items), len(a.Items)); c != 0 {
		return c
	}
	return collator.CompareString(a.Meta.Title, b.Meta.Title)
}

func titleCompare(a, b *Group) int {
	return collator.CompareString(a.Meta.Title, b.Meta.Title)
}

func tieBreak(a, b *Group) int {
	if c := collator.CompareString(a.Meta.Title, b.Meta.Title); c != 0 {
		return c
	}
	if a.Key < b.Key {
		return -1
	}
	if a.Key > b.Key {
		return 1
	}
	return 0
}

// newestTimestamp is the most recent acquisition time in the group.
func newestTimestamp(g *Group) int64 {
	var newest int64
	for i := range g.Items {
		if g.Items[i].AcquiredAt > newest {
			newest = g.Items[i].AcquiredAt
		}
	}
	return newest
}

// groupDistanceKm measures from the reference point to the decoded portal
// location of the group's first key. Unknown locations are +Inf.
func groupDistanceKm(g *Group, from *geo.Point) float64 {
	if from == nil || len(g.Items) == 0 {
		return math.Inf(1)
	}
	coupler := g.Items[0].Metadata.PortalCoupler
	if coupler == nil {
		return math.Inf(1)
	}
	p := geo.DecodeLocation(coupler.PortalLocation)
	if p == nil {
		return math.Inf(1)
	}
	return geo.HaversineKm(from.Lat, from.Lng, p.Lat, p.Lng)
}

// Fixed rank tables. Types missing from a table sort after every ranked
// one with rank 9.

var weaponRanks = map[string]int{
	TypeEmpBurster:  1,
	TypeUltraStrike: 2,
	TypeFlipCard:    3,
}

var modRanks = map[string]int{
	"RES_SHIELD":     1,
	"HEATSINK":       2,
	"MULTIHACK":      3,
	"LINK_AMPLIFIER": 4,
	"ULTRA_LINK_AMP": 5,
	"FORCE_AMP":      6,
	"TURRET":         7,
}

var rarityRanks = map[string]int{
	"VERY_COMMON":    1,
	"COMMON":         2,
	"LESS_COMMON":    3,
	"RARE":           4,
	"VERY_RARE":      5,
	"EXTREMELY_RARE": 6,
}

func weaponRank(t string) int {
	if r, ok := weaponRanks[t]; ok {
		return r
	}
	return 9
}

func modRank(t string) int {
	if r, ok := modRanks[t]; ok {
		return r
	}
	return 9
}

func rarityRank(r string) int {
	return rarityRanks[r]
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
