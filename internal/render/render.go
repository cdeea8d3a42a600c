package render

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/twelve345/ingress-inventory/pkg/geo"
	"github.com/twelve345/ingress-inventory/pkg/inventory"
)

// Options controls how a grouped view is printed.
type Options struct {
	// OutputFlags selects the printed columns, one character each:
	// t title, c count, g category, r rarity, l level, k group key,
	// d distance (key groups only, requires Location).
	OutputFlags string
	Delimiter   string

	// HideCarried drops items that sit inside a capsule from the counts.
	// Groups left empty by it are not printed.
	HideCarried bool

	Location *geo.Point
	Miles    bool
}

// Preferred on-screen category order. Categories not listed here (the
// classifier's passthrough codes) come after, alphabetically.
var categoryOrder = []string{
	inventory.CategoryKeys,
	inventory.CategoryResonators,
	inventory.CategoryWeapons,
	inventory.CategoryCubes,
	inventory.CategoryMods,
	inventory.CategoryCapsules,
	inventory.CategoryPowerups,
	inventory.CategoryMedia,
}

// Categories returns the view's categories in display order.
func Categories(grouped inventory.Grouped) []string {
	rank := make(map[string]int, len(categoryOrder))
	for i, c := range categoryOrder {
		rank[c] = i + 1
	}

	out := make([]string, 0, len(grouped))
	for c := range grouped {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank[out[i]], rank[out[j]]
		if ri == 0 {
			ri = len(categoryOrder) + 1
		}
		if rj == 0 {
			rj = len(categoryOrder) + 1
		}
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

// PrintGrouped prints one line per group, with the columns and delimiter
// from opts.
func PrintGrouped(grouped inventory.Grouped, opts Options) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = " "
	}
	flags := opts.OutputFlags
	if flags == "" {
		flags = "tc"
	}

	lines := ""
	for _, category := range Categories(grouped) {
		for _, group := range grouped[category] {
			count := visibleCount(group, opts.HideCarried)
			if count == 0 {
				continue
			}

			var line string
			for _, f := range flags {
				switch f {
				case 't':
					line += group.Meta.Title + delimiter
				case 'c':
					line += strconv.Itoa(count) + delimiter
				case 'g':
					line += category + delimiter
				case 'r':
					line += group.Meta.Rarity + delimiter
				case 'l':
					line += strconv.Itoa(group.Meta.Level) + delimiter
				case 'k':
					line += group.Key + delimiter
				case 'd':
					line += distanceColumn(group, opts) + delimiter
				default:
					log.Fatal("Invalid print flag")
				}
			}
			line = strings.TrimSuffix(line, delimiter)
			if len(line) > 0 {
				lines += line + "\n"
			}
		}
	}

	lines = strings.TrimSuffix(lines, "\n")

	if len(lines) > 0 {
		fmt.Println(lines)
	}
}

func visibleCount(group *inventory.Group, hideCarried bool) int {
	if !hideCarried {
		return len(group.Items)
	}
	count := 0
	for i := range group.Items {
		if group.Items[i].Provenance == nil {
			count++
		}
	}
	return count
}

func distanceColumn(group *inventory.Group, opts Options) string {
	if opts.Location == nil {
		return "-"
	}
	coupler := firstCoupler(group)
	if coupler == nil {
		return "-"
	}
	p := geo.DecodeLocation(coupler.PortalLocation)
	if p == nil {
		return "-"
	}

	d := geo.HaversineKm(opts.Location.Lat, opts.Location.Lng, p.Lat, p.Lng)
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return "-"
	}
	if opts.Miles {
		return fmt.Sprintf("%.1fmi", geo.KmToMiles(d))
	}
	return fmt.Sprintf("%.1fkm", d)
}

func firstCoupler(group *inventory.Group) *inventory.PortalCoupler {
	for i := range group.Items {
		if c := group.Items[i].Metadata.PortalCoupler; c != nil {
			return c
		}
	}
	return nil
}
