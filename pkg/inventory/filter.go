package inventory

// FilterConfig selects which expanded items take part in grouping.
// A zero value keeps everything except drones.
type FilterConfig struct {
	// Rarity, when non-empty, keeps only items whose resolved rarity is
	// an exact match. Items with no resolvable rarity are dropped while
	// the filter is active.
	Rarity string
}

// Keep reports whether an item survives the filter. Drones are excluded
// unconditionally; hiding items carried inside a capsule is a rendering
// concern (driven by Provenance), not handled here.
func Keep(it *Item, cfg FilterConfig) bool {
	if it.Metadata.RawType() == TypeDrone {
		return false
	}
	if cfg.Rarity != "" && it.Metadata.Rarity() != cfg.Rarity {
		return false
	}
	return true
}

// Filter returns the expanded items that pass the config's predicates,
// preserving input order.
func Filter(items []Item, cfg FilterConfig) []Item {
	var out []Item
	for i := range items {
		if Keep(&items[i], cfg) {
			out = append(out, items[i])
		}
	}
	return out
}

// Options lists the filterable dimensions present in an expanded,
// pre-filter item set: the display categories and the rarities that
// actually occur. Drones are left out entirely.
type Options struct {
	Categories map[string]struct{}
	Rarities   map[string]struct{}
}

// ScanOptions computes the filter options for a set of expanded items.
func ScanOptions(items []Item) Options {
	opts := Options{
		Categories: make(map[string]struct{}),
		Rarities:   make(map[string]struct{}),
	}
	for i := range items {
		rawType := items[i].Metadata.RawType()
		if rawType == TypeDrone {
			continue
		}
		opts.Categories[Classify(rawType)] = struct{}{}
		if rarity := items[i].Metadata.Rarity(); rarity != "" {
			opts.Rarities[rarity] = struct{}{}
		}
	}
	return opts
}
