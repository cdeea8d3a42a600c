package inventory

// GroupMeta is a snapshot of display data for one group, captured from
// the first item inserted and never recomputed. Later members of the
// same group can disagree with it; the first arrival wins.
type GroupMeta struct {
	Category string
	Title    string

	// Category-specific fields; zero when not applicable.
	Level      int
	WeaponType string
	CubeType   string
	ModType    string
	Rarity     string
}

// Group is one bucket of visually-identical items.
type Group struct {
	Key   string
	Meta  GroupMeta
	Items []Item
}

// Grouped maps a display category to its groups in first-seen order.
type Grouped map[string][]*Group

// GroupItems buckets filtered items by display category and group key.
// The group key is the item title alone, except under Weapons, Cubes and
// Mods where the raw resource type is appended to keep visually-similar
// groups apart (two mods both titled "VR", for example).
func GroupItems(items []Item) Grouped {
	grouped := make(Grouped)
	index := make(map[string]map[string]*Group)

	for i := range items {
		it := &items[i]
		rawType := it.Metadata.RawType()
		category := Classify(rawType)
		title := Title(it)

		key := title
		switch category {
		case CategoryWeapons, CategoryCubes, CategoryMods:
			key = title + "|" + rawType
		}

		byKey, ok := index[category]
		if !ok {
			byKey = make(map[string]*Group)
			index[category] = byKey
		}

		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key, Meta: snapshotMeta(it, category, title)}
			byKey[key] = g
			grouped[category] = append(grouped[category], g)
		}
		g.Items = append(g.Items, *it)
	}

	return grouped
}

func snapshotMeta(it *Item, category, title string) GroupMeta {
	meta := GroupMeta{Category: category, Title: title}
	m := &it.Metadata

	switch category {
	case CategoryWeapons:
		meta.WeaponType = m.RawType()
		if m.Leveled != nil {
			meta.Level = m.Leveled.Level
		}
	case CategoryCubes:
		meta.CubeType = m.RawType()
		if m.Leveled != nil {
			meta.Level = m.Leveled.Level
		}
	case CategoryResonators:
		if m.Leveled != nil {
			meta.Level = m.Leveled.Level
		}
	case CategoryMods:
		if m.Mod != nil {
			meta.ModType = m.Mod.ResourceType
			meta.Rarity = m.Mod.Rarity
		}
	}

	return meta
}
