package inventory

import "fmt"

// Leveled resource types common enough that their title is just "L{n}";
// everything else leveled gets "{type} L{n}".
var plainLevelTypes = map[string]struct{}{
	TypeEmpBurster:  {},
	TypeResonator:   {},
	TypePowerCube:   {},
	TypeUltraStrike: {},
}

// Title derives the human-facing title for an item. The priority chain
// runs mod rarity abbreviation, portal key title, story-item description,
// leveled resource, generic resource specials, and finally the item id
// when nothing else resolves.
func Title(it *Item) string {
	m := &it.Metadata

	switch m.Kind() {
	case KindMod:
		return abbreviateRarity(m.Mod.Rarity)
	case KindKey:
		return m.PortalCoupler.PortalTitle
	case KindStory:
		return m.StoryItem.ShortDescription
	case KindLeveled:
		if _, ok := plainLevelTypes[m.Leveled.ResourceType]; ok {
			return fmt.Sprintf("L%d", m.Leveled.Level)
		}
		return fmt.Sprintf("%s L%d", m.Leveled.ResourceType, m.Leveled.Level)
	case KindResource:
		return resourceTitle(m)
	}

	return it.ID
}

func resourceTitle(m *Metadata) string {
	switch m.Resource.ResourceType {
	case TypeFlipCard:
		if m.FlipCard != nil {
			return m.FlipCard.FlipCardType
		}
	case TypeBoostedCube:
		return "Hyper"
	case TypePortalPowerup:
		if m.TimedPowerup != nil {
			return m.TimedPowerup.Designation
		}
	case TypePlayerPowerup:
		if m.PlayerPowerup != nil {
			return m.PlayerPowerup.PowerupEnum
		}
	}
	return m.Resource.ResourceType
}

// abbreviateRarity shortens the rarity codes shown on mod groups.
// Unknown values pass through unchanged.
func abbreviateRarity(rarity string) string {
	switch rarity {
	case "VERY_RARE":
		return "VR"
	case "RARE":
		return "R"
	case "COMMON":
		return "C"
	}
	return rarity
}
