package inventory

import "fmt"

// Item constructors shared by the pipeline tests.

var nextID int

func freshID() string {
	nextID++
	return fmt.Sprintf("guid-%04d", nextID)
}

func leveledItem(resourceType string, level int) Item {
	return Item{
		ID:         freshID(),
		AcquiredAt: 1700000000000,
		Metadata: Metadata{
			Leveled: &LeveledResource{ResourceType: resourceType, Level: level},
		},
	}
}

func resourceItem(resourceType, rarity string) Item {
	return Item{
		ID:         freshID(),
		AcquiredAt: 1700000000000,
		Metadata: Metadata{
			Resource: &Resource{ResourceType: resourceType, ResourceRarity: rarity},
		},
	}
}

func modItem(modType, rarity string) Item {
	return Item{
		ID:         freshID(),
		AcquiredAt: 1700000000000,
		Metadata: Metadata{
			Mod: &ModResource{ResourceType: modType, Rarity: rarity},
		},
	}
}

func keyItem(portalTitle, location string, acquiredAt int64) Item {
	return Item{
		ID:         freshID(),
		AcquiredAt: acquiredAt,
		Metadata: Metadata{
			Resource: &Resource{ResourceType: TypeKey, ResourceRarity: "VERY_COMMON"},
			PortalCoupler: &PortalCoupler{
				PortalGUID:     freshID(),
				PortalTitle:    portalTitle,
				PortalLocation: location,
			},
		},
	}
}

func capsuleItem(capsuleType string, stacks ...StackEntry) Item {
	var resource *Resource
	if capsuleType != "" {
		resource = &Resource{ResourceType: capsuleType, ResourceRarity: "VERY_RARE"}
	}
	return Item{
		ID:         freshID(),
		AcquiredAt: 1700000000000,
		Metadata: Metadata{
			Resource:  resource,
			Container: &Container{StackableItems: stacks},
		},
	}
}
