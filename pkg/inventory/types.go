// Package inventory turns a raw game-inventory export into grouped,
// filterable, sortable views. The pipeline is a chain of pure transforms:
// Expand -> Filter -> Group -> Sort. Items are immutable once produced;
// every stage takes its full input and returns a new structure.
package inventory

// Raw resource-type codes as they appear in exports.
const (
	TypeResonator     = "EMITTER_A"
	TypeKey           = "PORTAL_LINK_KEY"
	TypeMedia         = "MEDIA"
	TypePortalPowerup = "PORTAL_POWERUP"
	TypePlayerPowerup = "PLAYER_POWERUP"
	TypeDrone         = "DRONE"
	TypeFlipCard      = "FLIP_CARD"
	TypePowerCube     = "POWER_CUBE"
	TypeBoostedCube   = "BOOSTED_POWER_CUBE"
	TypeEmpBurster    = "EMP_BURSTER"
	TypeUltraStrike   = "ULTRA_STRIKE"
)

// Display categories. Unclassified codes pass through as their own category.
const (
	CategoryResonators = "Resonators"
	CategoryKeys       = "Keys"
	CategoryMedia      = "Media"
	CategoryPowerups   = "Powerups"
	CategoryCapsules   = "Capsules"
	CategoryMods       = "Mods"
	CategoryWeapons    = "Weapons"
	CategoryCubes      = "Cubes"
)

// FallbackContainerType is recorded as provenance when a container carries
// no resource type of its own.
const FallbackContainerType = "CAPSULE"

// Item is a single inventory record. Provenance is set only on items
// synthesized out of a container and never mutated afterward.
type Item struct {
	ID         string
	AcquiredAt int64 // unix millis
	Metadata   Metadata
	Provenance *Provenance
}

// Provenance records which container an item was extracted from.
type Provenance struct {
	ContainerID   string
	ContainerType string
}

// Metadata is the tagged union over resource kinds. Well-formed input
// populates exactly one discriminating sub-record per item; every consumer
// treats absence as "not this variant" and falls through.
type Metadata struct {
	Resource      *Resource
	Leveled       *LeveledResource
	Mod           *ModResource
	PortalCoupler *PortalCoupler
	StoryItem     *StoryItem
	TimedPowerup  *TimedPowerup
	PlayerPowerup *PlayerPowerup
	FlipCard      *FlipCard
	Container     *Container
}

// Resource is a generic (unleveled) resource.
type Resource struct {
	ResourceType   string
	ResourceRarity string
}

// LeveledResource is a level-based resource (bursters, resonators, cubes...).
type LeveledResource struct {
	ResourceType string
	Level        int
}

// ModResource is a deployable portal mod.
type ModResource struct {
	ResourceType string
	Rarity       string
	DisplayName  string
}

// PortalCoupler ties a key to its portal.
type PortalCoupler struct {
	PortalGUID     string
	PortalTitle    string
	PortalAddress  string
	PortalLocation string // "lat,lng" hex pair
	PortalImageURL string
}

// StoryItem is a media drop.
type StoryItem struct {
	ShortDescription string
	PrimaryURL       string
}

// TimedPowerup is a portal powerup (e.g. a fracker).
type TimedPowerup struct {
	Designation string
}

// PlayerPowerup is a player-scoped powerup (e.g. Apex).
type PlayerPowerup struct {
	PowerupEnum string
}

// FlipCard is an alignment flip card.
type FlipCard struct {
	FlipCardType string
}

// Container holds the stack descriptors of a capsule-like item.
type Container struct {
	CurrentCount   int
	StackableItems []StackEntry
}

// StackEntry describes one batch of contained items: a GUID list, a
// template entity, or both.
type StackEntry struct {
	ItemGUIDs []string
	Example   *Item
}

// Kind discriminates the metadata variants.
type Kind int

const (
	KindNone Kind = iota
	KindMod
	KindKey
	KindStory
	KindLeveled
	KindResource
)

// Kind probes the populated sub-records in the priority order shared by
// the classifier, the title resolver and the group engine. This is the
// single variant-detection point; nothing else inspects field presence
// to decide what an item is.
func (m *Metadata) Kind() Kind {
	switch {
	case m.Mod != nil:
		return KindMod
	case m.PortalCoupler != nil && m.PortalCoupler.PortalTitle != "":
		return KindKey
	case m.StoryItem != nil && m.StoryItem.ShortDescription != "":
		return KindStory
	case m.Leveled != nil:
		return KindLeveled
	case m.Resource != nil:
		return KindResource
	}
	return KindNone
}

// RawType returns the first populated resource-type field, checking the
// leveled resource, then the generic resource, then the mod resource.
// Empty when none is populated.
func (m *Metadata) RawType() string {
	switch {
	case m.Leveled != nil:
		return m.Leveled.ResourceType
	case m.Resource != nil:
		return m.Resource.ResourceType
	case m.Mod != nil:
		return m.Mod.ResourceType
	}
	return ""
}

// Rarity resolves the item's rarity: the generic resource rarity, or the
// mod rarity for mods. Empty when neither is present.
func (m *Metadata) Rarity() string {
	switch {
	case m.Resource != nil && m.Resource.ResourceRarity != "":
		return m.Resource.ResourceRarity
	case m.Mod != nil:
		return m.Mod.Rarity
	}
	return ""
}
