package inventory

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/twelve345/ingress-inventory/internal/utils"
)

// Decode parses an inventory export document. Both supported envelopes are
// accepted: {"result":[...]} or a bare top-level array of
// [id, timestamp, metadata] triples.
func Decode(doc string) ([]Item, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("not a valid JSON document")
	}

	root := gjson.Parse(doc)
	triples := root.Get("result")
	if !triples.Exists() {
		triples = root
	}
	if !triples.IsArray() {
		return nil, fmt.Errorf("unsupported document shape: expected an array or a {result:[...]} object")
	}

	var items []Item
	for _, triple := range triples.Array() {
		item, ok := decodeTriple(triple)
		if !ok {
			utils.Log.Debug("[skip-triple] ", triple.Raw)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadFile reads and decodes an export file from disk.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	items, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func decodeTriple(triple gjson.Result) (Item, bool) {
	parts := triple.Array()
	if len(parts) < 3 {
		return Item{}, false
	}

	return Item{
		ID:         parts[0].String(),
		AcquiredAt: parts[1].Int(),
		Metadata:   decodeMetadata(parts[2]),
	}, true
}

func decodeMetadata(obj gjson.Result) Metadata {
	var m Metadata

	if r := obj.Get("resource"); r.Exists() {
		m.Resource = &Resource{
			ResourceType:   r.Get("resourceType").String(),
			ResourceRarity: r.Get("resourceRarity").String(),
		}
	}
	if r := obj.Get("resourceWithLevels"); r.Exists() {
		m.Leveled = &LeveledResource{
			ResourceType: r.Get("resourceType").String(),
			Level:        int(r.Get("level").Int()),
		}
	}
	if r := obj.Get("modResource"); r.Exists() {
		m.Mod = &ModResource{
			ResourceType: r.Get("resourceType").String(),
			Rarity:       r.Get("rarity").String(),
			DisplayName:  r.Get("displayName").String(),
		}
	}
	if r := obj.Get("portalCoupler"); r.Exists() {
		m.PortalCoupler = &PortalCoupler{
			PortalGUID:     r.Get("portalGuid").String(),
			PortalTitle:    r.Get("portalTitle").String(),
			PortalAddress:  r.Get("portalAddress").String(),
			PortalLocation: r.Get("portalLocation").String(),
			PortalImageURL: r.Get("portalImageUrl").String(),
		}
	}
	if r := obj.Get("storyItem"); r.Exists() {
		m.StoryItem = &StoryItem{
			ShortDescription: r.Get("shortDescription").String(),
			PrimaryURL:       r.Get("primaryUrl").String(),
		}
	}
	if r := obj.Get("timedPowerupResource"); r.Exists() {
		m.TimedPowerup = &TimedPowerup{
			Designation: r.Get("designation").String(),
		}
	}
	if r := obj.Get("playerPowerupResource"); r.Exists() {
		m.PlayerPowerup = &PlayerPowerup{
			PowerupEnum: r.Get("playerPowerupEnum").String(),
		}
	}
	if r := obj.Get("flipCard"); r.Exists() {
		m.FlipCard = &FlipCard{
			FlipCardType: r.Get("flipCardType").String(),
		}
	}
	if r := obj.Get("container"); r.Exists() {
		c := &Container{
			CurrentCount: int(r.Get("currentCount").Int()),
		}
		for _, stack := range r.Get("stackableItems").Array() {
			entry := StackEntry{}
			for _, guid := range stack.Get("itemGuids").Array() {
				entry.ItemGUIDs = append(entry.ItemGUIDs, guid.String())
			}
			if ex := stack.Get("exampleGameEntity"); ex.IsArray() {
				if example, ok := decodeTriple(ex); ok {
					entry.Example = &example
				}
			}
			c.StackableItems = append(c.StackableItems, entry)
		}
		m.Container = c
	}

	return m
}
