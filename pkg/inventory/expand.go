package inventory

import "github.com/twelve345/ingress-inventory/internal/utils"

// Expand unpacks container contents into standalone items. The result
// starts with every input item in its original order, followed by one
// synthesized item per contained entry, in the order the source stack
// descriptors are encountered. Expansion is single-level: synthesized
// items are not re-scanned for containers of their own, and consumed
// stack descriptors are dropped from the output, so running Expand over
// its own output adds nothing.
//
// Each stack descriptor is handled by exactly one of three encodings:
// a GUID list with a template entity clones the template once per GUID;
// a template alone yields a single item from the template itself; a bare
// GUID list resolves each GUID against the input set, silently skipping
// the ones that don't resolve.
func Expand(items []Item) []Item {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		// Duplicate ids overwrite in the lookup only; the pass below
		// still emits every input item.
		byID[it.ID] = it
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, withoutContainer(it))
	}

	for _, it := range items {
		c := it.Metadata.Container
		if c == nil {
			continue
		}

		containerType := it.Metadata.RawType()
		if containerType == "" {
			containerType = FallbackContainerType
		}
		prov := Provenance{ContainerID: it.ID, ContainerType: containerType}

		for _, stack := range c.StackableItems {
			switch {
			case len(stack.ItemGUIDs) > 0 && stack.Example != nil:
				for _, guid := range stack.ItemGUIDs {
					out = append(out, synthesize(guid, *stack.Example, prov))
				}
			case stack.Example != nil:
				out = append(out, synthesize(stack.Example.ID, *stack.Example, prov))
			default:
				for _, guid := range stack.ItemGUIDs {
					src, ok := byID[guid]
					if !ok {
						utils.Log.Debug("[skip-guid] ", guid, " not in export")
						continue
					}
					out = append(out, synthesize(guid, src, prov))
				}
			}
		}
	}

	return out
}

// synthesize clones the template's timestamp and metadata under the given
// id. A provenance already carried by the template is replaced: the latest
// extraction wins.
func synthesize(id string, template Item, prov Provenance) Item {
	p := prov
	clone := withoutContainer(template)
	clone.ID = id
	clone.Provenance = &p
	return clone
}

func withoutContainer(it Item) Item {
	it.Metadata.Container = nil
	return it
}
