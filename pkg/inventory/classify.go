package inventory

// Set membership tables for the classifier. Checked after the exact-match
// special cases, in the order capsules, mods, weapons, cubes.
var (
	capsuleTypes = map[string]struct{}{
		"CAPSULE":          {},
		"KEY_CAPSULE":      {},
		"INTEREST_CAPSULE": {},
		"KINETIC_CAPSULE":  {},
	}

	modTypes = map[string]struct{}{
		"RES_SHIELD":         {},
		"EXTRA_SHIELD":       {},
		"MULTIHACK":          {},
		"HEATSINK":           {},
		"FORCE_AMP":          {},
		"TURRET":             {},
		"LINK_AMPLIFIER":     {},
		"ULTRA_LINK_AMP":     {},
		"TRANSMUTER_ATTACK":  {},
		"TRANSMUTER_DEFENSE": {},
	}

	weaponTypes = map[string]struct{}{
		TypeEmpBurster:  {},
		TypeUltraStrike: {},
		TypeFlipCard:    {},
	}

	cubeTypes = map[string]struct{}{
		TypePowerCube:   {},
		TypeBoostedCube: {},
	}
)

// Classify maps a raw resource-type code to its display category. The
// function is total: codes that match nothing come back unchanged as a
// passthrough category (drones end up there on purpose; hiding them is
// the filter's job, not the classifier's).
func Classify(rawType string) string {
	switch rawType {
	case TypeResonator:
		return CategoryResonators
	case TypeKey:
		return CategoryKeys
	case TypeMedia:
		return CategoryMedia
	case TypePortalPowerup, TypePlayerPowerup:
		return CategoryPowerups
	}

	if _, ok := capsuleTypes[rawType]; ok {
		return CategoryCapsules
	}
	if _, ok := modTypes[rawType]; ok {
		return CategoryMods
	}
	if _, ok := weaponTypes[rawType]; ok {
		return CategoryWeapons
	}
	if _, ok := cubeTypes[rawType]; ok {
		return CategoryCubes
	}

	return rawType
}
