package weapon

import (
	"strings"

	"github.com/samber/lo"
)

// Keys holding explosion particle names. Only KeyExplosionEffect is read
// back when loading.
const (
	KeyExplosionEffect       = "ExplosionEffect"
	KeyExplosionPlayerEffect = "ExplosionPlayerEffect"
	KeyExplosionWaterEffect  = "ExplosionWaterEffect"
)

// EffectKind enumerates the explosion effects offered as replacements,
// plus EffectOther for anything else found on disk.
type EffectKind int

const (
	EffectDefault EffectKind = iota
	EffectPyroPool
	EffectMuzzleFlash
	EffectSapperDestroyed
	EffectElectricShock
	EffectOther
)

// ExplosionEffect is an explosion particle effect. Values are comparable;
// only EffectOther carries a name.
type ExplosionEffect struct {
	Kind EffectKind
	name string
}

var (
	Default         = ExplosionEffect{Kind: EffectDefault}
	PyroPool        = ExplosionEffect{Kind: EffectPyroPool}
	MuzzleFlash     = ExplosionEffect{Kind: EffectMuzzleFlash}
	SapperDestroyed = ExplosionEffect{Kind: EffectSapperDestroyed}
	ElectricShock   = ExplosionEffect{Kind: EffectElectricShock}
)

// Other returns the effect for an unrecognized particle name.
func Other(name string) ExplosionEffect {
	return ExplosionEffect{Kind: EffectOther, name: name}
}

// KnownEffects returns the five selectable effects, Default first.
func KnownEffects() []ExplosionEffect {
	return []ExplosionEffect{Default, PyroPool, MuzzleFlash, SapperDestroyed, ElectricShock}
}

// Default writes a different particle for each key.
var defaultIdentifiers = map[string]string{
	KeyExplosionEffect:       "ExplosionCore_wall",
	KeyExplosionPlayerEffect: "ExplosionCore_MidAir",
	KeyExplosionWaterEffect:  "ExplosionCore_MidAir_underwater",
}

var identifiers = map[EffectKind]string{
	EffectPyroPool:        "eotl_pyro_pool_explosion_flash",
	EffectMuzzleFlash:     "muzzle_minigun_starflash01",
	EffectSapperDestroyed: "ExplosionCore_sapperdestroyed",
	EffectElectricShock:   "electrocuted_red_flash",
}

// String returns the display label.
func (e ExplosionEffect) String() string {
	switch e.Kind {
	case EffectDefault:
		return "Default"
	case EffectPyroPool:
		return "Pyro Pool"
	case EffectMuzzleFlash:
		return "Muzzle Flash"
	case EffectSapperDestroyed:
		return "Sapper Destroyed"
	case EffectElectricShock:
		return "Electric Shock"
	default:
		return e.name
	}
}

// Identifier returns the particle name written for key.
func (e ExplosionEffect) Identifier(key string) string {
	switch e.Kind {
	case EffectDefault:
		return defaultIdentifiers[key]
	case EffectOther:
		return e.name
	default:
		return identifiers[e.Kind]
	}
}

// EffectFromIdentifier maps a particle name read from the ExplosionEffect
// key to an effect. Unrecognized names become Other.
func EffectFromIdentifier(raw string) ExplosionEffect {
	if raw == defaultIdentifiers[KeyExplosionEffect] {
		return Default
	}

	kind, ok := lo.FindKey(identifiers, raw)
	if !ok {
		return Other(raw)
	}

	return ExplosionEffect{Kind: kind}
}

// ParseEffect resolves user input: a display label (case-insensitive),
// a known particle name, or any other particle name.
func ParseEffect(s string) ExplosionEffect {
	s = strings.TrimSpace(s)

	if e, ok := lo.Find(KnownEffects(), func(e ExplosionEffect) bool {
		return strings.EqualFold(e.String(), s)
	}); ok {
		return e
	}

	return EffectFromIdentifier(s)
}
