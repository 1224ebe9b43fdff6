package switcher

import (
	"github.com/samber/lo"

	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

// Selection picks the records a change applies to.
type Selection func(*weapon.Record) bool

// ByIDs selects the given weapon ids.
func ByIDs(ids ...string) Selection {
	return func(r *weapon.Record) bool {
		return lo.Contains(ids, r.ID)
	}
}

// ByClass selects every weapon of a class.
func ByClass(class string) Selection {
	return func(r *weapon.Record) bool {
		return r.Class == class
	}
}

// BySlot selects every weapon in a loadout slot.
func BySlot(slot int) Selection {
	return func(r *weapon.Record) bool {
		return r.Slot == slot
	}
}

// All selects every weapon.
func All() Selection {
	return func(*weapon.Record) bool {
		return true
	}
}
