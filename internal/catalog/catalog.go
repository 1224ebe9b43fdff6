// Package catalog holds the bundled table of weapon scripts the switcher
// knows about.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

//go:embed associations.json
var associations []byte

// ScriptExt is the extension of weapon script files.
const ScriptExt = ".txt"

// ErrInvalid is returned for association data that cannot be used.
var ErrInvalid = errors.New("invalid association data")

// Class display order. Unknown classes sort after these.
var classOrder = []string{
	"Scout", "Soldier", "Pyro", "Demoman", "Heavy",
	"Engineer", "Medic", "Sniper", "Spy", "Multi-Class",
}

// Entry associates a weapon script with its class and loadout slot.
type Entry struct {
	ID      string   `json:"-"`
	Class   string   `json:"class"`
	Display string   `json:"display"`
	Slot    int      `json:"slot"`
	All     []string `json:"all"`
}

// SlotLabel returns the loadout slot name, or "" for an unlabeled slot.
func (e Entry) SlotLabel() string {
	return SlotLabel(e.Slot)
}

// ScriptPath returns the path of the entry's script under dir.
func (e Entry) ScriptPath(dir string) string {
	return filepath.Join(dir, e.ID+ScriptExt)
}

// SlotLabel names a loadout slot number.
func SlotLabel(slot int) string {
	switch slot {
	case 1:
		return "Primary"
	case 2:
		return "Secondary"
	case 3:
		return "Melee"
	case 4, 5:
		return "PDA"
	case 9:
		return "Other"
	default:
		return ""
	}
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// Load returns the catalog bundled with the binary.
func Load() (*Catalog, error) {
	return Parse(associations)
}

// Parse decodes an association table: a JSON object keyed by weapon id.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]Entry
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	entries := make([]Entry, 0, len(raw))
	for id, e := range raw {
		if id == "" {
			return nil, fmt.Errorf("%w: empty weapon id", ErrInvalid)
		}
		if e.Class == "" {
			return nil, fmt.Errorf("%w: %s has no class", ErrInvalid, id)
		}
		e.ID = id
		entries = append(entries, e)
	}

	slices.SortFunc(entries, compareEntries)

	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}

	return &Catalog{entries: entries, byID: byID}, nil
}

func classRank(class string) int {
	if i := slices.Index(classOrder, class); i >= 0 {
		return i
	}
	return len(classOrder)
}

func compareEntries(a, b Entry) int {
	if c := classRank(a.Class) - classRank(b.Class); c != 0 {
		return c
	}
	if c := strings.Compare(a.Class, b.Class); c != 0 {
		return c
	}
	if c := a.Slot - b.Slot; c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every entry ordered by class, slot and id.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Lookup returns the entry for a weapon id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Classes returns the distinct classes in display order.
func (c *Catalog) Classes() []string {
	return lo.Uniq(lo.Map(c.entries, func(e Entry, _ int) string {
		return e.Class
	}))
}

// Missing lists the ids of scripts in dir that have no entry.
func (c *Catalog) Missing(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var missing []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || filepath.Ext(name) != ScriptExt {
			continue
		}

		id := strings.TrimSuffix(name, ScriptExt)
		if _, ok := c.byID[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing, nil
}
