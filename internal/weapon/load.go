package weapon

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

var explosionCapable = []string{
	"tf_weapon_rocketlauncher",
	"tf_weapon_particle_cannon",
	"tf_weapon_rocketlauncher_directhit",
	"tf_weapon_rocketlauncher_airstrike",
	"tf_weapon_grenadelauncher",
	"tf_weapon_cannon",
	"tf_weapon_pipebomblauncher",
}

// ExplosionCapable reports whether the weapon's explosion effect can be
// changed.
func ExplosionCapable(id string) bool {
	return lo.Contains(explosionCapable, id)
}

// ExplosionCapableIDs returns the ids of every explosion-capable weapon.
func ExplosionCapableIDs() []string {
	return append([]string(nil), explosionCapable...)
}

// Record is the state of one weapon script as last read from disk.
type Record struct {
	ID    string
	Path  string
	Class string
	Slot  int

	// Crosshair is the "file" value of the crosshair block, empty when absent.
	Crosshair string

	// Explosion is set if and only if ExplosionCapable(ID).
	Explosion *ExplosionEffect
}

// CrosshairName returns the last element of the crosshair path.
func (r *Record) CrosshairName() string {
	if r.Crosshair == "" {
		return ""
	}
	return path.Base(r.Crosshair)
}

// ScriptID derives the weapon id from a script path.
func ScriptID(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads a weapon script into a Record.
func Load(fsys afero.Fs, p string, class string, slot int) (*Record, error) {
	lines, err := readLines(fsys, p)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:    ScriptID(p),
		Path:  p,
		Class: class,
		Slot:  slot,
	}

	if i, ok := crosshairFileLine(lines); ok {
		rec.Crosshair, err = value(lines[i])
		if err != nil {
			return nil, fmt.Errorf("failed to get crosshair in %s: %w", filepath.Base(p), err)
		}
	}

	if !ExplosionCapable(rec.ID) {
		return rec, nil
	}

	i, ok := explosionLine(lines)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s in %s", ErrMissingRequiredField, KeyExplosionEffect, filepath.Base(p))
	}

	raw, err := value(lines[i])
	if err != nil {
		return nil, fmt.Errorf("failed to get explosion effect in %s: %w", filepath.Base(p), err)
	}

	effect := EffectFromIdentifier(raw)
	rec.Explosion = &effect

	return rec, nil
}

// Reload reads the record's script again, keeping its class and slot.
func (r *Record) Reload(fsys afero.Fs) (*Record, error) {
	return Load(fsys, r.Path, r.Class, r.Slot)
}

func readLines(fsys afero.Fs, p string) ([]string, error) {
	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s doesn't exist", ErrNotFound, filepath.Base(p))
		}
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrIO, filepath.Base(p), err)
	}

	return splitLines(string(data)), nil
}
