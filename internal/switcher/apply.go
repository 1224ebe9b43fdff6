package switcher

import (
	"fmt"
	"path"
	"strings"

	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

// Change describes one weapon's value before and after a change.
type Change struct {
	ID  string
	Old string
	New string
	Err error
}

// ApplyCrosshair points every target's crosshair at c. Each weapon is
// patched, written and reloaded on its own; failures are logged and
// reported in the returned changes without stopping the batch.
func (s *Service) ApplyCrosshair(c weapon.Crosshair, targets []*weapon.Record) ([]Change, error) {
	if len(targets) == 0 {
		return nil, ErrNoSelection
	}

	changes := make([]Change, 0, len(targets))
	for _, rec := range targets {
		change := Change{ID: rec.ID, Old: stem(rec.CrosshairName()), New: c.Stem()}

		if err := s.applyCrosshair(rec, c); err != nil {
			change.Err = err
			s.logger.Error(fmt.Sprintf("%s: %v", rec.ID, err))
		} else {
			s.logChange(change)
		}

		changes = append(changes, change)
	}

	return changes, nil
}

func (s *Service) applyCrosshair(rec *weapon.Record, c weapon.Crosshair) error {
	text, err := rec.PatchCrosshair(s.fs, c)
	if err != nil {
		return err
	}

	_, err = s.commit(rec, text)
	return err
}

// ApplyExplosion sets the explosion effect of one weapon. Weapons that
// are not explosion-capable are refused without touching the script.
func (s *Service) ApplyExplosion(effect weapon.ExplosionEffect, id string) (Change, error) {
	if strings.TrimSpace(effect.Identifier(weapon.KeyExplosionEffect)) == "" {
		return Change{}, ErrNoEffect
	}

	rec, ok := s.Find(id)
	if !ok {
		return Change{}, fmt.Errorf("%w: %s is not loaded", weapon.ErrNotFound, id)
	}

	if !weapon.ExplosionCapable(rec.ID) {
		return Change{}, fmt.Errorf("%w: %s doesn't use explosions", weapon.ErrUnsupportedOperation, rec.ID)
	}
	if rec.Explosion == nil {
		return Change{}, fmt.Errorf("%w: expected an explosion type in %s", weapon.ErrMissingRequiredField, rec.ID)
	}

	change := Change{ID: rec.ID, Old: rec.Explosion.String(), New: effect.String()}

	text, err := rec.PatchExplosion(s.fs, effect)
	if err != nil {
		return change, err
	}

	if _, err := s.commit(rec, text); err != nil {
		return change, err
	}

	s.logChange(change)
	return change, nil
}

func (s *Service) logChange(c Change) {
	msg := fmt.Sprintf("%s: %s -> %s", c.ID, c.Old, c.New)
	if s.dryRun {
		s.logger.Info(msg, "dry_run", true)
		return
	}
	s.logger.Info(msg)
}

func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
