// Package switcher ties the catalog, the weapon scripts and the crosshair
// textures together and applies changes to the scripts on disk.
package switcher

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/ossyrian/crosshair-switcher/internal/catalog"
	"github.com/ossyrian/crosshair-switcher/internal/weapon"
	"github.com/ossyrian/crosshair-switcher/internal/writer"
)

// ErrNoSelection is returned when a change targets no weapons.
var ErrNoSelection = errors.New("no weapon selected")

// ErrNoEffect is returned when an explosion change names no effect.
var ErrNoEffect = errors.New("no explosion selected")

// ErrScriptsDir is returned when the scripts directory is missing.
var ErrScriptsDir = errors.New("scripts directory not found")

// Options configures a Service.
type Options struct {
	ScriptsDir string
	Workers    int
	DryRun     bool
	Logger     *slog.Logger
}

// Service holds the loaded weapon records.
type Service struct {
	fs         afero.Fs
	catalog    *catalog.Catalog
	scriptsDir string
	workers    int
	dryRun     bool
	logger     *slog.Logger

	mu      sync.RWMutex
	records []*weapon.Record
}

// New creates a Service. Call LoadAll before using the records.
func New(fsys afero.Fs, cat *catalog.Catalog, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		fs:         fsys,
		catalog:    cat,
		scriptsDir: opts.ScriptsDir,
		workers:    max(opts.Workers, 1),
		dryRun:     opts.DryRun,
		logger:     logger,
	}
}

// Catalog returns the association catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// DryRun reports whether changes are computed without being written.
func (s *Service) DryRun() bool {
	return s.dryRun
}

// LoadAll reads every catalog weapon's script. Weapons that fail to load
// are logged and left out; the rest keep catalog order.
func (s *Service) LoadAll() ([]*weapon.Record, error) {
	if ok, _ := afero.DirExists(s.fs, s.scriptsDir); !ok {
		return nil, fmt.Errorf("%w: failed to find `%s` folder", ErrScriptsDir, filepath.Base(s.scriptsDir))
	}

	entries := s.catalog.Entries()
	loaded := make([]*weapon.Record, len(entries))

	p := pool.New().WithMaxGoroutines(s.workers)
	for i, e := range entries {
		p.Go(func() {
			rec, err := weapon.Load(s.fs, e.ScriptPath(s.scriptsDir), e.Class, e.Slot)
			if err != nil {
				s.logger.Error(fmt.Sprintf("Skipping %s; %v", e.ID, err))
				return
			}
			loaded[i] = rec
		})
	}
	p.Wait()

	records := lo.Compact(loaded)
	s.logger.Debug("Loaded weapon scripts",
		"loaded", len(records),
		"catalog", len(entries),
	)

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	return s.Records(), nil
}

// Records returns the loaded records in catalog order.
func (s *Service) Records() []*weapon.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*weapon.Record(nil), s.records...)
}

// Find returns the loaded record for a weapon id.
func (s *Service) Find(id string) (*weapon.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.records, func(r *weapon.Record) bool {
		return r.ID == id
	})
}

// Select returns the loaded records matched by sel.
func (s *Service) Select(sel Selection) []*weapon.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.records, func(r *weapon.Record, _ int) bool {
		return sel(r)
	})
}

func (s *Service) replace(rec *weapon.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == rec.ID {
			s.records[i] = rec
			return
		}
	}
}

// commit writes text to the record's script and reloads it. In dry-run
// mode nothing is written and the record is returned unchanged.
func (s *Service) commit(rec *weapon.Record, text string) (*weapon.Record, error) {
	if s.dryRun {
		return rec, nil
	}

	if err := writer.WriteFile(s.fs, rec.Path, []byte(text)); err != nil {
		return nil, fmt.Errorf("%w: failed to write %s: %w", weapon.ErrIO, filepath.Base(rec.Path), err)
	}

	updated, err := rec.Reload(s.fs)
	if err != nil {
		return nil, err
	}
	s.replace(updated)

	return updated, nil
}
