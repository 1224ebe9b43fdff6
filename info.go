package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/catalog"
	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <weapon-id>",
		Short: "Show a weapon's catalog entry and current values",
		Long: `The info command shows the class, category and slot of a weapon script,
the in-game weapons that share it, and its current crosshair and explosion
effect.

Example:
  crosshair-switcher info tf_weapon_grenadelauncher`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			return runInfo(a, cat, args[0])
		},
	}
	return cmd
}

func runInfo(a *app, cat *catalog.Catalog, id string) error {
	entry, ok := cat.Lookup(id)
	if !ok {
		return fmt.Errorf("key `%s` not in catalog", id)
	}

	a.printf("Class: %s\n", entry.Class)
	a.printf("Weapon Class: %s\n", entry.ID)
	a.printf("Category: %s\n", entry.Display)
	a.printf("Slot: %s\n", entry.SlotLabel())
	a.printf("Affected Weapons:\n  - %s\n", strings.Join(entry.All, "\n  - "))

	rec, err := weapon.Load(a.fs, entry.ScriptPath(a.cfg.ScriptsDir), entry.Class, entry.Slot)
	if err != nil {
		if errors.Is(err, weapon.ErrNotFound) {
			a.logger.Warn("script not found", "id", id, "dir", a.cfg.ScriptsDir)
			return nil
		}
		return err
	}

	a.printf("Crosshair: %s\n", rec.Crosshair)
	if rec.Explosion != nil {
		a.printf("Explosion: %s\n", rec.Explosion)
	}

	return nil
}
