package main

import (
	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/switcher"
	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

type listOptions struct {
	explosions bool
	json       bool
	check      bool
}

type listRow struct {
	ID        string `json:"id"`
	Class     string `json:"class"`
	Display   string `json:"display"`
	Slot      int    `json:"slot"`
	Crosshair string `json:"crosshair"`
	Explosion string `json:"explosion,omitempty"`
}

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the weapons and their current crosshair",
		Long: `The list command loads every weapon script in the catalog and prints its
class, name and current crosshair. Scripts that fail to load are logged
and skipped.

Example:
  crosshair-switcher list
  crosshair-switcher list --explosions
  crosshair-switcher list --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			return runList(a, svc, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.explosions, "explosions", false, "show explosion effects, marking weapons that use them")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&opts.check, "check", false, "also report scripts that have no catalog entry")

	return cmd
}

func runList(a *app, svc *switcher.Service, opts listOptions) error {
	records := svc.Records()

	if opts.check {
		missing, err := svc.Catalog().Missing(a.fs, a.cfg.ScriptsDir)
		if err != nil {
			return err
		}
		for _, id := range missing {
			a.logger.Warn("script has no catalog entry", "id", id)
		}
	}

	rows := make([]listRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, newListRow(svc, rec))
	}

	if opts.json {
		return a.printJSON(rows)
	}

	for _, row := range rows {
		class := row.Class
		last := row.Crosshair
		if opts.explosions && weapon.ExplosionCapable(row.ID) {
			class = "> " + class
			last = row.Explosion
		}
		a.printf("%-14s %-28s %s\n", class, row.Display, last)
	}

	return nil
}

func newListRow(svc *switcher.Service, rec *weapon.Record) listRow {
	row := listRow{
		ID:        rec.ID,
		Class:     rec.Class,
		Display:   rec.ID,
		Slot:      rec.Slot,
		Crosshair: rec.CrosshairName(),
	}
	if e, ok := svc.Catalog().Lookup(rec.ID); ok {
		row.Display = e.Display
	}
	if rec.Explosion != nil {
		row.Explosion = rec.Explosion.String()
	}
	return row
}
