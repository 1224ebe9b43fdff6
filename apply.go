package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/crosshair"
	"github.com/ossyrian/crosshair-switcher/internal/switcher"
	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

type applyOptions struct {
	crosshair string
	ids       []string
	class     string
	slot      int
	all       bool
}

func init() {
	rootCmd.AddCommand(newApplyCmd())
}

func newApplyCmd() *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply <crosshair> [weapon-id...]",
		Short: "Set the crosshair of one or more weapons",
		Long: `The apply command points the crosshair of the selected weapons at a
texture from the thumbnails directory. Weapons are selected by id, or with
--class, --slot or --all. Each weapon is patched, written and reloaded on
its own; a failure is logged and the rest continue.

Example:
  crosshair-switcher apply bigcross tf_weapon_grenadelauncher
  crosshair-switcher apply dot --class Scout
  crosshair-switcher apply dot --slot 3
  crosshair-switcher apply dot --all --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.crosshair = args[0]
			opts.ids = args[1:]

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			items, err := a.crosshairs()
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			return runApply(a, svc, items, opts)
		},
	}

	cmd.Flags().StringVar(&opts.class, "class", "", "apply to every weapon of this class")
	cmd.Flags().IntVar(&opts.slot, "slot", 0, "apply to every weapon in this loadout slot")
	cmd.Flags().BoolVar(&opts.all, "all", false, "apply to every weapon")
	cmd.MarkFlagsMutuallyExclusive("class", "slot", "all")

	return cmd
}

func (o applyOptions) selection() (switcher.Selection, error) {
	modes := 0
	if len(o.ids) > 0 {
		modes++
	}
	if o.class != "" {
		modes++
	}
	if o.slot != 0 {
		modes++
	}
	if o.all {
		modes++
	}
	if modes > 1 {
		return nil, fmt.Errorf("weapon ids, --class, --slot and --all cannot be combined")
	}

	switch {
	case o.class != "":
		return switcher.ByClass(o.class), nil
	case o.slot != 0:
		return switcher.BySlot(o.slot), nil
	case o.all:
		return switcher.All(), nil
	default:
		return switcher.ByIDs(o.ids...), nil
	}
}

func runApply(a *app, svc *switcher.Service, items []crosshair.Item, opts applyOptions) error {
	item, ok := crosshair.Lookup(items, opts.crosshair)
	if !ok {
		return fmt.Errorf("crosshair `%s` not found in %s", opts.crosshair, a.cfg.ThumbnailsDir)
	}
	if !item.Decoded() {
		a.logger.Warn("crosshair could not be decoded, using the default size",
			"crosshair", item.Name,
			"size", weapon.DefaultCrosshairSize,
		)
	}

	sel, err := opts.selection()
	if err != nil {
		return err
	}

	for _, id := range opts.ids {
		if _, ok := svc.Find(id); !ok {
			a.logger.Error(fmt.Sprintf("%s is not a loaded weapon", id))
		}
	}

	changes, err := svc.ApplyCrosshair(item, svc.Select(sel))
	if err != nil {
		return err
	}

	failed := 0
	for _, c := range changes {
		if c.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d weapons failed", failed, len(changes))
	}

	return nil
}
