package main

import (
	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

func init() {
	rootCmd.AddCommand(newEffectsCmd())
}

func newEffectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "effects",
		Short: "List the named explosion effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			runEffects(a)
			return nil
		},
	}
}

func runEffects(a *app) {
	for _, e := range weapon.KnownEffects() {
		a.printf("%-18s %s\n", e, e.Identifier(weapon.KeyExplosionEffect))
	}
	a.printf("\nWeapons with explosions:\n")
	for _, id := range weapon.ExplosionCapableIDs() {
		a.printf("  - %s\n", id)
	}
}
