package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/switcher"
	"github.com/ossyrian/crosshair-switcher/internal/weapon"
)

func init() {
	rootCmd.AddCommand(newExplosionCmd())
}

func newExplosionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explosion <effect> <weapon-id>",
		Short: "Set the explosion effect of a weapon",
		Long: `The explosion command sets the explosion particle effect of a rocket or
grenade launcher. The effect is a name from the effects command ("Pyro Pool",
"Electric Shock", ...) or a raw particle name. Weapons without explosions
are refused.

Example:
  crosshair-switcher explosion "Electric Shock" tf_weapon_grenadelauncher
  crosshair-switcher explosion default tf_weapon_rocketlauncher`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			return runExplosion(svc, args[0], args[1])
		},
	}
	return cmd
}

func runExplosion(svc *switcher.Service, effect, id string) error {
	if strings.TrimSpace(effect) == "" {
		return switcher.ErrNoEffect
	}
	_, err := svc.ApplyExplosion(weapon.ParseEffect(effect), id)
	return err
}
