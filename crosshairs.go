package main

import (
	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/crosshair"
)

type crosshairsOptions struct {
	exportDir string
	json      bool
}

type crosshairRow struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Decoded bool   `json:"decoded"`
}

func init() {
	rootCmd.AddCommand(newCrosshairsCmd())
}

func newCrosshairsCmd() *cobra.Command {
	var opts crosshairsOptions

	cmd := &cobra.Command{
		Use:   "crosshairs",
		Short: "List the available crosshair textures",
		Long: `The crosshairs command decodes every .vtf texture in the thumbnails
directory and prints its name and size. Textures that cannot be decoded
are logged and listed without a size.

Example:
  crosshair-switcher crosshairs
  crosshair-switcher crosshairs --export-dir ./previews`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return runCrosshairs(a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", "write a 32x32 PNG preview of each crosshair to this directory")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output in JSON format")

	return cmd
}

func runCrosshairs(a *app, opts crosshairsOptions) error {
	items, err := a.crosshairs()
	if err != nil {
		return err
	}

	if opts.exportDir != "" {
		n, err := crosshair.ExportPreviews(a.fs, opts.exportDir, items)
		if err != nil {
			return err
		}
		a.logger.Info("Exported previews", "count", n, "dir", opts.exportDir)
	}

	if opts.json {
		rows := make([]crosshairRow, 0, len(items))
		for _, item := range items {
			rows = append(rows, crosshairRow{
				Name:    item.Name,
				Path:    item.Path,
				Width:   item.Width,
				Height:  item.Height,
				Decoded: item.Decoded(),
			})
		}
		return a.printJSON(rows)
	}

	for _, item := range items {
		if !item.Decoded() {
			a.printf("%-32s ?\n", item.Name)
			continue
		}
		a.printf("%-32s %dx%d\n", item.Name, item.Width, item.Height)
	}

	return nil
}
