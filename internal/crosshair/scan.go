package crosshair

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/ossyrian/crosshair-switcher/internal/writer"
)

// Scan lists the textures in dir and decodes them on up to workers
// goroutines. Textures that fail to decode are logged and returned
// undecoded. Items are in directory order.
func Scan(fsys afero.Fs, dir string, workers int, logger *slog.Logger) ([]Item, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to find `%s` folder", ErrNotFound, filepath.Base(dir))
		}
		return nil, fmt.Errorf("failed to read folder `%s`: %w", filepath.Base(dir), err)
	}

	var items []Item
	for _, info := range infos {
		if info.IsDir() || !strings.EqualFold(filepath.Ext(info.Name()), TextureExt) {
			continue
		}
		items = append(items, NewItem(filepath.Join(dir, info.Name())))
	}

	p := pool.New().WithMaxGoroutines(max(workers, 1))
	for i := range items {
		p.Go(func() {
			item := &items[i]
			if err := item.load(fsys); err != nil {
				logger.Error(fmt.Sprintf("Skipping %s; %v", filepath.Base(item.Path), err))
				return
			}
			logger.Debug("Decoded crosshair",
				"name", item.Name,
				"width", item.Width,
				"height", item.Height,
			)
		})
	}
	p.Wait()

	return items, nil
}

func (i *Item) load(fsys afero.Fs) error {
	data, err := afero.ReadFile(fsys, i.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(i.Path), err)
	}

	preview, w, h, err := Decode(data)
	if err != nil {
		return err
	}

	i.Preview, i.Width, i.Height = preview, w, h
	return nil
}

// Lookup returns the item whose name or file name equals name.
func Lookup(items []Item, name string) (Item, bool) {
	name = strings.TrimSuffix(name, TextureExt)
	return lo.Find(items, func(item Item) bool {
		return item.Name == name
	})
}

// ExportPreviews writes <name>.png for every decoded item into dir and
// returns the number written.
func ExportPreviews(fsys afero.Fs, dir string, items []Item) (int, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	n := 0
	for _, item := range items {
		if !item.Decoded() {
			continue
		}

		data, err := item.PreviewPNG()
		if err != nil {
			return n, err
		}

		if err := writer.WriteFile(fsys, filepath.Join(dir, item.Name+".png"), data); err != nil {
			return n, fmt.Errorf("failed to write preview for %s: %w", item.Name, err)
		}
		n++
	}

	return n, nil
}
