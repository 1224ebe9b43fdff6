package crosshair

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossyrian/crosshair-switcher/internal/vtf"
	"github.com/ossyrian/crosshair-switcher/internal/vtf/vtftest"
)

const thumbDir = "/tf/materials/vgui/replay/thumbnails"

func solidTexture(w, h int) []byte {
	return vtftest.Build(vtftest.Texture{
		Minor:  4,
		Width:  uint16(w),
		Height: uint16(h),
		Format: vtf.FormatRGBA8888,
		Data:   vtftest.Solid(w, h, 255, 0, 0, 255),
	})
}

func TestDecode(t *testing.T) {
	preview, w, h, err := Decode(solidTexture(64, 16))
	require.NoError(t, err)

	assert.Equal(t, 64, w)
	assert.Equal(t, 16, h)
	require.NotNil(t, preview)
	assert.Equal(t, image.Rect(0, 0, PreviewSize, PreviewSize), preview.Bounds())

	// 64x16 fits as 32x8, centered vertically
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, preview.NRGBAAt(16, 16))
	assert.Equal(t, uint8(0), preview.NRGBAAt(16, 2).A)
}

func TestDecode_Malformed(t *testing.T) {
	_, _, _, err := Decode([]byte("not a texture"))
	assert.ErrorIs(t, err, vtf.ErrDecode)
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		inside  image.Point
		outside image.Point
	}{
		{"square", 8, 8, image.Pt(0, 0), image.Pt(-1, -1)},
		{"wide", 100, 25, image.Pt(16, 16), image.Pt(16, 1)},
		{"tall", 10, 40, image.Pt(16, 16), image.Pt(1, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					src.SetNRGBA(x, y, color.NRGBA{0, 255, 0, 255})
				}
			}

			dst := Thumbnail(src, 32)
			assert.Equal(t, image.Rect(0, 0, 32, 32), dst.Bounds())
			assert.Equal(t, uint8(255), dst.NRGBAAt(tt.inside.X, tt.inside.Y).A)
			if tt.outside.X >= 0 {
				assert.Equal(t, uint8(0), dst.NRGBAAt(tt.outside.X, tt.outside.Y).A)
			}
		})
	}
}

func TestItem(t *testing.T) {
	item := NewItem(thumbDir + "/bigcross.vtf")
	assert.Equal(t, "bigcross", item.Stem())
	assert.False(t, item.Decoded())

	w, h := item.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	_, err := item.PreviewPNG()
	assert.Error(t, err)
}

func TestScan_BatchResilience(t *testing.T) {
	fsys := afero.NewMemMapFs()
	good := []string{"a_dot", "b_cross", "c_circle", "d_square", "e_plus"}
	bad := []string{"b_broken", "d_truncated"}

	for _, name := range good {
		require.NoError(t, afero.WriteFile(fsys, thumbDir+"/"+name+".vtf", solidTexture(16, 16), 0o644))
	}
	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/b_broken.vtf", []byte("VTF\x00garbage"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/d_truncated.vtf", solidTexture(16, 16)[:90], 0o644))
	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/readme.txt", []byte("hi"), 0o644))
	require.NoError(t, fsys.MkdirAll(thumbDir+"/sub.vtf", 0o755))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	items, err := Scan(fsys, thumbDir, 3, logger)
	require.NoError(t, err)
	require.Len(t, items, len(good)+len(bad))

	names := make([]string, len(items))
	decoded := 0
	for i, item := range items {
		names[i] = item.Name
		if item.Decoded() {
			decoded++
			assert.Equal(t, 16, item.Width)
			assert.Equal(t, 16, item.Height)
		} else {
			assert.Contains(t, bad, item.Name)
			w, h := item.Size()
			assert.Zero(t, w)
			assert.Zero(t, h)
		}
	}

	assert.Equal(t, []string{"a_dot", "b_broken", "b_cross", "c_circle", "d_square", "d_truncated", "e_plus"}, names)
	assert.Equal(t, len(good), decoded)
	assert.Equal(t, len(bad), strings.Count(logs.String(), "Skipping"))
	assert.Contains(t, logs.String(), "Skipping b_broken.vtf")
}

func TestScan_OversizedHeader(t *testing.T) {
	fsys := afero.NewMemMapFs()

	// a 7.2 header claiming 65535x65535 with no pixel data behind it
	huge := vtftest.Build(vtftest.Texture{
		Minor: 2, Width: 1, Height: 1, Format: vtf.FormatRGBA16161616F,
	})[:80]
	huge[16], huge[17], huge[18], huge[19] = 0xFF, 0xFF, 0xFF, 0xFF

	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/huge.vtf", huge, 0o644))
	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/small.vtf", solidTexture(4, 4), 0o644))

	items, err := Scan(fsys, thumbDir, 1, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.False(t, items[0].Decoded())
	assert.True(t, items[1].Decoded())
	assert.Equal(t, 4, items[1].Width)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(afero.NewMemMapFs(), thumbDir, 2, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookup(t *testing.T) {
	items := []Item{NewItem("/x/dot.vtf"), NewItem("/x/cross.vtf")}

	item, ok := Lookup(items, "cross")
	require.True(t, ok)
	assert.Equal(t, "/x/cross.vtf", item.Path)

	_, ok = Lookup(items, "dot.vtf")
	assert.True(t, ok)

	_, ok = Lookup(items, "circle")
	assert.False(t, ok)
}

func TestExportPreviews(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/dot.vtf", solidTexture(8, 8), 0o644))
	require.NoError(t, afero.WriteFile(fsys, thumbDir+"/bad.vtf", []byte("nope"), 0o644))

	items, err := Scan(fsys, thumbDir, 1, nil)
	require.NoError(t, err)

	n, err := ExportPreviews(fsys, "/out", items)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := afero.ReadFile(fsys, "/out/dot.png")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, PreviewSize, PreviewSize), img.Bounds())

	exists, err := afero.Exists(fsys, "/out/bad.png")
	require.NoError(t, err)
	assert.False(t, exists)
}
