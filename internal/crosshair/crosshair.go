// Package crosshair loads replacement crosshair textures and their
// previews.
package crosshair

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/ossyrian/crosshair-switcher/internal/vtf"
)

// TextureExt is the extension of crosshair texture files.
const TextureExt = ".vtf"

// PreviewSize is the edge length of a preview in pixels.
const PreviewSize = 32

// ErrNotFound is returned when the thumbnails directory is missing.
var ErrNotFound = errors.New("crosshair directory not found")

// Item is a crosshair texture on disk.
type Item struct {
	// Name is the file name without extension.
	Name string
	Path string

	// Width and Height are zero when the texture could not be decoded.
	Width  int
	Height int

	Preview *image.NRGBA
}

// Stem returns the texture name the weapon scripts refer to.
func (i Item) Stem() string {
	return i.Name
}

// Size returns the native texture size.
func (i Item) Size() (width, height int) {
	return i.Width, i.Height
}

// Decoded reports whether the texture was read successfully.
func (i Item) Decoded() bool {
	return i.Preview != nil
}

// PreviewPNG encodes the preview as PNG.
func (i Item) PreviewPNG() ([]byte, error) {
	if i.Preview == nil {
		return nil, fmt.Errorf("%s has no preview", i.Name)
	}
	return EncodePNG(i.Preview)
}

// NewItem returns an undecoded item for the texture at p.
func NewItem(p string) Item {
	base := filepath.Base(p)
	return Item{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: p,
	}
}

// Decode reads a VTF texture and returns its preview with the native size.
func Decode(data []byte) (preview *image.NRGBA, width, height int, err error) {
	img, width, height, err := vtf.Decode(data)
	if err != nil {
		return nil, 0, 0, err
	}
	return Thumbnail(img, PreviewSize), width, height, nil
}

// Thumbnail scales src to fit a size x size square, keeping its aspect
// ratio, centered on a transparent background.
func Thumbnail(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))

	b := src.Bounds()
	if b.Empty() {
		return dst
	}

	w, h := size, size
	if b.Dx() > b.Dy() {
		h = max(1, b.Dy()*size/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, b.Dx()*size/b.Dy())
	}

	x0 := (size - w) / 2
	y0 := (size - h) / 2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, b, draw.Src, nil)

	return dst
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
