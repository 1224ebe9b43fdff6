package weapon

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// ThumbnailPrefix is the material path crosshair textures are referenced by.
const ThumbnailPrefix = "vgui/replay/thumbnails/"

// DefaultCrosshairSize is written when a crosshair's size is unknown.
const DefaultCrosshairSize = 64

// Crosshair is a replacement crosshair texture.
type Crosshair interface {
	// Stem is the texture file name without extension.
	Stem() string
	// Size is the texture size in pixels, zero when unknown.
	Size() (width, height int)
}

// PatchCrosshair returns the script at p with its crosshair block pointed
// at c. The file is not modified.
func PatchCrosshair(fsys afero.Fs, p string, c Crosshair) (string, error) {
	lines, err := readLines(fsys, p)
	if err != nil {
		return "", err
	}

	if err := patchCrosshairLines(lines, c); err != nil {
		return "", fmt.Errorf("failed to replace crosshair in %s: %w", filepath.Base(p), err)
	}

	return strings.Join(lines, ""), nil
}

// PatchExplosion returns the script at p with all three explosion keys set
// for effect. The file is not modified.
func PatchExplosion(fsys afero.Fs, p string, effect ExplosionEffect) (string, error) {
	lines, err := readLines(fsys, p)
	if err != nil {
		return "", err
	}

	if err := patchExplosionLines(lines, effect); err != nil {
		return "", fmt.Errorf("failed to replace explosion in %s: %w", filepath.Base(p), err)
	}

	return strings.Join(lines, ""), nil
}

// PatchCrosshair is PatchCrosshair on the record's script.
func (r *Record) PatchCrosshair(fsys afero.Fs, c Crosshair) (string, error) {
	return PatchCrosshair(fsys, r.Path, c)
}

// PatchExplosion is PatchExplosion on the record's script. Weapons that are
// not explosion-capable are refused before the file is read.
func (r *Record) PatchExplosion(fsys afero.Fs, effect ExplosionEffect) (string, error) {
	if !ExplosionCapable(r.ID) {
		return "", fmt.Errorf("%w: %s doesn't use explosions", ErrUnsupportedOperation, r.ID)
	}
	return PatchExplosion(fsys, r.Path, effect)
}

func sizeValue(n int) string {
	if n == 0 {
		return strconv.Itoa(DefaultCrosshairSize)
	}
	return strconv.Itoa(n)
}

func patchCrosshairLines(lines []string, c Crosshair) error {
	start, ok := crosshairBlock(lines)
	if !ok {
		return fmt.Errorf("%w: no %q block", ErrMalformedField, keyCrosshair)
	}

	width, height := c.Size()
	replacements := map[string]string{
		keyFile:   ThumbnailPrefix + c.Stem(),
		keyX:      "0",
		keyY:      "0",
		keyWidth:  sizeValue(width),
		keyHeight: sizeValue(height),
	}

	foundFile := false
	for i := start; i < len(lines); i++ {
		closes := strings.Contains(lines[i], "}")

		for key, v := range replacements {
			if !hasKey(lines[i], key) {
				continue
			}

			line, err := replaceValue(lines[i], v)
			if err != nil {
				return err
			}
			lines[i] = line

			if key == keyFile {
				foundFile = true
			}
			break
		}

		if closes {
			break
		}
	}

	if !foundFile {
		return fmt.Errorf("%w: no %q in %q block", ErrMalformedField, keyFile, keyCrosshair)
	}

	return nil
}

func patchExplosionLines(lines []string, effect ExplosionEffect) error {
	keys := []string{KeyExplosionEffect, KeyExplosionPlayerEffect, KeyExplosionWaterEffect}

	if _, ok := explosionLine(lines); !ok {
		return fmt.Errorf("%w: no %s", ErrMissingRequiredField, KeyExplosionEffect)
	}

	for i := range lines {
		for _, key := range keys {
			if !hasKey(lines[i], key) {
				continue
			}

			line, err := replaceValue(lines[i], effect.Identifier(key))
			if err != nil {
				return err
			}
			lines[i] = line
			break
		}
	}

	return nil
}
