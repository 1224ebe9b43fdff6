package weapon

import "strings"

// Scans run independently over the same indexed lines. Each returns line
// indices rather than values so the patcher can rewrite in place.

const (
	keyCrosshair = "crosshair"
	keyFile      = "file"
	keyX         = "x"
	keyY         = "y"
	keyWidth     = "width"
	keyHeight    = "height"
)

// crosshairBlock returns the index of the first line inside the first
// "crosshair" block. The line after the key is taken to be the opening
// brace unless the key line carries it.
func crosshairBlock(lines []string) (int, bool) {
	for i, l := range lines {
		if !hasKey(l, keyCrosshair) {
			continue
		}
		if strings.Contains(l, "{") {
			return i + 1, true
		}
		return i + 2, true
	}
	return 0, false
}

// crosshairFileLine returns the index of the first "file" line following
// the crosshair key.
func crosshairFileLine(lines []string) (int, bool) {
	start, ok := crosshairBlock(lines)
	if !ok {
		return 0, false
	}

	for i := start; i < len(lines); i++ {
		if hasKey(lines[i], keyFile) {
			return i, true
		}
	}
	return 0, false
}

// explosionLine returns the index of the first ExplosionEffect line.
func explosionLine(lines []string) (int, bool) {
	for i, l := range lines {
		if hasKey(l, KeyExplosionEffect) {
			return i, true
		}
	}
	return 0, false
}
