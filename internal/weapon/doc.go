// Package weapon reads and patches TF2 weapon scripts.
//
// Scripts are handled as lines, not parsed into a tree, so a patch changes
// only the value tokens it targets and every other byte is kept. A line
// matches a key when, after trimming, it starts with the quoted key. Its
// value is the next token: a quoted token runs to its closing quote and may
// hold spaces or follow the key with no space between them (`"file""x"`
// reads x), while an unquoted token ends at whitespace.
//
// The crosshair is the first "file" line after the "crosshair" key. The
// line following the key is taken as the opening brace and skipped, unless
// the key line carries the brace itself, as in `"crosshair" {`, in which
// case nothing is skipped. Load and PatchCrosshair share this rule.
package weapon
