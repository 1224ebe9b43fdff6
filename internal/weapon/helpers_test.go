package weapon_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const scriptsDir = "/tf/scripts"

type testCrosshair struct {
	stem          string
	width, height int
}

func (c testCrosshair) Stem() string              { return c.stem }
func (c testCrosshair) Size() (width, height int) { return c.width, c.height }

// fixture returns the contents of a file under testdata.
func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

// scriptFS returns an in-memory filesystem holding the given scripts
// under scriptsDir.
func scriptFS(t *testing.T, scripts map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(scriptsDir, 0o755))
	for name, content := range scripts {
		require.NoError(t, afero.WriteFile(fsys, scriptPath(name), []byte(content), 0o644))
	}
	return fsys
}

func scriptPath(name string) string {
	return filepath.Join(scriptsDir, name)
}

// changedLines returns the indices of lines that differ between a and b,
// which must have the same number of lines.
func changedLines(t *testing.T, a, b string) []int {
	t.Helper()
	la := strings.SplitAfter(a, "\n")
	lb := strings.SplitAfter(b, "\n")
	require.Len(t, lb, len(la))

	var changed []int
	for i := range la {
		if la[i] != lb[i] {
			changed = append(changed, i)
		}
	}
	return changed
}

// lineIndex returns the index of the first line containing substr.
func lineIndex(t *testing.T, text, substr string, after int) int {
	t.Helper()
	for i, l := range strings.SplitAfter(text, "\n") {
		if i > after && strings.Contains(l, substr) {
			return i
		}
	}
	t.Fatalf("no line containing %q after %d", substr, after)
	return -1
}

// deniedFs fails every open.
type deniedFs struct {
	afero.Fs
}

func (deniedFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("permission denied")}
}
