package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossyrian/crosshair-switcher/internal/catalog"
	"github.com/ossyrian/crosshair-switcher/internal/config"
	"github.com/ossyrian/crosshair-switcher/internal/switcher"
	"github.com/ossyrian/crosshair-switcher/internal/vtf"
	"github.com/ossyrian/crosshair-switcher/internal/vtf/vtftest"
)

type testEnv struct {
	app  *app
	out  *bytes.Buffer
	logs *bytes.Buffer
}

// newTestEnv builds an app over an in-memory game directory holding the
// grenade launcher and flare gun scripts and two crosshair textures.
func newTestEnv(t *testing.T, dryRun bool) *testEnv {
	t.Helper()

	cfg := config.Defaults("/tf")
	cfg.DryRun = dryRun

	fsys := afero.NewMemMapFs()
	for _, name := range []string{"tf_weapon_grenadelauncher.txt", "tf_weapon_flaregun.txt"} {
		data, err := os.ReadFile(filepath.Join("internal", "weapon", "testdata", name))
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(cfg.ScriptsDir, name), data, 0o644))
	}
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(cfg.ScriptsDir, "tf_weapon_custom.txt"), []byte("WeaponData\n"), 0o644))

	texture := vtftest.Build(vtftest.Texture{
		Minor:  5,
		Width:  48,
		Height: 24,
		Format: vtf.FormatRGBA8888,
		Data:   vtftest.Solid(48, 24, 0, 0, 255, 255),
	})
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(cfg.ThumbnailsDir, "bigcross.vtf"), texture, 0o644))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(cfg.ThumbnailsDir, "broken.vtf"), []byte("VTF"), 0o644))

	var out, logs bytes.Buffer
	return &testEnv{
		app: &app{
			fs:     fsys,
			cfg:    &cfg,
			out:    &out,
			logger: slog.New(slog.NewTextHandler(&logs, nil)),
		},
		out:  &out,
		logs: &logs,
	}
}

func (e *testEnv) service(t *testing.T) *switcher.Service {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	svc := switcher.New(e.app.fs, cat, switcher.Options{
		ScriptsDir: e.app.cfg.ScriptsDir,
		Workers:    e.app.cfg.WorkerCount(),
		DryRun:     e.app.cfg.DryRun,
		Logger:     e.app.logger,
	})
	_, err = svc.LoadAll()
	require.NoError(t, err)

	return svc
}

func (e *testEnv) script(t *testing.T, id string) string {
	t.Helper()
	data, err := afero.ReadFile(e.app.fs, filepath.Join(e.app.cfg.ScriptsDir, id+".txt"))
	require.NoError(t, err)
	return string(data)
}

func TestList(t *testing.T) {
	env := newTestEnv(t, false)

	require.NoError(t, runList(env.app, env.service(t), listOptions{}))

	lines := strings.Split(strings.TrimSpace(env.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Pyro", "Flare", "Gun", "crosshairs"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Demoman", "Grenade", "Launcher", "crosshairs"}, strings.Fields(lines[1]))
	assert.Contains(t, env.logs.String(), "Skipping tf_weapon_scattergun")
}

func TestList_Explosions(t *testing.T) {
	env := newTestEnv(t, false)

	require.NoError(t, runList(env.app, env.service(t), listOptions{explosions: true}))

	out := env.out.String()
	assert.Contains(t, out, "> Demoman")
	assert.NotContains(t, out, "> Pyro")
	assert.Contains(t, out, "Default")
}

func TestList_JSON(t *testing.T) {
	env := newTestEnv(t, false)

	require.NoError(t, runList(env.app, env.service(t), listOptions{json: true}))

	var rows []listRow
	require.NoError(t, sonic.Unmarshal(env.out.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, listRow{
		ID:        "tf_weapon_grenadelauncher",
		Class:     "Demoman",
		Display:   "Grenade Launcher",
		Slot:      1,
		Crosshair: "crosshairs",
		Explosion: "Default",
	}, rows[1])
}

func TestList_Check(t *testing.T) {
	env := newTestEnv(t, false)

	require.NoError(t, runList(env.app, env.service(t), listOptions{check: true}))
	assert.Contains(t, env.logs.String(), "id=tf_weapon_custom")
}

func TestInfo(t *testing.T) {
	env := newTestEnv(t, false)
	cat, err := catalog.Load()
	require.NoError(t, err)

	require.NoError(t, runInfo(env.app, cat, "tf_weapon_grenadelauncher"))

	out := env.out.String()
	for _, want := range []string{
		"Class: Demoman\n",
		"Weapon Class: tf_weapon_grenadelauncher\n",
		"Category: Grenade Launcher\n",
		"Slot: Primary\n",
		"Affected Weapons:\n  - Grenade Launcher\n  - Loch-n-Load\n",
		"Crosshair: sprites/crosshairs\n",
		"Explosion: Default\n",
	} {
		assert.Contains(t, out, want)
	}

	err = runInfo(env.app, cat, "tf_weapon_nothing")
	assert.ErrorContains(t, err, "not in catalog")
}

func TestCrosshairs(t *testing.T) {
	env := newTestEnv(t, false)

	require.NoError(t, runCrosshairs(env.app, crosshairsOptions{exportDir: "/previews"}))

	out := env.out.String()
	assert.Contains(t, out, "48x24")
	assert.Contains(t, out, "broken")
	assert.Contains(t, env.logs.String(), "Skipping broken.vtf")

	exists, err := afero.Exists(env.app.fs, "/previews/bigcross.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestApply(t *testing.T) {
	env := newTestEnv(t, false)
	svc := env.service(t)
	items, err := env.app.crosshairs()
	require.NoError(t, err)

	err = runApply(env.app, svc, items, applyOptions{crosshair: "bigcross", class: "Demoman"})
	require.NoError(t, err)

	assert.Contains(t, env.script(t, "tf_weapon_grenadelauncher"), "\"vgui/replay/thumbnails/bigcross\"")
	assert.Contains(t, env.script(t, "tf_weapon_grenadelauncher"), "\"width\"\t\t\"48\"")
	assert.NotContains(t, env.script(t, "tf_weapon_flaregun"), "bigcross")
	assert.Contains(t, env.logs.String(), "tf_weapon_grenadelauncher: crosshairs -> bigcross")
}

func TestApply_Selection(t *testing.T) {
	env := newTestEnv(t, false)
	svc := env.service(t)
	items, err := env.app.crosshairs()
	require.NoError(t, err)

	err = runApply(env.app, svc, items, applyOptions{crosshair: "bigcross"})
	assert.ErrorIs(t, err, switcher.ErrNoSelection)

	err = runApply(env.app, svc, items, applyOptions{crosshair: "bigcross", ids: []string{"tf_weapon_flaregun"}, all: true})
	assert.Error(t, err)

	err = runApply(env.app, svc, items, applyOptions{crosshair: "circle", all: true})
	assert.ErrorContains(t, err, "not found")
}

func TestApply_DryRun(t *testing.T) {
	env := newTestEnv(t, true)
	before := env.script(t, "tf_weapon_flaregun")
	svc := env.service(t)
	items, err := env.app.crosshairs()
	require.NoError(t, err)

	require.NoError(t, runApply(env.app, svc, items, applyOptions{crosshair: "bigcross", all: true}))
	assert.Equal(t, before, env.script(t, "tf_weapon_flaregun"))
}

func TestExplosion(t *testing.T) {
	env := newTestEnv(t, false)
	svc := env.service(t)

	require.NoError(t, runExplosion(svc, "pyro pool", "tf_weapon_grenadelauncher"))
	assert.Equal(t, 3, strings.Count(env.script(t, "tf_weapon_grenadelauncher"), "eotl_pyro_pool_explosion_flash"))

	assert.Error(t, runExplosion(svc, "pyro pool", "tf_weapon_flaregun"))
}

func TestExplosion_EmptyEffect(t *testing.T) {
	env := newTestEnv(t, false)
	svc := env.service(t)
	before := env.script(t, "tf_weapon_grenadelauncher")

	for _, effect := range []string{"", "   ", "\t"} {
		err := runExplosion(svc, effect, "tf_weapon_grenadelauncher")
		assert.ErrorIs(t, err, switcher.ErrNoEffect)
	}
	assert.Equal(t, before, env.script(t, "tf_weapon_grenadelauncher"))
}

func TestEffects(t *testing.T) {
	env := newTestEnv(t, false)

	runEffects(env.app)

	out := env.out.String()
	assert.Contains(t, out, "Sapper Destroyed")
	assert.Contains(t, out, "ExplosionCore_wall")
	assert.Contains(t, out, "  - tf_weapon_cannon\n")
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t, true)

	require.NoError(t, runConfigShow(env.app))

	var got config.Config
	require.NoError(t, toml.Unmarshal(env.out.Bytes(), &got))
	assert.Equal(t, *env.app.cfg, got)
}
