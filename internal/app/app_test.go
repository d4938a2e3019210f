package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moji/internal/adapters/assembly"
	"go.trai.ch/moji/internal/adapters/assets"
	"go.trai.ch/moji/internal/adapters/cache"
	"go.trai.ch/moji/internal/adapters/config"
	"go.trai.ch/moji/internal/adapters/fs"
	"go.trai.ch/moji/internal/adapters/logger"
	"go.trai.ch/moji/internal/adapters/pngenc"
	"go.trai.ch/moji/internal/adapters/svg"
	"go.trai.ch/moji/internal/adapters/tables"
	"go.trai.ch/moji/internal/adapters/telemetry"
	"go.trai.ch/moji/internal/app"
	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/engine/pipeline"
	"go.trai.ch/moji/internal/engine/resolver"
)

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <circle cx="5" cy="5" r="4" fill="#ffcc00"/>
</svg>`

func newApp(t *testing.T) *app.App {
	t.Helper()
	log := logger.New()
	hasher := fs.NewHasher()
	store := cache.NewStore(log, hasher)
	pipe := pipeline.New(store, hasher, svg.NewRasterizer(), pngenc.NewEncoder(), log, telemetry.NewNoOp())

	return app.New(
		&config.FileConfigLoader{},
		tables.NewParser(),
		assets.NewScanner(log),
		store,
		resolver.New(log),
		pipe,
		assembly.NewRunner(log),
		log,
	)
}

// workspace lays out a minimal project: a config, one data table, one zwj
// table and matching svg sources.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeWorkspaceFile(t, dir, "moji.yaml", `
images: svg
tables:
  - emoji-data.txt
  - emoji-zwj-sequences.txt
resolution: 32
workers: 2
`)
	writeWorkspaceFile(t, dir, "emoji-data.txt", "1F600 ; Emoji # grinning face\n1F601 ; Emoji\n")
	writeWorkspaceFile(t, dir, "emoji-zwj-sequences.txt", "1F469 200D 1F4BB ; RGI_Emoji_ZWJ_Sequence ; woman technologist\n")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "svg"), 0o755))
	writeWorkspaceFile(t, dir, "svg/1f600.svg", circleSVG)
	writeWorkspaceFile(t, dir, "svg/1f601.svg", circleSVG)
	writeWorkspaceFile(t, dir, "svg/1f469_200d_1f4bb.svg", circleSVG)

	return dir
}

func writeWorkspaceFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuildEndToEnd(t *testing.T) {
	dir := workspace(t)
	a := newApp(t)

	report, err := a.Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Rendered)
	assert.True(t, report.Clean())

	// Glyphs and manifest land in the build dir.
	_, err = os.Stat(filepath.Join(dir, "build", "glyphs", "1f600.png"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "build", "glyphs", "1f469_200d_1f4bb.png"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "build", "manifest.json"))
	require.NoError(t, err)
	var manifest domain.Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, 32, manifest.Resolution)
	assert.Len(t, manifest.Glyphs, 3)
}

func TestBuildIncremental(t *testing.T) {
	dir := workspace(t)

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	require.Equal(t, 3, report.Rendered)

	// A fresh process sees the cache on disk and renders nothing.
	report, err = newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Rendered)
	assert.Equal(t, 3, report.Cached)
}

func TestBuildNoSequences(t *testing.T) {
	dir := workspace(t)

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath:  filepath.Join(dir, "moji.yaml"),
		NoSequences: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Planned)
	assert.Equal(t, 2, report.Rendered)
}

func TestBuildNoSequencesFromConfig(t *testing.T) {
	dir := workspace(t)
	writeWorkspaceFile(t, dir, "moji.yaml", `
images: svg
tables:
  - emoji-data.txt
  - emoji-zwj-sequences.txt
resolution: 32
noSequences: true
`)

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Planned)
	assert.Equal(t, 2, report.Rendered)
}

func TestBuildReportsMissingSource(t *testing.T) {
	dir := workspace(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "svg", "1f601.svg")))

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "1f601", report.Missing[0].Key())
}

func TestBuildSkipsUnusableTable(t *testing.T) {
	dir := workspace(t)
	writeWorkspaceFile(t, dir, "emoji-zwj-sequences.txt", "garbage line without semicolons\n")

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	require.Len(t, report.SkippedTables, 1)
	assert.Equal(t, 2, report.Rendered)
}

func TestBuildFailsWithoutUsableTables(t *testing.T) {
	dir := workspace(t)
	writeWorkspaceFile(t, dir, "emoji-data.txt", "garbage\n")
	writeWorkspaceFile(t, dir, "emoji-zwj-sequences.txt", "garbage\n")

	_, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoUsableTables))
}

func TestBuildFailsOnBrokenSource(t *testing.T) {
	dir := workspace(t)
	writeWorkspaceFile(t, dir, "svg/1f601.svg", "broken")

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 2, report.Rendered)
}

func TestBuildSweepsRemovedEmoji(t *testing.T) {
	dir := workspace(t)

	_, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)

	// Drop 1F601 from the table and rebuild.
	writeWorkspaceFile(t, dir, "emoji-data.txt", "1F600 ; Emoji\n")

	report, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Planned)

	_, statErr := os.Stat(filepath.Join(dir, "build", "glyphs", "1f601.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildRenderOnly(t *testing.T) {
	dir := workspace(t)

	_, err := newApp(t).Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
		RenderOnly: true,
	})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "build", "manifest.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestClean(t *testing.T) {
	dir := workspace(t)
	a := newApp(t)

	_, err := a.Build(context.Background(), app.BuildOptions{
		ConfigPath: filepath.Join(dir, "moji.yaml"),
	})
	require.NoError(t, err)

	require.NoError(t, a.Clean(app.BuildOptions{ConfigPath: filepath.Join(dir, "moji.yaml")}))

	_, statErr := os.Stat(filepath.Join(dir, "build"))
	assert.True(t, os.IsNotExist(statErr))
}
