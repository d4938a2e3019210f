// Package app implements the application layer for moji.
package app

import (
	"context"
	"os"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/moji/internal/engine/pipeline"
	"go.trai.ch/moji/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	parser       ports.TableParser
	scanner      ports.AssetScanner
	cache        ports.BuildCache
	resolver     *resolver.Resolver
	pipeline     *pipeline.Pipeline
	assembler    ports.Assembler
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser ports.TableParser,
	scanner ports.AssetScanner,
	buildCache ports.BuildCache,
	res *resolver.Resolver,
	pipe *pipeline.Pipeline,
	assembler ports.Assembler,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		parser:       parser,
		scanner:      scanner,
		cache:        buildCache,
		resolver:     res,
		pipeline:     pipe,
		assembler:    assembler,
		logger:       logger,
	}
}

// BuildOptions carry the command line overrides for a build.
type BuildOptions struct {
	// ConfigPath locates the configuration file. Empty means moji.yaml in
	// the working directory.
	ConfigPath string
	// NoSequences restricts the build to single-codepoint emoji when set,
	// regardless of the configured value.
	NoSequences bool
	// Resolution overrides the configured glyph size when positive.
	Resolution int
	// Workers overrides the configured parallelism when positive.
	Workers int
	// RenderOnly stops after rendering, skipping font assembly.
	RenderOnly bool
}

// Build runs the whole pipeline: parse tables, resolve sources, render
// glyphs and hand the result to the assembler.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.Report, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Resolution > 0 {
		cfg.Resolution = opts.Resolution
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.NoSequences {
		cfg.NoSequences = true
	}

	entries, skipped, err := a.parseTables(cfg.Tables)
	if err != nil {
		return nil, err
	}

	aliases := map[domain.Identity]domain.Identity{}
	if cfg.AliasFile != "" {
		aliases, err = a.parser.ParseAliasFile(cfg.AliasFile)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load aliases")
		}
	}

	inventory, err := a.scanner.Scan(cfg.ImagesDir, cfg.FlagsDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan source images")
	}

	bindings := a.resolver.Resolve(entries, aliases, inventory, resolver.Options{
		NoSequences: cfg.NoSequences,
	})
	a.logger.Info("resolved build set", "emoji", len(bindings), "images", len(inventory.Images), "flags", len(inventory.Flags))

	if err := a.cache.Load(cfg.CachePath()); err != nil {
		return nil, zerr.Wrap(err, "failed to load build cache")
	}

	report, err := a.pipeline.Run(ctx, bindings, pipeline.Options{
		GlyphDir:   cfg.GlyphDir(),
		Resolution: cfg.Resolution,
		Workers:    cfg.Workers,
		Separator:  cfg.Separator,
	})
	if err != nil {
		return report, err
	}
	report.SkippedTables = skipped

	a.sweep(bindings)

	for _, id := range report.Missing {
		a.logger.Warn(domain.ErrMissingAsset.Error(), "sequence", id.Key())
	}
	for _, failure := range report.Failed {
		a.logger.Error(zerr.With(failure.Err, "sequence", failure.Identity.Key()))
	}

	if !opts.RenderOnly {
		manifest := a.buildManifest(cfg, bindings)
		output, err := a.assembler.Assemble(ctx, cfg.Assembler, manifest, cfg.ManifestPath())
		if err != nil {
			return report, err
		}
		a.logger.Info("assembly finished", "output", output)
	}

	a.logger.Info(report.Summary())

	if len(report.Failed) > 0 {
		return report, zerr.With(domain.ErrBuildFailed, "failed", len(report.Failed))
	}
	return report, nil
}

// Clean removes the build directory, including cache and rendered glyphs.
func (a *App) Clean(opts BuildOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := os.RemoveAll(cfg.BuildDir); err != nil {
		return zerr.Wrap(err, "failed to remove build directory")
	}
	a.logger.Info("removed build directory", "dir", cfg.BuildDir)
	return nil
}

// parseTables reads every configured table. An unreadable or malformed
// table is skipped with a warning, the build only fails when no table
// could be used at all.
func (a *App) parseTables(paths []string) ([]domain.TableEntry, []string, error) {
	var (
		entries []domain.TableEntry
		skipped []string
	)
	for _, path := range paths {
		parsed, err := a.parser.ParseFile(path)
		if err != nil {
			a.logger.Warn("skipping unusable table", "path", path, "error", err)
			skipped = append(skipped, path)
			continue
		}
		entries = append(entries, parsed...)
	}

	if len(skipped) == len(paths) {
		return nil, nil, zerr.With(domain.ErrNoUsableTables, "tables", len(paths))
	}
	return entries, skipped, nil
}

// sweep drops cache records for emoji no longer in the build set.
func (a *App) sweep(bindings []domain.AssetBinding) {
	keep := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		keep[b.Identity.Key()] = struct{}{}
	}

	removed, err := a.cache.Sweep(keep)
	if err != nil {
		a.logger.Warn("cache sweep failed", "error", err)
		return
	}
	if removed > 0 {
		a.logger.Info("swept stale cache records", "removed", removed)
	}
}

// buildManifest collects the rendered artifacts for the assembler.
func (a *App) buildManifest(cfg *domain.BuildConfig, bindings []domain.AssetBinding) domain.Manifest {
	manifest := domain.Manifest{Resolution: cfg.Resolution}
	for _, b := range bindings {
		record, ok := a.cache.Get(b.Identity.Key())
		if !ok {
			continue
		}
		manifest.Glyphs = append(manifest.Glyphs, domain.GlyphArtifact{
			Identity: b.Identity,
			Name:     b.Name,
			Path:     record.ArtifactPath,
		})
	}
	return manifest
}
