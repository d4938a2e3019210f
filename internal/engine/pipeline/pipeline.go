// Package pipeline renders glyphs in parallel, served by the build cache.
package pipeline

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Pipeline turns asset bindings into rendered glyph files.
type Pipeline struct {
	cache      ports.BuildCache
	hasher     ports.Hasher
	rasterizer ports.Rasterizer
	encoder    ports.Encoder
	logger     ports.Logger
	telemetry  ports.Telemetry
}

// New creates a new Pipeline.
func New(
	cache ports.BuildCache,
	hasher ports.Hasher,
	rasterizer ports.Rasterizer,
	encoder ports.Encoder,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		cache:      cache,
		hasher:     hasher,
		rasterizer: rasterizer,
		encoder:    encoder,
		logger:     logger,
		telemetry:  telemetry,
	}
}

// Options control a pipeline run.
type Options struct {
	// GlyphDir receives the rendered glyph files.
	GlyphDir string
	// Resolution is the square pixel size of rendered glyphs.
	Resolution int
	// Workers bounds render parallelism. Zero means one per CPU.
	Workers int
	// Separator joins codepoints in glyph file names.
	Separator string
}

// Run renders every binding that is not already served by the cache. A
// failing glyph is recorded in the report without aborting the others, so
// one broken source does not hide every other problem in the set. Run only
// returns an error when the run as a whole cannot proceed.
func (p *Pipeline) Run(ctx context.Context, bindings []domain.AssetBinding, opts Options) (*domain.Report, error) {
	report := &domain.Report{Planned: len(bindings)}

	if err := os.MkdirAll(opts.GlyphDir, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create glyph directory")
	}

	renderCfg := domain.RenderConfig{
		Resolution:  opts.Resolution,
		RendererTag: p.rasterizer.Version(),
	}

	var jobs []domain.BuildJob
	for _, binding := range bindings {
		if !binding.HasSource() {
			report.Missing = append(report.Missing, binding.Identity)
			continue
		}

		key := binding.Identity.Key()
		inputHash, err := p.hasher.ContentHash(binding.SourcePath, renderCfg)
		if err != nil {
			report.Failed = append(report.Failed, domain.Failure{Identity: binding.Identity, Err: err})
			continue
		}

		if p.cache.IsValid(key, inputHash) {
			_, vertex := p.telemetry.Record(ctx, "render "+key)
			vertex.Cached()
			vertex.Done(nil)
			report.Cached++
			continue
		}

		jobs = append(jobs, domain.BuildJob{
			Identity:   binding.Identity,
			SourcePath: binding.SourcePath,
			TargetPath: filepath.Join(opts.GlyphDir, domain.EncodeFileStem(binding.Identity, opts.Separator)+p.encoder.Extension()),
			InputHash:  inputHash,
		})
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, j := range jobs {
		// A cancelled context stops dispatching new work. Glyphs already
		// in flight finish and stay cached.
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			err := p.render(ctx, j, renderCfg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, domain.Failure{Identity: j.Identity, Err: err})
			} else {
				report.Rendered++
			}
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // workers never return errors, failures land in the report

	return report, ctx.Err()
}

func (p *Pipeline) render(ctx context.Context, j domain.BuildJob, renderCfg domain.RenderConfig) error {
	vctx, vertex := p.telemetry.Record(ctx, "render "+j.Identity.Key())
	err := p.renderOne(vctx, j, renderCfg)
	vertex.Done(err)
	return err
}

func (p *Pipeline) renderOne(_ context.Context, j domain.BuildJob, renderCfg domain.RenderConfig) error {
	data, err := os.ReadFile(j.SourcePath) //nolint:gosec // Path comes from the scanned inventory
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source"), "path", j.SourcePath)
	}

	img, err := p.rasterizer.Rasterize(data, renderCfg.Resolution)
	if err != nil {
		return zerr.With(err, "source", j.SourcePath)
	}

	if err := p.writeAtomic(j.TargetPath, img); err != nil {
		return err
	}

	artifactHash, err := p.hasher.FileHash(j.TargetPath)
	if err != nil {
		return err
	}

	return p.cache.Put(j.Identity.Key(), domain.CacheRecord{
		InputHash:    j.InputHash,
		ArtifactHash: artifactHash,
		ArtifactPath: j.TargetPath,
		BuiltAt:      time.Now().UTC(),
	})
}

// writeAtomic encodes into a temp file and renames it into place, so a
// crashed run never leaves a truncated glyph behind.
func (p *Pipeline) writeAtomic(target string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".glyph-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after successful rename

	if err := p.encoder.Encode(tmp, img); err != nil {
		_ = tmp.Close() //nolint:errcheck // already failing
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close() //nolint:errcheck // already failing
		return zerr.Wrap(err, "failed to sync glyph")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close glyph")
	}

	// CreateTemp uses 0600, widen to the usual artifact mode.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return zerr.Wrap(err, "failed to chmod glyph")
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return zerr.Wrap(err, "failed to move glyph into place")
	}
	return nil
}
