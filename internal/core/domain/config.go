package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// BuildConfig is the fully resolved build configuration. Loaders fill in
// defaults before handing it out, so consumers can rely on every field
// being usable.
type BuildConfig struct {
	// ImagesDir holds the emoji source images, named by codepoint stem.
	ImagesDir string
	// FlagsDir holds flag source images named by region code. Optional.
	FlagsDir string
	// Tables lists the Unicode data files that define which emoji exist.
	Tables []string
	// AliasFile optionally maps sequences to the sequence whose image
	// they share.
	AliasFile string
	// BuildDir receives rendered glyphs, the cache index and the manifest.
	BuildDir string
	// Resolution is the square pixel size of rendered glyphs.
	Resolution int
	// Workers bounds render parallelism. Zero means one per CPU.
	Workers int
	// NoSequences restricts the build to single-codepoint emoji.
	NoSequences bool
	// Separator joins codepoints in generated glyph filenames.
	Separator string

	Assembler AssemblerConfig
}

// CachePath returns the location of the cache index inside the build dir.
func (c *BuildConfig) CachePath() string {
	return filepath.Join(c.BuildDir, "cache.json")
}

// GlyphDir returns the directory rendered glyphs are written to.
func (c *BuildConfig) GlyphDir() string {
	return filepath.Join(c.BuildDir, "glyphs")
}

// ManifestPath returns the location of the assembly manifest.
func (c *BuildConfig) ManifestPath() string {
	return filepath.Join(c.BuildDir, "manifest.json")
}

// Validate reports the first structural problem with the configuration.
func (c *BuildConfig) Validate() error {
	if c.ImagesDir == "" {
		return zerr.New("images directory must be set")
	}
	if len(c.Tables) == 0 {
		return zerr.New("at least one table must be configured")
	}
	if c.Resolution <= 0 {
		return zerr.With(zerr.New("resolution must be positive"), "resolution", c.Resolution)
	}
	if c.Workers < 0 {
		return zerr.With(zerr.New("workers must not be negative"), "workers", c.Workers)
	}
	return nil
}
