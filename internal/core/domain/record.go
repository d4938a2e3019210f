package domain

import "time"

// CacheRecord is the persisted per-glyph build state. It is the only entity
// with cross-run lifetime, owned and mutated exclusively by the build cache.
// A record is stale unless its artifact still exists with exactly the bytes
// hashed into ArtifactHash.
type CacheRecord struct {
	// InputHash digests the source file bytes together with the render
	// configuration, so changing the resolution or renderer invalidates
	// every record.
	InputHash    string    `json:"input_hash,omitzero"`
	ArtifactHash string    `json:"artifact_hash,omitzero"`
	ArtifactPath string    `json:"artifact_path,omitzero"`
	BuiltAt      time.Time `json:"built_at,omitzero"`
}

// RenderConfig is the part of the build configuration that affects raster
// output. It is folded into every input hash.
type RenderConfig struct {
	// Resolution is the square pixel size of every glyph cell. Uniform
	// across one build; the assembly backend expects a single cell size.
	Resolution int
	// RendererTag identifies the rasterizer implementation and version.
	RendererTag string
}

// AssemblerConfig describes how to invoke the external font-assembly
// backend.
type AssemblerConfig struct {
	// Command is the backend executable followed by fixed arguments; the
	// manifest path is appended as the final argument.
	Command []string `yaml:"command"`
	// Output is the path of the font file the backend is expected to
	// produce.
	Output string `yaml:"output"`
}

// GlyphArtifact is one entry of the final mapping handed to the assembly
// backend.
type GlyphArtifact struct {
	Identity Identity `json:"identity"`
	Name     string   `json:"name,omitzero"`
	Path     string   `json:"path"`
}

// Manifest is the complete glyph-to-artifact mapping plus the per-build
// metadata the backend needs.
type Manifest struct {
	Resolution int             `json:"resolution"`
	Glyphs     []GlyphArtifact `json:"glyphs"`
}
