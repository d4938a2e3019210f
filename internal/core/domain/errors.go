package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptySequence is returned when an identity would have no codepoints.
	ErrEmptySequence = zerr.New("empty codepoint sequence")

	// ErrInvalidRegion is returned when a string is not an ISO 3166-1/2 code.
	ErrInvalidRegion = zerr.New("not a valid region code")

	// ErrMalformedTable is returned when a data line's codepoint field cannot
	// be parsed; it aborts that file only, the build degrades and continues.
	ErrMalformedTable = zerr.New("malformed table")

	// ErrNoUsableTables is returned when every input table failed to parse.
	// Without any table the required glyph set is unknown, so this is fatal.
	ErrNoUsableTables = zerr.New("no usable emoji table")

	// ErrMissingAsset marks an identity required by tables with no source
	// image on disk. Warn and omit, never fatal.
	ErrMissingAsset = zerr.New("missing source image")

	// ErrRenderFailure marks a per-glyph rasterization, compression or I/O
	// failure. The glyph's cache record is left untouched so the next run
	// retries it.
	ErrRenderFailure = zerr.New("render failure")

	// ErrCacheCorruption is reported once when the persisted cache state is
	// unreadable; the cache restarts empty and everything rebuilds.
	ErrCacheCorruption = zerr.New("cache state corrupt")

	// ErrAssemblyFailure is returned when the font-assembly backend rejects
	// the final mapping or fails to produce output. Fatal for the run, but
	// artifacts and cache remain valid for the next attempt.
	ErrAssemblyFailure = zerr.New("font assembly failed")

	// ErrBuildFailed wraps fatal build errors so the CLI can map them to an
	// exit code without double-logging.
	ErrBuildFailed = zerr.New("build failed")
)
