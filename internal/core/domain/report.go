package domain

import "fmt"

// Failure records one glyph the pipeline could not build.
type Failure struct {
	Identity Identity
	Err      error
}

// Report accumulates the outcome of one build run. Everything except fatal
// errors degrades into counts and lists surfaced here at the end of the run.
type Report struct {
	// Planned is the number of resolved bindings considered for building.
	Planned int
	// Rendered is the number of glyphs actually (re)rendered this run.
	Rendered int
	// Cached is the number of glyphs whose cache record was still valid.
	Cached int
	// Missing lists identities required by the tables with no source image.
	Missing []Identity
	// Failed lists per-glyph render failures; siblings are unaffected.
	Failed []Failure
	// SkippedTables lists input tables dropped as malformed.
	SkippedTables []string
}

// Summary renders the one-line closing summary of a build run.
func (r *Report) Summary() string {
	return fmt.Sprintf("rendered %d, cached %d, missing %d, failed %d of %d glyphs",
		r.Rendered, r.Cached, len(r.Missing), len(r.Failed), r.Planned)
}

// Clean reports whether the run completed without degradation.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Failed) == 0 && len(r.SkippedTables) == 0
}
