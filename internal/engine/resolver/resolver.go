// Package resolver merges parsed tables and binds every required emoji to a
// source image.
package resolver

import (
	"slices"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
)

// Resolver computes the set of emoji a build must produce and the source
// image backing each of them.
type Resolver struct {
	logger ports.Logger
}

// New creates a new Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Options control which table entries become build requirements.
type Options struct {
	// NoSequences restricts the build to single-codepoint emoji.
	NoSequences bool
}

// Resolve merges entries from all tables, applies the qualification filter
// and looks up a source image for every requirement. Requirements without a
// source keep an empty SourcePath so the caller can report them.
func (r *Resolver) Resolve(entries []domain.TableEntry, aliases map[domain.Identity]domain.Identity, inv *domain.Inventory, opts Options) []domain.AssetBinding {
	merged := merge(entries)

	ids := make([]domain.Identity, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, domain.Identity.Compare)

	// Qualification statuses only mean something when a test table was
	// among the inputs.
	statusAware := false
	for _, e := range merged {
		if e.Status != domain.StatusUnspecified {
			statusAware = true
			break
		}
	}

	bindings := make([]domain.AssetBinding, 0, len(ids))
	for _, id := range ids {
		entry := merged[id]

		if opts.NoSequences && (entry.Kind.Sequence() || id.Len() > 1) {
			continue
		}
		// Lesser qualified variants of a sequence share the fully
		// qualified form's glyph, so they are not built separately.
		if statusAware && id.Len() > 1 && skippableStatus(entry.Status) {
			continue
		}

		bindings = append(bindings, domain.AssetBinding{
			Identity:   id,
			Kind:       entry.Kind,
			Name:       entry.Name,
			SourcePath: r.findSource(id, aliases, inv),
		})
	}

	return bindings
}

func skippableStatus(s domain.Status) bool {
	return s == domain.StatusMinimallyQualified || s == domain.StatusUnqualified
}

// merge deduplicates entries from different tables. The most specific kind
// wins, names and statuses fill in from whichever table provides them.
func merge(entries []domain.TableEntry) map[domain.Identity]domain.TableEntry {
	merged := make(map[domain.Identity]domain.TableEntry, len(entries))
	for _, entry := range entries {
		prev, ok := merged[entry.Identity]
		if !ok {
			merged[entry.Identity] = entry
			continue
		}

		prev.Kind = prev.Kind.MoreSpecific(entry.Kind)
		if prev.Name == "" {
			prev.Name = entry.Name
		}
		if prev.Status == domain.StatusUnspecified {
			prev.Status = entry.Status
		}
		merged[entry.Identity] = prev
	}
	return merged
}

// findSource locates the image for an identity. Flags resolve through the
// region code index first. Sequences missing an exact image fall back to
// their form without presentation selectors, then to their alias target.
func (r *Resolver) findSource(id domain.Identity, aliases map[domain.Identity]domain.Identity, inv *domain.Inventory) string {
	if code, ok := id.RegionCode(); ok {
		if path, ok := inv.Flags[code]; ok {
			return path
		}
	}

	if path, ok := inv.Images[id]; ok {
		return path
	}

	if stripped, changed := id.StripPresentation(); changed {
		if path, ok := inv.Images[stripped]; ok {
			return path
		}
	}

	if target, ok := aliases[id]; ok {
		if path, ok := inv.Images[target]; ok {
			return path
		}
		if stripped, changed := target.StripPresentation(); changed {
			if path, ok := inv.Images[stripped]; ok {
				return path
			}
		}
	}

	return ""
}
