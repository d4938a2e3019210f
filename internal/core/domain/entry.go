package domain

// TableShape identifies which of the three supported table formats produced
// an entry.
type TableShape int

const (
	// ShapeData is a flat property table (codepoint/range ; property).
	ShapeData TableShape = iota
	// ShapeSequence is a sequence table (sequence ; property ; description).
	ShapeSequence
	// ShapeTest is the emoji-test format (sequence ; status # emoji Ever name).
	ShapeTest
)

// Status is the qualification status from emoji-test formatted tables.
type Status int

const (
	// StatusUnspecified means no emoji-test table mentioned the identity.
	StatusUnspecified Status = iota
	// StatusComponent marks sequence building blocks.
	StatusComponent
	// StatusFullyQualified marks the canonical form of a sequence.
	StatusFullyQualified
	// StatusMinimallyQualified marks a form missing some variation selectors.
	StatusMinimallyQualified
	// StatusUnqualified marks a form missing all variation selectors.
	StatusUnqualified
)

// ParseStatus maps an emoji-test status field onto a Status.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "component":
		return StatusComponent, true
	case "fully-qualified":
		return StatusFullyQualified, true
	case "minimally-qualified":
		return StatusMinimallyQualified, true
	case "unqualified":
		return StatusUnqualified, true
	default:
		return StatusUnspecified, false
	}
}

// TableEntry is one parsed table line (ranges expand to one entry per
// codepoint). Entries are build-run-scoped: produced by the table parser,
// consumed by the resolver, then discarded.
type TableEntry struct {
	Identity Identity
	Kind     Kind
	Name     string
	Status   Status
	// Source is the table file the entry came from, for diagnostics.
	Source string
}

// AssetBinding binds a required glyph identity to its source image.
// SourcePath is empty when no matching file exists, which is a build
// warning, not an error: partial emoji sets are a valid build target.
type AssetBinding struct {
	Identity   Identity
	Kind       Kind
	Name       string
	SourcePath string
}

// HasSource reports whether a source image was found for the identity.
func (b AssetBinding) HasSource() bool {
	return b.SourcePath != ""
}

// BuildJob is the ephemeral unit of work for one glyph that needs
// (re)rendering. Owned exclusively by the rendering pipeline; jobs are
// partitioned by identity, no two jobs share one.
type BuildJob struct {
	Identity   Identity
	SourcePath string
	TargetPath string
	InputHash  string
}

// Inventory is the scanned on-disk asset listing: identities decoded from
// the images directory and region codes from the optional flags directory.
type Inventory struct {
	// Images maps identities decoded from filenames to their paths.
	Images map[Identity]string
	// Flags maps uppercase ISO region codes to flag image paths.
	Flags map[string]string
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		Images: make(map[Identity]string),
		Flags:  make(map[string]string),
	}
}
