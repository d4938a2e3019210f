package domain

import "strings"

// Kind classifies a glyph identity by the table section that produced it.
// The classification is a best-effort annotation, never a key: the same
// identity may be listed under several properties, in which case the most
// specific kind wins (see MoreSpecific).
type Kind int

// Kinds in ascending order of specificity.
const (
	// KindSingle is a plain single-codepoint emoji.
	KindSingle Kind = iota
	// KindComponent is a building block (skin tones, hair styles) that is
	// still rendered as a glyph of its own.
	KindComponent
	// KindRegion is a subdivision flag resolved via a tag sequence.
	KindRegion
	// KindKeycap is a keycap sequence (base + U+FE0F + U+20E3).
	KindKeycap
	// KindModifier is a base emoji followed by a skin-tone modifier.
	KindModifier
	// KindZWJ is a zero-width-joiner sequence.
	KindZWJ
	// KindFlag is a country flag formed by a regional-indicator pair.
	KindFlag
)

var kindNames = [...]string{
	KindSingle:    "Single",
	KindComponent: "Component",
	KindRegion:    "Region",
	KindKeycap:    "Keycap",
	KindModifier:  "Modifier",
	KindZWJ:       "ZWJ",
	KindFlag:      "Flag",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Sequence reports whether glyphs of this kind are multi-codepoint
// sequences, i.e. excluded when the build is restricted to singles.
func (k Kind) Sequence() bool {
	switch k {
	case KindModifier, KindZWJ, KindFlag, KindRegion, KindKeycap:
		return true
	default:
		return false
	}
}

// MoreSpecific returns the more specific of two kinds. Ties keep the
// receiver. The precedence is fixed (Flag > ZWJ > Modifier > Keycap >
// Region > Component > Single) so the result never depends on table read
// order.
func (k Kind) MoreSpecific(other Kind) Kind {
	if other > k {
		return other
	}
	return k
}

// ParseKind maps a Unicode table property name onto a Kind. Matching is
// case-insensitive and tolerates the RGI_ prefix and underscore, dash or
// space separators, so "RGI_Emoji_ZWJ_Sequence" and "emoji zwj sequence"
// both parse.
func ParseKind(property string) (Kind, bool) {
	p := strings.ToLower(strings.TrimSpace(property))
	p = strings.NewReplacer("_", " ", "-", " ").Replace(p)
	p = strings.TrimSpace(strings.TrimPrefix(p, "rgi "))

	switch p {
	case "emoji", "basic emoji", "emoji presentation", "extended pictographic":
		return KindSingle, true
	case "emoji component":
		return KindComponent, true
	case "emoji modifier", "emoji modifier base":
		// Modifier bases and the modifiers themselves are plain glyph
		// candidates; only the combined sequence is KindModifier.
		return KindComponent, true
	case "emoji modifier sequence":
		return KindModifier, true
	case "emoji zwj sequence":
		return KindZWJ, true
	case "emoji flag sequence":
		return KindFlag, true
	case "emoji tag sequence":
		return KindRegion, true
	case "emoji keycap sequence":
		return KindKeycap, true
	default:
		return KindSingle, false
	}
}
