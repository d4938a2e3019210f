package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// Identity is an ordered, non-empty sequence of Unicode scalar values that
// designates one emoji glyph. It is the primary key of the whole pipeline.
// The sequence is interned via unique.Handle, so identities compare and hash
// like scalars and repeated sequences share storage.
type Identity struct {
	h unique.Handle[string]
}

// NewIdentity creates an Identity from a codepoint sequence.
// An empty sequence is rejected.
func NewIdentity(seq []rune) (Identity, error) {
	if len(seq) == 0 {
		return Identity{}, ErrEmptySequence
	}
	return Identity{h: unique.Make(string(seq))}, nil
}

// MustIdentity is NewIdentity for statically known sequences; it panics on an
// empty sequence. Intended for tests and table-driven fixtures.
func MustIdentity(seq ...rune) Identity {
	id, err := NewIdentity(seq)
	if err != nil {
		panic(err)
	}
	return id
}

// Runes returns the codepoint sequence.
func (id Identity) Runes() []rune {
	return []rune(id.raw())
}

// Len returns the number of codepoints in the sequence.
func (id Identity) Len() int {
	return len([]rune(id.raw()))
}

// IsZero reports whether the identity is the zero value.
func (id Identity) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

func (id Identity) raw() string {
	if id.IsZero() {
		return ""
	}
	return id.h.Value()
}

// Key renders the identity as a lowercase hex sequence joined by
// underscores, e.g. "1f469_200d_1f91d_200d_1f469". Keys are the on-disk
// representation: artifact filenames and cache map keys.
func (id Identity) Key() string {
	runes := id.Runes()
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = strconv.FormatInt(int64(r), 16)
	}
	return strings.Join(parts, "_")
}

// String renders the identity in square brackets with uppercase hex
// codepoints joined by dashes, e.g. "[1F3F3-FE0F-200D-1F308]".
func (id Identity) String() string {
	runes := id.Runes()
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = fmt.Sprintf("%X", r)
	}
	return "[" + strings.Join(parts, "-") + "]"
}

// Compare orders identities by their codepoint sequences.
func (id Identity) Compare(other Identity) int {
	return strings.Compare(id.raw(), other.raw())
}

// MarshalText implements encoding.TextMarshaler using the Key form.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the Key form.
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseKey parses the Key form back into an Identity.
func ParseKey(key string) (Identity, error) {
	parts := strings.Split(key, "_")
	seq := make([]rune, 0, len(parts))
	for _, part := range parts {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return Identity{}, zerr.With(zerr.Wrap(err, "invalid identity key"), "key", key)
		}
		seq = append(seq, rune(cp))
	}
	return NewIdentity(seq)
}

// ContainsZWJ reports whether the sequence includes the zero-width joiner.
func (id Identity) ContainsZWJ() bool {
	return strings.ContainsRune(id.raw(), ZWJ)
}

// ContainsKeycap reports whether the sequence includes the keycap combiner.
func (id Identity) ContainsKeycap() bool {
	return strings.ContainsRune(id.raw(), CombiningKeycap)
}

// ContainsModifier reports whether the sequence includes a skin-tone
// modifier codepoint.
func (id Identity) ContainsModifier() bool {
	for _, r := range id.raw() {
		if r >= ModifierMin && r <= ModifierMax {
			return true
		}
	}
	return false
}

// StripPresentation returns the identity with all U+FE0F variation selectors
// removed and reports whether anything was removed. Source images are often
// named without the selector while the data tables carry it.
func (id Identity) StripPresentation() (Identity, bool) {
	raw := id.raw()
	if !strings.ContainsRune(raw, VS16) {
		return id, false
	}
	stripped := strings.Map(func(r rune) rune {
		if r == VS16 {
			return -1
		}
		return r
	}, raw)
	if stripped == "" {
		return id, false
	}
	return Identity{h: unique.Make(stripped)}, true
}

// GuessKind classifies the identity by structure alone, without table
// information. Used for diagnostics when an asset file names a sequence no
// table declares.
func (id Identity) GuessKind() Kind {
	switch {
	case id.IsCountryFlag():
		return KindFlag
	case id.IsSubdivisionFlag():
		return KindRegion
	case id.ContainsZWJ():
		return KindZWJ
	case id.ContainsKeycap():
		return KindKeycap
	case id.Len() > 1 && id.ContainsModifier():
		return KindModifier
	default:
		return KindSingle
	}
}
