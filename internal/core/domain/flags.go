package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Codepoints with structural meaning for emoji sequences.
const (
	// ZWJ is the zero-width joiner that glues ZWJ sequences together.
	ZWJ rune = 0x200D
	// VS16 is the emoji presentation variation selector.
	VS16 rune = 0xFE0F
	// CombiningKeycap terminates keycap sequences.
	CombiningKeycap rune = 0x20E3
	// BlackFlag opens a subdivision flag tag sequence.
	BlackFlag rune = 0x1F3F4
	// CancelTag terminates a subdivision flag tag sequence.
	CancelTag rune = 0xE007F

	// ModifierMin and ModifierMax bound the skin-tone modifier block.
	ModifierMin rune = 0x1F3FB
	ModifierMax rune = 0x1F3FF

	// Regional indicator letters span U+1F1E6 ('a') to U+1F1FF ('z').
	regionalMin rune = 0x1F1E6
	regionalMax rune = 0x1F1FF
	// regionalOffset maps a lowercase ASCII letter onto its regional
	// indicator: 'a' + 0x1F185 = U+1F1E6.
	regionalOffset rune = 0x1F185

	// tagOffset maps ASCII onto the tag-character block used by
	// subdivision flags: 'a' + 0xE0000 = U+E0061.
	tagOffset  rune = 0xE0000
	tagZero    rune = 0xE0030
	tagNine    rune = 0xE0039
	tagLetterA rune = 0xE0061
	tagLetterZ rune = 0xE007A
)

// IdentityFromRegion converts an ISO 3166-1 country code ("DE") or an
// ISO 3166-2 subdivision code ("DE-NW", "AT-5") into the flag identity the
// Unicode tables use for it. Anything after the first dot is ignored, so
// file names with extensions can be passed directly.
func IdentityFromRegion(code string) (Identity, error) {
	code, _, _ = strings.Cut(code, ".")
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Identity{}, ErrInvalidRegion
	}

	country, subdiv, isSubdiv := strings.Cut(code, "-")
	if len(country) != 2 || !isAlpha(country) {
		return Identity{}, zerr.With(ErrInvalidRegion, "code", code)
	}

	if !isSubdiv {
		seq := make([]rune, 0, len(country))
		for _, c := range country {
			seq = append(seq, c+regionalOffset)
		}
		return NewIdentity(seq)
	}

	if !isAlphaNum(subdiv) {
		return Identity{}, zerr.With(ErrInvalidRegion, "code", code)
	}
	seq := make([]rune, 0, len(country)+len(subdiv)+2)
	seq = append(seq, BlackFlag)
	for _, c := range country + subdiv {
		seq = append(seq, c+tagOffset)
	}
	seq = append(seq, CancelTag)
	return NewIdentity(seq)
}

// RegionCode returns the uppercase ISO 3166-1/2 code for a flag identity and
// reports whether the identity is one. The inverse of IdentityFromRegion.
func (id Identity) RegionCode() (string, bool) {
	if id.IsCountryFlag() {
		var b strings.Builder
		for _, r := range id.Runes() {
			b.WriteRune(r - regionalOffset)
		}
		return strings.ToUpper(b.String()), true
	}
	if id.IsSubdivisionFlag() {
		runes := id.Runes()
		var b strings.Builder
		// The first two tag characters are the country part, the rest up
		// to the cancel tag is the subdivision part.
		for i, r := range runes[1 : len(runes)-1] {
			if i == 2 {
				b.WriteRune('-')
			}
			b.WriteRune(r - tagOffset)
		}
		return strings.ToUpper(b.String()), true
	}
	return "", false
}

// IsCountryFlag reports whether every codepoint is a regional indicator.
func (id Identity) IsCountryFlag() bool {
	runes := id.Runes()
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < regionalMin || r > regionalMax {
			return false
		}
	}
	return true
}

// IsSubdivisionFlag reports whether the identity has the
// black-flag + tag-characters + cancel-tag shape of a subdivision flag.
func (id Identity) IsSubdivisionFlag() bool {
	runes := id.Runes()
	if len(runes) < 5 || runes[0] != BlackFlag || runes[len(runes)-1] != CancelTag {
		return false
	}
	for _, r := range runes[1 : len(runes)-1] {
		if (r < tagLetterA || r > tagLetterZ) && (r < tagZero || r > tagNine) {
			return false
		}
	}
	return true
}

// IsFlag reports whether this identity resolves through a region code.
func (id Identity) IsFlag() bool {
	return id.IsCountryFlag() || id.IsSubdivisionFlag()
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isAlphaNum(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
