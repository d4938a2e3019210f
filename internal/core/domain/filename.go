package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// EncodeFileStem renders an identity as an image file stem: lowercase hex
// codepoints joined by sep. The codec round-trips:
// ParseFileStem(EncodeFileStem(id, sep)) == id for every identity and any
// accepted separator.
func EncodeFileStem(id Identity, sep string) string {
	runes := id.Runes()
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = strconv.FormatInt(int64(r), 16)
	}
	return strings.Join(parts, sep)
}

// ParseFileStem decodes an image file stem into an identity. Tokens are
// separated by dash, underscore, dot or space; within each token the longest
// trailing hexadecimal run of at most eight digits counts, so prefixed
// stems like "emoji_u1f973" decode the same as "1f973". Tokens without a
// hex tail (such as the "emoji" prefix itself) and zero codepoints are
// skipped, matching the permissive filename handling of common emoji sets.
func ParseFileStem(stem string) (Identity, error) {
	tokens := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})

	seq := make([]rune, 0, len(tokens))
	for _, token := range tokens {
		run := trailingHex(token)
		if run == "" || len(run) > 8 {
			continue
		}
		// A hex tail inside a longer token only counts behind a "u"
		// prefix, so words that merely end in hex letters are ignored.
		if len(run) < len(token) && token[len(token)-len(run)-1] != 'u' && token[len(token)-len(run)-1] != 'U' {
			continue
		}
		cp, err := strconv.ParseUint(run, 16, 32)
		if err != nil || cp == 0 || cp > 0x10FFFF {
			continue
		}
		seq = append(seq, rune(cp))
	}
	if len(seq) == 0 {
		return Identity{}, zerr.With(ErrEmptySequence, "stem", stem)
	}
	return NewIdentity(seq)
}

func trailingHex(s string) string {
	end := len(s)
	start := end
	for start > 0 && isHexDigit(s[start-1]) {
		start--
	}
	return s[start:end]
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
