package category

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
)

// Classify derives the canonical grouping key from a free-text category label.
//
// Upstream decorates labels with emoji and ordinal markers ("FAST #1 ⚡",
// "OPTIMAL ALTERNATIVE 🎯"). The key is obtained by stripping trailing
// decoration and ordinals, uppercasing the remainder, and collapsing internal
// whitespace. Classification is open: it never depends on a fixed list of
// known categories, so new upstream names group consistently on their own.
//
// Classify is total. Input that strips down to nothing maps to the OTHER
// sentinel rather than failing, because a presentation filter must never
// crash on a malformed label.
func Classify(label string) journey.CategoryKey {
	fields := strings.Fields(norm.NFKC.String(label))
	for len(fields) > 0 {
		last := fields[len(fields)-1]
		if isOrdinal(last) || isDecoration(last) {
			fields = fields[:len(fields)-1]
			continue
		}
		break
	}
	if len(fields) == 0 {
		return journey.CategoryOther
	}
	return journey.CategoryKey(strings.ToUpper(strings.Join(fields, " ")))
}

// isOrdinal matches "#<digits>" or a bare numeric token.
func isOrdinal(tok string) bool {
	s := strings.TrimPrefix(tok, "#")
	if s == "" {
		return tok == "#"
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isDecoration matches tokens that carry no letters at all: emoji, glyph
// clusters, and combinations like the multimodal suffix.
func isDecoration(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
