package textsig

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// Classification thresholds on the normalised character count.
const (
	shortMaxLen    = 20
	sentenceMaxLen = 150
)

// blankLineBreak matches a paragraph break in raw text. Two or more
// breaks classify the text as mixed regardless of length.
var blankLineBreak = regexp.MustCompile(`\n\s*\n`)

// isInvisible reports format and control characters that carry no
// visual content: zero-width spaces and joiners, BOM, soft hyphen,
// word joiner, Mongolian vowel separator, and bidi controls.
func isInvisible(r rune) bool {
	switch {
	case r >= 0x200B && r <= 0x200D:
		return true
	case r == 0xFEFF, r == 0x00AD, r == 0x2060, r == 0x180E:
		return true
	case r >= 0x202A && r <= 0x202E:
		return true
	case r >= 0x2066 && r <= 0x2069:
		return true
	default:
		return false
	}
}

// Normalise canonicalises a raw string for hashing: invisible
// characters are removed, every run of Unicode whitespace collapses to
// a single ASCII space, leading and trailing whitespace is trimmed,
// and the result is lowercased. Normalise is idempotent.
func Normalise(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for _, r := range s {
		if isInvisible(r) {
			continue
		}
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// Classify determines the text kind of a raw string. The mixed check
// runs on the raw text (paragraph breaks are destroyed by
// normalisation); the length thresholds run on the normalised text.
func Classify(raw string) domain.TextKind {
	if len(blankLineBreak.FindAllStringIndex(raw, -1)) >= 2 {
		return domain.TextKindMixed
	}

	normalised := Normalise(raw)
	length := utf8.RuneCountInString(normalised)

	switch {
	case length == 0:
		return domain.TextKindNone
	case length <= shortMaxLen:
		return domain.TextKindShort
	case length <= sentenceMaxLen:
		return domain.TextKindSentence
	default:
		return domain.TextKindParagraph
	}
}

// Signal builds the full text signal for a raw string: kind, length of
// the normalised text, and its short digest. A "none" signal carries
// neither length nor digest.
func Signal(raw string) domain.TextSignal {
	kind := Classify(raw)
	if kind == domain.TextKindNone {
		return domain.TextSignal{Kind: domain.TextKindNone}
	}

	normalised := Normalise(raw)
	length := utf8.RuneCountInString(normalised)

	return domain.TextSignal{
		Kind: kind,
		Len:  &length,
		Hash: HashSync(normalised),
	}
}
