package listening

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
)

// Ensure Formatter implements the interface.
var _ driven.TextFormatter = (*Formatter)(nil)

// Name is the registry name of this formatter.
const Name = "listening"

// Pre-compiled regular expressions.
var (
	editorMarkup = regexp.MustCompile(`<br>|</?div>|&nbsp;`)
	soundTag     = regexp.MustCompile(`\[sound:[^\]]+\]`)
	ellipsis     = regexp.MustCompile(`\.\.\.`)
	exclaimAsk   = regexp.MustCompile(`!\?`)

	// Matches the whitespace set used by spacing and trimming.
	whitespaceRun = regexp.MustCompile(`[\s\v\x1c-\x1f\x{85}\p{Z}]{2,}`)
)

// protection pairs a pattern with the prefix of its placeholder tokens.
type protection struct {
	pattern *regexp.Regexp
	prefix  string
}

// protections are applied in order; earlier classes shield their matches
// from later ones.
var protections = []protection{
	{pattern: soundTag, prefix: "__SOUND_TAG_"},
	{pattern: ellipsis, prefix: "__ELLIPSIS_TAG_"},
	{pattern: exclaimAsk, prefix: "__EXCLAMATION_TAG_"},
}

// placeholder maps a token to the text it stands in for.
type placeholder struct {
	token    string
	original string
}

// Formatter formats listening card text.
type Formatter struct{}

// New creates a new listening formatter.
func New() *Formatter {
	return &Formatter{}
}

// Name returns the formatter name.
func (f *Formatter) Name() string {
	return Name
}

// Format returns s with editor markup removed and sentence spacing
// normalised. It accepts any input.
func (f *Formatter) Format(s string) string {
	s = editorMarkup.ReplaceAllString(s, "")

	s, saved := protect(s)
	s = spaceAfterPunctuation(s)
	s = restore(s, saved)

	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimFunc(s, isSpace)
}

// protect swaps each protected substring for a placeholder token.
// Matching for a class runs on the string as left by the previous class.
func protect(s string) (string, []placeholder) {
	var saved []placeholder
	for _, p := range protections {
		for i, match := range p.pattern.FindAllString(s, -1) {
			token := p.prefix + strconv.Itoa(i) + "__"
			s = strings.ReplaceAll(s, match, token)
			saved = append(saved, placeholder{token: token, original: match})
		}
	}
	return s, saved
}

// restore puts the protected substrings back in recording order.
func restore(s string, saved []placeholder) string {
	for _, p := range saved {
		s = strings.ReplaceAll(s, p.token, p.original)
	}
	return s
}

// spaceAfterPunctuation inserts a space after every '.', '!' or '?' that is
// not followed by whitespace, including one at the end of the string.
func spaceAfterPunctuation(s string) string {
	if !strings.ContainsAny(s, ".!?") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		b.WriteByte(c)
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if next, _ := utf8.DecodeRuneInString(s[i+1:]); i+1 < len(s) && isSpace(next) {
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// isSpace reports whether r is whitespace. The set matches whitespaceRun.
func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r)
}
