package listening

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	f := New()
	require.NotNil(t, f)
	assert.IsType(t, &Formatter{}, f)
}

func TestName(t *testing.T) {
	assert.Equal(t, "listening", New().Name())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "nested divs with sound tag",
			input:    "<div><div><div> Hello, World! [sound:hogehoge.wav]</div></div></div>",
			expected: "Hello, World! [sound:hogehoge.wav]",
		},
		{
			name:     "missing spaces after punctuation",
			input:    "A.B!C?D",
			expected: "A. B! C? D",
		},
		{
			name:     "ellipsis kept together",
			input:    "Wait...what?!Really",
			expected: "Wait...what? ! Really",
		},
		{
			name:     "exclamation question pair kept together",
			input:    "Really!?Yes",
			expected: "Really!?Yes",
		},
		{
			name:     "question exclamation question",
			input:    "?!?",
			expected: "? !?",
		},
		{
			name:     "br removed",
			input:    "Hello.<br>World",
			expected: "Hello. World",
		},
		{
			name:     "nbsp removed",
			input:    "a&nbsp;b",
			expected: "ab",
		},
		{
			name:     "self-closing br is not editor markup",
			input:    "a<br/>b",
			expected: "a<br/>b",
		},
		{
			name:     "uppercase div is not editor markup",
			input:    "<DIV>x</DIV>",
			expected: "<DIV>x</DIV>",
		},
		{
			name:     "whitespace run collapsed",
			input:    "Hi.   There",
			expected: "Hi. There",
		},
		{
			name:     "newline run collapsed",
			input:    "Line one.\n\nLine two",
			expected: "Line one. Line two",
		},
		{
			name:     "single newline kept",
			input:    "a\nb",
			expected: "a\nb",
		},
		{
			name:     "trailing punctuation trimmed",
			input:    "End.",
			expected: "End.",
		},
		{
			name:     "four dots",
			input:    "a....b",
			expected: "a.... b",
		},
		{
			name:     "two dots",
			input:    "a..b",
			expected: "a. . b",
		},
		{
			name:     "sound tag with punctuation inside",
			input:    "Listen[sound:what?.mp3]",
			expected: "Listen[sound:what?.mp3]",
		},
		{
			name:     "adjacent distinct sound tags",
			input:    "[sound:a.mp3][sound:b.mp3]",
			expected: "[sound:a.mp3][sound:b.mp3]",
		},
		{
			name:     "duplicate sound tags",
			input:    "[sound:a.mp3] x [sound:a.mp3]",
			expected: "[sound:a.mp3] x [sound:a.mp3]",
		},
		{
			name:     "ideographic space counts as whitespace",
			input:    "Hello.　World",
			expected: "Hello.　World",
		},
		{
			name:     "non-latin text untouched",
			input:    "日本語。テスト",
			expected: "日本語。テスト",
		},
		{
			name:     "invalid utf-8 preserved",
			input:    "a.\xffb",
			expected: "a. \xffb",
		},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.input))
		})
	}
}

// Placeholder tokens in the input are indistinguishable from the ones the
// formatter inserts, so they are restored to the protected text.
func TestFormat_PlaceholderSyntaxInInput(t *testing.T) {
	got := New().Format("__SOUND_TAG_0__ [sound:x.mp3]")
	assert.Equal(t, "[sound:x.mp3] [sound:x.mp3]", got)
}

func TestProtect_DuplicateMatchesShareFirstPlaceholder(t *testing.T) {
	s, saved := protect("a...b...c")

	assert.Equal(t, "a__ELLIPSIS_TAG_0__b__ELLIPSIS_TAG_0__c", s)
	require.Len(t, saved, 2)
	assert.Equal(t, placeholder{token: "__ELLIPSIS_TAG_0__", original: "..."}, saved[0])
	assert.Equal(t, placeholder{token: "__ELLIPSIS_TAG_1__", original: "..."}, saved[1])
}

func TestProtect_ClassOrder(t *testing.T) {
	s, saved := protect("[sound:x...y.mp3] ok... yes!?")

	assert.Equal(t, "__SOUND_TAG_0__ ok__ELLIPSIS_TAG_0__ yes__EXCLAMATION_TAG_0__", s)
	require.Len(t, saved, 3)
	assert.Equal(t, "[sound:x...y.mp3]", saved[0].original)
	assert.Equal(t, "...", saved[1].original)
	assert.Equal(t, "!?", saved[2].original)

	assert.Equal(t, "[sound:x...y.mp3] ok... yes!?", restore(s, saved))
}

func TestSpaceAfterPunctuation(t *testing.T) {
	assert.Equal(t, "", spaceAfterPunctuation(""))
	assert.Equal(t, "no punctuation", spaceAfterPunctuation("no punctuation"))
	assert.Equal(t, "a. b", spaceAfterPunctuation("a. b"))
	assert.Equal(t, "a. ", spaceAfterPunctuation("a."))
	assert.Equal(t, "a.\tb", spaceAfterPunctuation("a.\tb"))
	assert.Equal(t, "? ! ", spaceAfterPunctuation("?!"))
}

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x1c, 0x1f, 0x85, 0xa0, 0x2028, 0x3000} {
		assert.True(t, isSpace(r), "%U should be whitespace", r)
	}
	for _, r := range []rune{'a', '_', '.', 0x200b} {
		assert.False(t, isSpace(r), "%U should not be whitespace", r)
	}
}

// cardText generates card text from fragments that cannot form
// placeholder tokens or editor markup after a removal.
func cardText() *rapid.Generator[string] {
	fragment := rapid.OneOf(
		rapid.StringMatching(`[A-Za-z0-9,']{1,8}`),
		rapid.SampledFrom([]string{
			".", "!", "?", "...", "!?", "?!", " ", "  ", "\n", "\t",
			"<br>", "<div>", "</div>", "&nbsp;",
			"[sound:a.mp3]", "[sound:b c?.wav]", "[sound:x...y!?.ogg]",
		}),
	)
	return rapid.Custom(func(t *rapid.T) string {
		return strings.Join(rapid.SliceOfN(fragment, 0, 30).Draw(t, "fragments"), "")
	})
}

func testFormat_Idempotent(t *rapid.T) {
	f := New()
	input := cardText().Draw(t, "input")

	once := f.Format(input)
	twice := f.Format(once)
	if once != twice {
		t.Fatalf("not idempotent:\ninput: %q\nonce:  %q\ntwice: %q", input, once, twice)
	}
}

func TestFormat_Idempotent_Properties(t *testing.T) {
	rapid.Check(t, testFormat_Idempotent)
}

func FuzzFormat_Idempotent(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testFormat_Idempotent))
}

func testFormat_NormalisedWhitespace(t *rapid.T) {
	input := rapid.String().Draw(t, "input")
	out := New().Format(input)

	if strings.TrimFunc(out, isSpace) != out {
		t.Fatalf("untrimmed output %q", out)
	}
	if whitespaceRun.MatchString(out) {
		t.Fatalf("whitespace run left in %q", out)
	}
}

func TestFormat_NormalisedWhitespace_Properties(t *testing.T) {
	rapid.Check(t, testFormat_NormalisedWhitespace)
}
