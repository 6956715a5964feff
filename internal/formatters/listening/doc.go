// Package listening provides the TextFormatter for listening-practice cards.
//
// Card text pasted from the Anki editor carries editor markup and
// inconsistent sentence spacing. The formatter removes <br>, <div>, </div>
// and &nbsp;, makes sure every '.', '!' and '?' is followed by whitespace,
// collapses whitespace runs and trims the result. Sound tags
// ([sound:file.mp3]), ellipses (...) and the "!?" pair are shielded from the
// spacing step with placeholder tokens and restored afterwards.
//
// # Known quirk
//
// Protection replaces every literal occurrence of a matched substring at
// once, not the match position. When two matches of one class are
// identical, all of them end up behind the first placeholder and the later
// placeholders are never used. Input containing the placeholder syntax
// itself (for example "__SOUND_TAG_0__") is restored to the protected text.
// Both behaviours are kept for compatibility with existing cards.
package listening
