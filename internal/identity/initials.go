// Package identity summarizes a contact into placeholder-avatar
// material: up to two initials derived from the display name or email,
// and a stable background color picked from a fixed palette. Every
// function is a pure function of its inputs and safe for concurrent
// use.
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FallbackGlyph is rendered when neither name nor email yields a
// usable initial.
const FallbackGlyph = "#"

// IsValidInitialsCharacter reports whether s is a single letter
// renderable as an initial. The input is NFC-composed first, so a
// decomposed base+diacritic pair is judged exactly like its precomposed
// form. Anything that is not one rune of the western Latin repertoire
// after composition (emoji, CJK, Hangul, Hebrew, Arabic, macron
// letters, stray combining marks, empty input) is invalid.
func IsValidInitialsCharacter(s string) bool {
	runes := []rune(norm.NFC.String(s))
	return len(runes) == 1 && unicode.Is(westernLatin, runes[0])
}

// Initials returns up to two uppercased initials for a contact, or ""
// when nothing usable exists. The name wins when it yields anything:
// the first word containing a renderable letter provides the first
// initial, and only the word immediately after it may provide the
// second. A name that yields nothing at all falls back to a single
// initial from the email local part; email never contributes a second
// initial.
func Initials(name, email string) string {
	if s := nameInitials(name); s != "" {
		return s
	}
	return emailInitial(email)
}

// InitialsWithFallback is Initials with FallbackGlyph substituted when
// no identity information is usable.
func InitialsWithFallback(name, email string) string {
	if s := Initials(name, email); s != "" {
		return s
	}
	return FallbackGlyph
}

// ColorIdentity returns the string whose scan produced the initials,
// so badge text and badge color derive from the same field: the name
// when it yielded anything, otherwise the email when present,
// otherwise the name. Feed the result to ColorIndex.
func ColorIdentity(name, email string) string {
	if nameInitials(name) != "" {
		return name
	}
	if email != "" {
		return email
	}
	return name
}

func nameInitials(name string) string {
	words := splitWords(name)
	for i, word := range words {
		first, ok := firstValidRune(word)
		if !ok {
			continue
		}
		initials := []rune{unicode.ToUpper(first)}
		if i+1 < len(words) {
			if second, ok := firstValidRune(words[i+1]); ok {
				initials = append(initials, unicode.ToUpper(second))
			}
		}
		// A wordless or unusable follow-up word still yields a single
		// initial; there is no skip-and-retry for the second slot.
		return string(initials)
	}
	return ""
}

func emailInitial(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	if r, ok := firstValidRune(local); ok {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// splitWords drops zero-width and other format characters anywhere in
// the string, and control characters including literal tab and newline,
// then splits on runs of ordinary whitespace. Removing a zero-width
// space joins its neighbors, so a name with one embedded between two
// halves is a single word.
func splitWords(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.Cf, unicode.Cc) {
			return -1
		}
		return r
	}, s)
	return strings.FieldsFunc(cleaned, unicode.IsSpace)
}

// firstValidRune scans a word for its first renderable letter. The word
// is NFC-composed before scanning. A letter trailed by an uncomposed
// combining mark forms a grapheme outside the repertoire; the whole
// cluster is skipped and scanning continues.
func firstValidRune(word string) (rune, bool) {
	runes := []rune(norm.NFC.String(word))
	for i, r := range runes {
		if !unicode.Is(westernLatin, r) {
			continue
		}
		if i+1 < len(runes) && unicode.In(runes[i+1], unicode.Mn, unicode.Mc, unicode.Me) {
			continue
		}
		return r, true
	}
	return 0, false
}
