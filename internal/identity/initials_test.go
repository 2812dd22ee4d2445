package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialsFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"Satya Nadella", "", "SN"},
		{"Satya Nadella", "satya@microsoft.com", "SN"},
		{"Tom Kazansky", "iceman@miramar.edu", "TK"},
		{"Pete", "", "P"},
		{"pete mitchell", "", "PM"},
		{"Pete Maverick Mitchell", "", "PM"},
		{"  Charlie   Blackwood  ", "", "CB"},
		{"Émile Zola", "", "ÉZ"},
		{"Ærø Østergaard", "", "ÆØ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Initials(tt.name, tt.email))
		})
	}
}

func TestInitialsPartialNameIsFinal(t *testing.T) {
	t.Parallel()

	// A second word with no renderable letter yields a single initial;
	// there is no retry against later words or the email.
	require.Equal(t, "S", Initials("Sean 肖", ""))
	require.Equal(t, "S", Initials("Sean 肖", "sean@contoso.com"))
	// The first renderable letter inside a word wins even when the word
	// starts with an unsupported character.
	require.Equal(t, "M", Initials("Āmily", ""))
}

func TestInitialsFirstWordMaySkip(t *testing.T) {
	t.Parallel()

	// A leading word with nothing renderable does not poison the name:
	// the first word that yields a letter provides the first initial.
	require.Equal(t, "SD", Initials("肖 Sean Doe", ""))
	require.Equal(t, "H", Initials("\U0001f602 Happy", ""))
}

func TestInitialsEmailFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"\U0001f602", "happy@sevendwarves.net", "H"},
		{"", "maverick@miramar.edu", "M"},
		{"肖", "goose@miramar.edu", "G"},
		{"", "no-at-sign", "N"},
		{"", "@nobody", ""},
		{"", "42@counting.org", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.want, Initials(tt.name, tt.email))
		})
	}
}

func TestInitialsNormalization(t *testing.T) {
	t.Parallel()

	// Decomposed E + combining grave composes to È and matches the
	// precomposed form; ł is outside the repertoire but Ç is not.
	decomposed := "Èmïlÿ Çœłb"
	precomposed := "Èmïlÿ Çœłb"
	require.Equal(t, "ÈÇ", Initials(decomposed, ""))
	require.Equal(t, "ÈÇ", Initials(precomposed, ""))
}

func TestInitialsZeroWidthSpace(t *testing.T) {
	t.Parallel()

	// Stripped before word splitting.
	require.Equal(t, "JD", Initials("​Jane​ ​Doe​", ""))
	// Stripping leaves no separator behind: one word, one initial.
	require.Equal(t, "J", Initials("Jane​Doe", ""))
	// Tabs and newlines are controls, not separators.
	require.Equal(t, "J", Initials("Jane\tDoe", ""))
}

func TestInitialsWithFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#", InitialsWithFallback("", ""))
	require.Equal(t, "#", InitialsWithFallback("\U0001f602\U0001f389", "\U0001f389@emoji.party"))
	require.Equal(t, "SN", InitialsWithFallback("Satya Nadella", ""))
}

func TestIsValidInitialsCharacter(t *testing.T) {
	t.Parallel()

	valid := []string{
		"A", "z",
		"É",       // É
		"è",       // è
		"Å",       // Å
		"Ü",       // Ü
		"Æ",       // Æ
		"œ",       // œ
		"Ÿ",       // Ÿ
		"È",      // decomposed È
		"ü",      // decomposed ü
		"Å",      // decomposed Å
		"é",      // decomposed é
	}
	for _, s := range valid {
		require.True(t, IsValidInitialsCharacter(s), "%q should be valid", s)
	}

	invalid := []string{
		"",              // empty
		"\U0001f602",    // emoji
		"肖",        // CJK
		"한",        // Hangul
		"ש",        // Hebrew
		"ع",        // Arabic
		"Ā",        // macron, precomposed
		"Ā",       // macron, decomposed
		"ł",        // stroke
		"̀",        // lone combining mark
		"1",             // digit
		"#",             // symbol
		"AB",            // more than one character
	}
	for _, s := range invalid {
		require.False(t, IsValidInitialsCharacter(s), "%q should be invalid", s)
	}
}
