package identity

import "unicode"

// westernLatin holds every cased letter rolo will render as an avatar
// initial: ASCII letters plus the accented Latin letters of the legacy
// 8-bit Western repertoire. Classification is an embedded range table
// so it never depends on a platform encoding facility. Letters carrying
// diacritics outside this set (macron, ogonek, stroke) are excluded, as
// are all non-Latin scripts.
var westernLatin = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0041, Hi: 0x005a, Stride: 1}, // A-Z
		{Lo: 0x0061, Hi: 0x007a, Stride: 1}, // a-z
		{Lo: 0x00c0, Hi: 0x00cf, Stride: 1}, // À-Ï
		{Lo: 0x00d1, Hi: 0x00d6, Stride: 1}, // Ñ-Ö
		{Lo: 0x00d8, Hi: 0x00dc, Stride: 1}, // Ø-Ü
		{Lo: 0x00df, Hi: 0x00ef, Stride: 1}, // ß-ï
		{Lo: 0x00f1, Hi: 0x00f6, Stride: 1}, // ñ-ö
		{Lo: 0x00f8, Hi: 0x00fc, Stride: 1}, // ø-ü
		{Lo: 0x00ff, Hi: 0x00ff, Stride: 1}, // ÿ
		{Lo: 0x0152, Hi: 0x0153, Stride: 1}, // Œ œ
		{Lo: 0x0178, Hi: 0x0178, Stride: 1}, // Ÿ
	},
	LatinOffset: 2,
}
