package unidecode

// latinTable holds direct transliterations for Latin-script letters
// with diacritics or ligatures whose ASCII form is not simply "strip
// the combining mark" (a plain stripDiacritics pass would mangle these,
// e.g. turning "ß" into itself rather than "ss"). Extend this table
// rather than special-casing callers when a new demo mapping surfaces a
// missing letter.
var latinTable = map[rune]string{
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ß': "ss",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ħ': "h", 'Ħ': "H",
	'ı': "i", 'İ': "I",
	'ĸ': "k",
	'ŋ': "ng", 'Ŋ': "NG",
	'ŧ': "t", 'Ŧ': "T",
	'ǂ': "|", 'ǃ': "!",
	'ʼ': "'",
}
