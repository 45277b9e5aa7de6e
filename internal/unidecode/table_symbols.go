package unidecode

// symbolTable holds ASCII approximations for punctuation and symbols
// outside the Latin letter blocks: smart quotes, dashes, and spacing
// variants commonly found in community-orthography source text.
var symbolTable = map[rune]string{
	'‘': "'", '’': "'", // single quotes
	'“': `"`, '”': `"`, // double quotes
	'–': "-", '—': "--", // en/em dash
	'…': "...",
	' ': " ", // NBSP
	'·': ".", // middle dot
	'′': "'", // prime
	'″': `"`, // double prime
}
