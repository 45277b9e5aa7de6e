package unidecode

// currencyTable maps currency symbols to their ISO-ish ASCII
// abbreviation, the same "symbol -> canonical ASCII token" shape the
// teacher's currency.go used for a completely different purpose
// (formatting money amounts for English output).
var currencyTable = map[rune]string{
	'€': "EUR",
	'£': "GBP",
	'¥': "JPY",
	'₹': "INR",
	'₩': "KRW",
	'₽': "RUB",
	'₺': "TRY",
	'₫': "VND",
	'₴': "UAH",
	'¢': "c",
	'₱': "PHP",
}
