// Package ja implements the Japanese class grammars, mirroring package
// zh's construction techniques where the underlying reading rules agree
// and diverging where ja's morphology differs (億 instead of 亿, の
// telephone separator, address_number's マル digit-by-digit rule).
package ja

import "github.com/cjktextnorm/textnorm/internal/tnorm/data"

var digitWords = loadDigitWords()

func loadDigitWords() [10]string {
	var words [10]string
	for _, p := range data.MustLoad("ja/numbers/zero.tsv") {
		words[0] = p.Out
	}
	for _, p := range data.MustLoad("ja/numbers/digit.tsv") {
		d := int(p.In[0] - '0')
		words[d] = p.Out
	}
	return words
}

var phoneDigitWords = loadPhoneDigitWords()

func loadPhoneDigitWords() [10]string {
	var words [10]string
	for _, p := range data.MustLoad("ja/telephone/phone_digit.tsv") {
		d := int(p.In[0] - '0')
		words[d] = p.Out
	}
	return words
}
