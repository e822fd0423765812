// Package zh implements the Chinese class grammars: each exposes a
// Grammar (Tagger + Verbalizer FST pair) built from the embedded TSV
// tables in internal/tnorm/data and the internal/fst kernel.
package zh

import "github.com/cjktextnorm/textnorm/internal/tnorm/data"

// digitWords holds the zh spoken-form word for digits 0-9, loaded from
// the embedded zero/digit TSV tables rather than hardcoded literals.
var digitWords = loadDigitWords()

func loadDigitWords() [10]string {
	var words [10]string
	for _, p := range data.MustLoad("zh/numbers/zero.tsv") {
		words[0] = p.Out
	}
	for _, p := range data.MustLoad("zh/numbers/digit.tsv") {
		d := int(p.In[0] - '0')
		words[d] = p.Out
	}
	return words
}
