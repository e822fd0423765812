package ja

import "github.com/cjktextnorm/textnorm/internal/fst"

var punctuationRunes = []rune(
	"。、；：？！「」『』（）【】—…・" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
)

func punctuationSet() *fst.Fst {
	fsts := make([]*fst.Fst, len(punctuationRunes))
	for i, r := range punctuationRunes {
		fsts[i] = fst.Accept(string(r))
	}
	return fst.Union(fsts...)
}

// PunctuationTagger builds the ja punctuation class tagger: a single
// punctuation mark, identity passthrough.
func PunctuationTagger() (*fst.Fst, error) {
	return fst.Concat(
		fst.Insert(`punctuation { value: "`), punctuationSet(), fst.Insert(`" }`),
	), nil
}

// PunctuationVerbalizer renders `punctuation { value }` unchanged.
func PunctuationVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`punctuation { value: "`), copyThroughJa(), fst.Delete(` }`),
	)
}
