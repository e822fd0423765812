package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

// punctuationRunes lists the CJK and half-width punctuation the
// punctuation class claims identity-passthrough, ahead of the word
// fallback (spec §4.10's class list). "%" is left out so that "N%"
// is claimed by the decimal percent reading rather than by a cheaper
// cardinal-plus-punctuation split; a stray "%" still passes through
// unchanged as a word token.
var punctuationRunes = []rune(
	"。，、；：？！“”‘’（）【】《》——…·" +
		"!\"#$&'()*+,-./:;<=>?@[\\]^_`{|}~",
)

func punctuationSet() *fst.Fst {
	fsts := make([]*fst.Fst, len(punctuationRunes))
	for i, r := range punctuationRunes {
		fsts[i] = fst.Accept(string(r))
	}
	return fst.Union(fsts...)
}

// PunctuationTagger builds the zh punctuation class tagger: a single
// punctuation mark, tagged so CLASSIFY can route it without falling
// through to the word class (spec §4.10).
func PunctuationTagger() (*fst.Fst, error) {
	return fst.Concat(
		fst.Insert(`punctuation { value: "`), punctuationSet(), fst.Insert(`" }`),
	), nil
}

// PunctuationVerbalizer renders `punctuation { value }` as the mark
// itself, unchanged.
func PunctuationVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`punctuation { value: "`), copyThroughZh(), fst.Delete(` }`),
	)
}
