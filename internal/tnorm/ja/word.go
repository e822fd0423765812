package ja

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/mozillazg/go-unidecode"
)

// WordTagger builds the ja word fallback class tagger: any single rune,
// identity passthrough, weighted far above every other class (spec
// §4.10, Word: 100) so it only wins when no other grammar claims the
// input at all.
func WordTagger() (*fst.Fst, error) {
	f := fst.New()
	mid := f.AddState()
	f.AddArc(f.Start, fst.Arc{In: fst.Any, Out: fst.Any, Weight: 0, To: mid})
	f.SetFinal(mid, 0)
	return fst.Concat(fst.Insert(`word { value: "`), f, fst.Insert(`" }`)), nil
}

// WordVerbalizer renders `word { value }` unchanged.
func WordVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`word { value: "`), copyThroughJa(), fst.Delete(` }`),
	)
}

// TransliterateLatin romanizes embedded Latin-script runs via unidecode,
// as a plain Go function since FST composition can't invoke arbitrary Go
// functions mid-match (mirrors package zh's TransliterateLatin). The
// Normalizer does not call it; Normalize output is not transliterated.
func TransliterateLatin(s string) string {
	return unidecode.Unidecode(s)
}
