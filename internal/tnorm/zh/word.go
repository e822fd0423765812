package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/mozillazg/go-unidecode"
)

// WordTagger builds the zh word fallback class tagger: any single rune,
// identity passthrough. Weighted far above every other class (spec
// §4.10, Word: 100) so it only wins shortest-path arbitration when no
// other grammar claims the input at all; consecutive unclaimed runes
// become consecutive word tokens via the outer token closure, not a
// single multi-rune match here.
func WordTagger() (*fst.Fst, error) {
	f := fst.New()
	mid := f.AddState()
	f.AddArc(f.Start, fst.Arc{In: fst.Any, Out: fst.Any, Weight: 0, To: mid})
	f.SetFinal(mid, 0)
	return fst.Concat(fst.Insert(`word { value: "`), f, fst.Insert(`" }`)), nil
}

// WordVerbalizer renders `word { value }` as the value unchanged.
func WordVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`word { value: "`), copyThroughZh(), fst.Delete(` }`),
	)
}

// TransliterateLatin romanizes any run of non-ASCII Latin-adjacent
// characters (accented Latin letters) to plain ASCII using unidecode,
// for Latin-script runs embedded in otherwise-CJK sentences that a
// downstream TTS front end reads poorly mixed with CJK spacing (spec's
// supplement). It is a plain Go function rather than part of the word
// grammar, since FST composition can't invoke arbitrary Go functions
// mid-match — unidecode's table-driven transliteration has no natural FST
// encoding. The Normalizer does not call it; Normalize output is not
// transliterated.
func TransliterateLatin(s string) string {
	return unidecode.Unidecode(s)
}
