package ja

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
	"github.com/cjktextnorm/textnorm/internal/tnorm/data"
)

func phoneDigitMap() [][2]string { return loadMap("ja/telephone/phone_digit.tsv") }

func digitsN(n int) *fst.Fst {
	return fst.Closure(fst.StringMap(phoneDigitMap()), n, n)
}

// optHyphen consumes a literal "-" if present; the grouping separator の
// is inserted independently of whether the surface text used a hyphen
// (spec §4.6, "separator - maps to の").
func optHyphen() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Delete("-"))
}

func grouped(groupSizes ...int) *fst.Fst {
	parts := make([]*fst.Fst, 0, len(groupSizes)*2)
	for i, n := range groupSizes {
		if i > 0 {
			parts = append(parts, optHyphen(), fst.Insert("の"))
		}
		parts = append(parts, digitsN(n))
	}
	return fst.Concat(parts...)
}

func promptKeywords(tag string) []string {
	var out []string
	for _, p := range data.MustLoadTagged("ja/telephone/telephone_prompt.tsv") {
		if p.Tag == tag {
			out = append(out, p.In)
		}
	}
	return out
}

func acceptAnyOf(words []string) *fst.Fst {
	if len(words) == 0 {
		return fst.Accept("")
	}
	fsts := make([]*fst.Fst, len(words))
	for i, w := range words {
		fsts[i] = fst.Accept(w)
	}
	return fst.Union(fsts...)
}

// TelephoneTagger builds the ja telephone class tagger (spec §4.6,
// "Japanese telephone is analogous"): mobile/landline shapes are
// unconditional, short numbers require a keyword window, the keyword
// itself riding inside the tagged token as a prefix/suffix field (same
// construction as the zh grammar).
func TelephoneTagger() (*fst.Fst, error) {
	mobile := grouped(3, 4, 4)
	landline3 := grouped(3, 8)
	landline4 := grouped(4, 8)
	unconditional := fst.Union(mobile, landline3, landline4)
	plain := fst.Concat(
		fst.Insert(`telephone { prefix: "" number_part: "`), unconditional, fst.Insert(`" suffix: "" }`),
	)

	prefixKw := promptKeywords("prefix")
	suffixKw := promptKeywords("suffix")
	short := fst.Union(digitsN(3), digitsN(5))
	withPrefix := fst.Concat(
		fst.Insert(`telephone { prefix: "`), acceptAnyOf(prefixKw), fst.Insert(`" number_part: "`),
		short, fst.Insert(`" suffix: "" }`),
	)
	withSuffix := fst.Concat(
		fst.Insert(`telephone { prefix: "" number_part: "`), short, fst.Insert(`" suffix: "`),
		acceptAnyOf(suffixKw), fst.Insert(`" }`),
	)

	return fst.Union(plain, withPrefix, withSuffix), nil
}

// TelephoneVerbalizer concatenates prefix, number reading and suffix.
func TelephoneVerbalizer() *fst.Fst {
	return tnorm.BuildConcatVerbalizer(tnorm.ClassTelephone, []string{"prefix", "number_part", "suffix"})
}
