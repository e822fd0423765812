package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
	"github.com/cjktextnorm/textnorm/internal/tnorm/data"
)

func phoneDigitMap() [][2]string { return loadMap("zh/telephone/phone_digit.tsv") }

// digitsN reads exactly n digits in the phone-digit vocabulary (1 -> 幺,
// to avoid aural collision with 七 — spec §4.6).
func digitsN(n int) *fst.Fst {
	return fst.Closure(fst.StringMap(phoneDigitMap()), n, n)
}

// optHyphen consumes a literal "-" if present, without affecting output;
// the grouping separator "、" is always inserted independently of
// whether the surface text used a hyphen.
func optHyphen() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Delete("-"))
}

func grouped(groupSizes ...int) *fst.Fst {
	parts := make([]*fst.Fst, 0, len(groupSizes)*2)
	for i, n := range groupSizes {
		if i > 0 {
			parts = append(parts, optHyphen(), fst.Insert("、"))
		}
		parts = append(parts, digitsN(n))
	}
	return fst.Concat(parts...)
}

func promptKeywords(tag string) []string {
	var out []string
	for _, p := range data.MustLoadTagged("zh/telephone/telephone_prompt.tsv") {
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

// tollfreePrefix matches only the literal 400/800 toll-free prefixes (spec
// §4.6's table), each read digit-by-digit like every other group.
func tollfreePrefix() *fst.Fst {
	return fst.Union(fst.Cross("400", "四零零"), fst.Cross("800", "八零零"))
}

// TelephoneTagger builds the zh telephone class tagger (spec §4.6).
// Mobile, landline and toll-free numbers are taggable unconditionally
// (their length/shape has no realistic competing class); the short
// emergency/service numbers require a keyword window. The keyword itself
// travels inside the tagged token as a prefix/suffix field so the
// verbalizer can reproduce it without a second, non-conformant token shape.
func TelephoneTagger() (*fst.Fst, error) {
	mobile := grouped(3, 4, 4)
	landline3 := grouped(3, 8)
	landline4 := grouped(4, 8)
	tollfree := fst.Concat(tollfreePrefix(), optHyphen(), fst.Insert("、"), digitsN(3), optHyphen(), fst.Insert("、"), digitsN(4))
	international := fst.Concat(
		fst.Delete("+"), digitsN(2), fst.Insert("加"), optHyphen(), fst.Insert("、"),
		fst.Closure(fst.StringMap(phoneDigitMap()), 1, -1),
	)

	unconditional := fst.Union(mobile, landline3, landline4, tollfree, international)
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

// TelephoneVerbalizer concatenates prefix, the spoken number reading and
// suffix — each already in its final spoken/literal form at tag time, so
// verbalizing is a straight field-by-field copy-through (spec §4.2).
func TelephoneVerbalizer() *fst.Fst {
	return tnorm.BuildConcatVerbalizer(tnorm.ClassTelephone, []string{"prefix", "number_part", "suffix"})
}
