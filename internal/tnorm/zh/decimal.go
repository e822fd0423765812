package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
)

// DecimalTagger builds the zh decimal class tagger (spec §4.8): `I.F` ->
// <cardinal(I)>点<digit-by-digit(F)>; `N%` -> 百分之N.
func DecimalTagger() (*fst.Fst, error) {
	whole, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	frac := fst.Closure(fst.StringMap(singleDigitMap()), 1, -1)
	sign := moneySign()

	plain := fst.Concat(
		fst.Insert(`decimal { sign: "`), sign, fst.Insert(`" integer: "`),
		whole, fst.Delete("."), fst.Insert(`" fractional: "`), frac,
		fst.Insert(`" }`),
	)

	percentValue, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	percent := fst.Concat(
		fst.Insert(`decimal { sign: "`), sign, fst.Insert(`" percent: "`),
		percentValue, fst.Delete("%"), fst.Insert(`" }`),
	)

	return fst.Union(plain, percent), nil
}

// DecimalVerbalizer renders `decimal { sign integer fractional }` as
// <sign><integer>点<fractional>, and `decimal { sign percent }` as
// <sign>百分之<percent>.
func DecimalVerbalizer() *fst.Fst {
	plain := fst.Concat(
		fst.Delete(`decimal { sign: "`), copyThroughZh(),
		fst.Delete(` integer: "`), copyThroughZh(), fst.Insert("点"),
		fst.Delete(` fractional: "`), copyThroughZh(), fst.Delete(` }`),
	)
	percent := fst.Concat(
		fst.Delete(`decimal { sign: "`), copyThroughZh(), fst.Insert("百分之"),
		fst.Delete(` percent: "`), copyThroughZh(), fst.Delete(` }`),
	)
	return fst.Union(plain, percent)
}
