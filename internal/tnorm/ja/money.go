package ja

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

func currencyReading() *fst.Fst {
	return fst.StringMap(loadMap("ja/money/currency.tsv"))
}

func decimalDigits() *fst.Fst {
	return fst.Closure(fst.StringMap(singleDigitMap()), 1, -1)
}

func fracField() *fst.Fst {
	withFrac := fst.Concat(fst.Delete("."), fst.Insert("点"), decimalDigits())
	return fst.Union(fst.Accept(""), withFrac)
}

func moneySign() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Cross("-", "マイナス"))
}

func signedlessCardinal() (*fst.Fst, error) {
	return fst.Compose(stripCommas(), digitReadingFst())
}

// MoneyTagger builds the ja money class tagger (spec §4.7): currency and
// numeric halves may appear in either surface order; a leading currency
// is carried past the amount, so both orders tag (and verbalize) as
// <amount>円/ドル/….
func MoneyTagger() (*fst.Fst, error) {
	reading, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	amount := fst.Concat(
		fst.Insert(`money { sign: "`), moneySign(), fst.Insert(`" whole: "`),
		reading, fst.Insert(`" frac: "`), fracField(), fst.Insert(`" currency: "`),
	)
	currencyLast := fst.Concat(amount, currencyReading(), fst.Insert(`" }`))

	reading2, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	var leadingBranches []*fst.Fst
	for _, p := range loadMap("ja/money/currency.tsv") {
		leadingBranches = append(leadingBranches, fst.Concat(
			fst.Insert(`money { sign: "`), moneySign(), fst.Delete(p[0]),
			fst.Insert(`" whole: "`), reading2, fst.Insert(`" frac: "`), fracField(),
			fst.Insert(`" currency: "`+p[1]+`" }`),
		))
	}
	leading := fst.Union(leadingBranches...)

	return fst.Union(currencyLast, leading), nil
}

// MoneyVerbalizer renders `money { sign whole frac currency }` as
// <sign><whole><frac><currency>. It also accepts a shape with a
// currency_prefix field, rendered before whole; MoneyTagger does not
// emit that field.
func MoneyVerbalizer() *fst.Fst {
	trailing := tnorm.BuildConcatVerbalizer(tnorm.ClassMoney, []string{"sign", "whole", "frac", "currency"})
	leading := tnorm.BuildConcatVerbalizer(tnorm.ClassMoney, []string{"sign", "currency_prefix", "whole", "frac", "currency"})
	return fst.Union(trailing, leading)
}
