package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// currencyReading maps a currency symbol or word to its canonical spoken
// currency word (spec §4.7: "the verbalizer canonicalises to
// <amount><currency>").
func currencyReading() *fst.Fst {
	return fst.StringMap(loadMap("zh/money/currency.tsv"))
}

// decimalDigits reads a money amount's fractional digits one at a time
// (cents are not grouped/place-valued the way the integer part is).
func decimalDigits() *fst.Fst {
	return fst.Closure(fst.StringMap(singleDigitMap()), 1, -1)
}

// fracField renders the optional ".F" suffix, baking the "点" connector
// into the field value itself (empty when no decimal part) so the
// verbalizer can concatenate fields without conditional literals.
func fracField() *fst.Fst {
	withFrac := fst.Concat(fst.Delete("."), fst.Insert("点"), decimalDigits())
	return fst.Union(fst.Accept(""), withFrac)
}

func moneySign() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Cross("-", "负"))
}

// centsSuffix passes a trailing "分" counter-word through unchanged when
// present (spec §4.7, "optionally consumed and re-emitted").
func centsSuffix() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Accept("分"))
}

// MoneyTagger builds the zh money class tagger (spec §4.7). Currency and
// numeric halves may appear in either surface order; a leading currency
// is carried past the amount, so both orders tag into the same
// `money { sign whole frac currency cents }` field set.
func MoneyTagger() (*fst.Fst, error) {
	reading, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	amount := fst.Concat(
		fst.Insert(`money { sign: "`), moneySign(), fst.Insert(`" whole: "`),
		reading, fst.Insert(`" frac: "`), fracField(), fst.Insert(`" currency: "`),
	)
	currencyLast := fst.Concat(amount, currencyReading(), fst.Insert(`" cents: "`), centsSuffix(), fst.Insert(`" }`))
	var leadingBranches []*fst.Fst
	for _, p := range loadMap("zh/money/currency.tsv") {
		leadingBranches = append(leadingBranches, fst.Concat(
			fst.Insert(`money { sign: "`), moneySign(), fst.Delete(p[0]),
			fst.Insert(`" whole: "`), reading, fst.Insert(`" frac: "`), fracField(),
			fst.Insert(`" currency: "`+p[1]+`" cents: "`), centsSuffix(), fst.Insert(`" }`),
		))
	}
	leading := fst.Union(leadingBranches...)

	return fst.Union(currencyLast, leading), nil
}

// signedlessCardinal reads the unsigned integer part of a money amount
// (comma-grouped, no leading sign — the sign is a separate money field).
func signedlessCardinal() (*fst.Fst, error) {
	return fst.Compose(stripCommas(), digitReadingFst())
}

// MoneyVerbalizer renders `money { sign whole frac currency cents }` as
// <sign><whole><frac><currency><cents>, each field already in final
// spoken form at tag time. It also accepts a shape with a currency_prefix
// field, rendered before whole; MoneyTagger does not emit that field.
func MoneyVerbalizer() *fst.Fst {
	trailing := tnorm.BuildConcatVerbalizer(tnorm.ClassMoney, []string{"sign", "whole", "frac", "currency", "cents"})
	leading := tnorm.BuildConcatVerbalizer(tnorm.ClassMoney, []string{"sign", "currency_prefix", "whole", "frac", "currency", "cents"})
	return fst.Union(trailing, leading)
}
