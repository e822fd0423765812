package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

const (
	creditCardMinDigits = 13
	creditCardMaxDigits = 19
)

// creditCardGroupSizes splits a digit count into 4-digit groups, the
// final group taking whatever remainder is left (spec's supplement:
// "grouped in 4s... distinguished from telephone by length").
func creditCardGroupSizes(total int) []int {
	var sizes []int
	for total > 4 {
		sizes = append(sizes, 4)
		total -= 4
	}
	return append(sizes, total)
}

// creditCardSep consumes an optional "-" or " " group separator without
// affecting output; the "、" re-inserted in its place stays in the spoken
// output as a short-pause mark (post-processing leaves it as is).
func creditCardSep() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Delete("-"), fst.Delete(" "))
}

// CreditCardTagger builds the zh credit/bank card class tagger: a run of
// 13-19 digits, optionally grouped by "-"/space, read digit-by-digit in
// the phone-digit vocabulary.
func CreditCardTagger() (*fst.Fst, error) {
	lengths := make([]*fst.Fst, 0, creditCardMaxDigits-creditCardMinDigits+1)
	for total := creditCardMinDigits; total <= creditCardMaxDigits; total++ {
		sizes := creditCardGroupSizes(total)
		parts := make([]*fst.Fst, 0, len(sizes)*2)
		for i, n := range sizes {
			if i > 0 {
				parts = append(parts, creditCardSep(), fst.Insert("、"))
			}
			parts = append(parts, digitsN(n))
		}
		lengths = append(lengths, fst.Concat(parts...))
	}
	return fst.Concat(
		fst.Insert(`credit_card { number: "`), fst.Union(lengths...), fst.Insert(`" }`),
	), nil
}

// CreditCardVerbalizer renders `credit_card { number }` as the already
// spoken, grouped digit reading.
func CreditCardVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`credit_card { number: "`), copyThroughZh(), fst.Delete(` }`),
	)
}
