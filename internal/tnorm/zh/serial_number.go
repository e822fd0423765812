package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

// serialChar reads one alphanumeric character: letters pass through as
// themselves, digits read digit-by-digit in the phone-digit vocabulary
// (spec's supplement, credit_card.py/serial_number.py parity).
func serialChar() *fst.Fst {
	parts := make([]*fst.Fst, 0, 1+26+26)
	parts = append(parts, fst.StringMap(phoneDigitMap()))
	for c := 'A'; c <= 'Z'; c++ {
		parts = append(parts, fst.Cross(string(c), string(c)))
	}
	for c := 'a'; c <= 'z'; c++ {
		parts = append(parts, fst.Cross(string(c), string(c)))
	}
	return fst.Union(parts...)
}

// serialGroup reads a 1-8 character alphanumeric run (spec's supplement,
// "groups of 1-8").
func serialGroup() *fst.Fst {
	return fst.Closure(serialChar(), 1, 8)
}

// serialSep consumes a literal "-" group separator and is silent on
// output; runs without separators are also valid single-group serials.
func serialSep() *fst.Fst {
	return fst.Delete("-")
}

// SerialNumberTagger builds the zh serial-number class tagger: one or
// more 1-8 character alphanumeric groups, optionally "-"-separated
// (order numbers, tracking codes, license plates).
func SerialNumberTagger() (*fst.Fst, error) {
	group := serialGroup()
	moreGroups := fst.Closure(fst.Concat(serialSep(), group), 0, -1)
	chain := fst.Concat(group, moreGroups)
	return fst.Concat(
		fst.Insert(`serial_number { value: "`), chain, fst.Insert(`" }`),
	), nil
}

// SerialNumberVerbalizer renders `serial_number { value }` as the
// already spoken/literal character run.
func SerialNumberVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`serial_number { value: "`), copyThroughZh(), fst.Delete(` }`),
	)
}
