package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

// ratioBound is the largest value a minute position in a "A:B" surface
// string can take; a side above it cannot be time and the fraction
// grammar claims the string as a ratio reading (spec §4.8). The same
// bound applies to the hour (left) side, so a left value of 24..59 with
// a right value of 59 or less is tagged as neither time nor ratio.
const ratioBound = 59

// fractionReorderMaxDigits bounds numerator/denominator length for the
// "N/D" and "A又N/D" shapes (see reorderNumDen for why this needs a
// bound at all). 1-2 digits covers the overwhelming majority of spoken
// fractions; 3+-digit numerator/denominator fall back to a simple-N/D
// morpheme-style match is not offered for them, so such inputs are left
// untagged by this class (word fallback still renders them digit-wise).
const fractionReorderMaxDigits = 2

// reorderNumDen turns raw surface "N/D" into "D|N", still as raw ASCII
// digits (not yet spoken readings). A plain left-to-right letter
// transducer cannot emit D's reading before N's reading directly — N is
// consumed first, and Concat's output order always matches consumption
// order — so the swap has to happen on the bounded, finite-alphabet raw
// digits first, via a state built for every possible N value that
// "replays" N's digits only after D has been fully consumed. This is
// the reason for fractionReorderMaxDigits: the replay-state count is
// O(10^maxDigits).
func reorderNumDen() *fst.Fst {
	f := fst.New()
	for n := 1; n <= 9; n++ {
		buildReorderBranch(f, itoa(n))
	}
	for n := 10; n <= 99; n++ {
		buildReorderBranch(f, itoa(n))
	}
	return f
}

func buildReorderBranch(f *fst.Fst, n string) {
	cur := f.Start
	for _, r := range n {
		next := f.AddState()
		f.AddArc(cur, fst.Arc{In: r, Out: fst.Epsilon, Weight: 0, To: next})
		cur = next
	}
	nEnd := cur
	dStart := f.AddState()
	f.AddArc(nEnd, fst.Arc{In: '/', Out: fst.Epsilon, Weight: 0, To: dStart})

	after := dStart
	for length := 1; length <= fractionReorderMaxDigits; length++ {
		next := f.AddState()
		for d := '0'; d <= '9'; d++ {
			f.AddArc(after, fst.Arc{In: d, Out: d, Weight: 0, To: next})
		}
		replayEnd := replayChain(f, next, n)
		f.SetFinal(replayEnd, 0)
		after = next
	}
}

// replayChain appends a "|" separator followed by a chain of epsilon-input
// arcs that emit s one rune at a time, returning the chain's final state.
func replayChain(f *fst.Fst, from int, s string) int {
	sep := f.AddState()
	f.AddArc(from, fst.Arc{In: fst.Epsilon, Out: '|', Weight: 0, To: sep})
	cur := sep
	for _, r := range s {
		next := f.AddState()
		f.AddArc(cur, fst.Arc{In: fst.Epsilon, Out: r, Weight: 0, To: next})
		cur = next
	}
	return cur
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// aboveRatioBoundShape accepts (as an identity mapping) exactly the digit
// strings whose numeric value exceeds ratioBound: two digits with a tens
// digit of 6-9 (60-99), or three-or-more digits (always >= 100). A plain
// length/leading-digit check like this covers "exceeds 59" completely,
// since the smallest 3-digit number already clears the bound — no need to
// enumerate the 0..59 in-bound set and subtract it from the unbounded
// cardinal language via fst.Difference, which only works against a finite
// literal subtrahend (see DESIGN.md).
func aboveRatioBoundShape() *fst.Fst {
	f := fst.New()

	// minTwoDigitTens is the smallest tens digit that already puts a
	// two-digit number above ratioBound (e.g. ratioBound=59 -> 60 -> tens
	// digit 6); holds as long as ratioBound+1 is a clean multiple of 10.
	minTwoDigitTens := '0' + rune((ratioBound+1)/10)

	twoDigitEnd := f.AddState()
	for d := minTwoDigitTens; d <= '9'; d++ {
		mid := f.AddState()
		f.AddArc(f.Start, fst.Arc{In: d, Out: d, Weight: 0, To: mid})
		for d2 := '0'; d2 <= '9'; d2++ {
			f.AddArc(mid, fst.Arc{In: d2, Out: d2, Weight: 0, To: twoDigitEnd})
		}
	}
	f.SetFinal(twoDigitEnd, 0)

	longStart := f.AddState()
	for d := '0'; d <= '9'; d++ {
		f.AddArc(f.Start, fst.Arc{In: d, Out: d, Weight: 0, To: longStart})
	}
	longMid := f.AddState()
	for d := '0'; d <= '9'; d++ {
		f.AddArc(longStart, fst.Arc{In: d, Out: d, Weight: 0, To: longMid})
	}
	cur := longMid
	for l := 3; l <= maxCardinalDigits; l++ {
		next := f.AddState()
		for d := '0'; d <= '9'; d++ {
			f.AddArc(cur, fst.Arc{In: d, Out: d, Weight: 0, To: next})
		}
		f.SetFinal(next, 0)
		cur = next
	}

	return f
}

// aboveRatioBound reads an unsigned integer whose value exceeds
// ratioBound and emits its full cardinal reading.
func aboveRatioBound() (*fst.Fst, error) {
	reading, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	return fst.Compose(aboveRatioBoundShape(), reading)
}

// denThenNumReading reads raw "N/D" and produces <cardinal(D)>分之<cardinal(N)>,
// composing the reorder transducer with a straightforward D-then-N
// cardinal conversion (now safe since reordering already put D first).
func denThenNumReading() (*fst.Fst, error) {
	den, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	num, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	convert := fst.Concat(den, fst.Delete("|"), fst.Insert("分之"), num)
	return fst.Compose(reorderNumDen(), convert)
}

// wholePart renders the optional "A又" mixed-number prefix, baking the
// "又" connector into the field value itself (empty when there is no
// whole part) so the verbalizer can concatenate fields unconditionally.
func wholePart() *fst.Fst {
	withWhole, err := signedlessCardinal()
	if err != nil {
		return fst.Accept("")
	}
	return fst.Union(fst.Accept(""), fst.Concat(withWhole, fst.Delete("又")))
}

// FractionTagger builds the zh fraction class tagger (spec §4.8): `N/D`
// -> <cardinal(D)>分之<cardinal(N)>; mixed `A又N/D`; morpheme `D分之N`
// passes through unchanged (already in denominator-first spoken order,
// so it needs no reordering); `A:B` ratio only when either side exceeds
// ratioBound.
func FractionTagger() (*fst.Fst, error) {
	reading, err := denThenNumReading()
	if err != nil {
		return nil, err
	}
	simple := fst.Concat(
		fst.Insert(`fraction { whole: "" reading: "`), reading, fst.Insert(`" }`),
	)

	mixedReading, err := denThenNumReading()
	if err != nil {
		return nil, err
	}
	mixed := fst.Concat(
		fst.Insert(`fraction { whole: "`), wholePart(), fst.Insert(`" reading: "`),
		mixedReading, fst.Insert(`" }`),
	)

	den2, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	num2, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	morpheme := fst.Concat(
		fst.Insert(`fraction { whole: "" reading: "`), den2, fst.Accept("分之"),
		num2, fst.Insert(`" }`),
	)

	leftBig, err := aboveRatioBound()
	if err != nil {
		return nil, err
	}
	rightAny, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	rightBig, err := aboveRatioBound()
	if err != nil {
		return nil, err
	}
	leftAny, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	ratioLeft := fst.Concat(
		fst.Insert(`fraction { ratio_left: "`), leftBig, fst.Delete(":"),
		fst.Insert(`" ratio_right: "`), rightAny, fst.Insert(`" }`),
	)
	ratioRight := fst.Concat(
		fst.Insert(`fraction { ratio_left: "`), leftAny, fst.Delete(":"),
		fst.Insert(`" ratio_right: "`), rightBig, fst.Insert(`" }`),
	)

	return fst.Union(simple, mixed, morpheme, ratioLeft, ratioRight), nil
}

// FractionVerbalizer renders the non-ratio shapes as
// [<whole>又]<reading> (reading already spoken in denominator-first
// order at tag time), and the ratio shapes as <left>比<right>.
func FractionVerbalizer() *fst.Fst {
	nonRatio := fst.Concat(
		fst.Delete(`fraction { whole: "`), copyThroughZh(),
		fst.Delete(` reading: "`), copyThroughZh(), fst.Delete(` }`),
	)
	ratio := fst.Concat(
		fst.Delete(`fraction { ratio_left: "`), copyThroughZh(), fst.Insert("比"),
		fst.Delete(` ratio_right: "`), copyThroughZh(), fst.Delete(` }`),
	)
	return fst.Union(nonRatio, ratio)
}
