package ja

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// zeroFreeIdentity restricts a segment reading's input language without
// touching its output, so the "digit-by-digit only when the segment
// contains a 0, otherwise kanji style" rule (spec §4.9) is enforced
// structurally instead of left to weight tie-breaking.
func zeroFreeIdentity() *fst.Fst {
	fsts := make([]*fst.Fst, 9)
	for d := 1; d <= 9; d++ {
		fsts[d-1] = fst.Cross(string(rune('0'+d)), string(rune('0'+d)))
	}
	return fst.Closure(fst.Union(fsts...), 1, -1)
}

// maxAddressSegmentDigits bounds how many digits a single hyphen-separated
// address segment can have; real addresses never need more than this, and
// containsZeroIdentity needs a concrete bound since it is built as an
// explicit per-length automaton rather than via fst.Difference against an
// unbounded (cyclic) identity language, which fst.EnumeratePaths can never
// finish walking.
const maxAddressSegmentDigits = 6

// containsZeroIdentity accepts digit strings of length 1..maxAddressSegmentDigits
// containing at least one '0' but not starting with '0', as an identity mapping. Two states per
// length track whether a 0 has been seen yet; this sidesteps fst.Difference
// entirely; see DESIGN.md.
func containsZeroIdentity() *fst.Fst {
	f := fst.New()
	noZero := f.Start
	sawZero := f.AddState()
	for l := 1; l <= maxAddressSegmentDigits; l++ {
		nextNoZero := f.AddState()
		nextSawZero := f.AddState()
		if l > 1 {
			f.AddArc(noZero, fst.Arc{In: '0', Out: '0', Weight: 0, To: nextSawZero})
		}
		for d := '1'; d <= '9'; d++ {
			f.AddArc(noZero, fst.Arc{In: d, Out: d, Weight: 0, To: nextNoZero})
		}
		for d := '0'; d <= '9'; d++ {
			f.AddArc(sawZero, fst.Arc{In: d, Out: d, Weight: 0, To: nextSawZero})
		}
		f.SetFinal(nextSawZero, 0)
		noZero, sawZero = nextNoZero, nextSawZero
	}
	return f
}

// kanjiOnlyZeroFree restricts KanjiStyle to inputs with no internal 0.
func kanjiOnlyZeroFree() (*fst.Fst, error) {
	kanji, err := KanjiStyle()
	if err != nil {
		return nil, err
	}
	return fst.Compose(zeroFreeIdentity(), kanji)
}

// digitByDigitOnlyWithZero restricts the マル digit-by-digit reading to
// inputs that contain at least one 0.
func digitByDigitOnlyWithZero() (*fst.Fst, error) {
	return fst.Compose(containsZeroIdentity(), digitByDigitWithMaru())
}

// digitByDigitWithMaru reads a segment digit-by-digit, 0 as マル
// (address_number's own convention, distinct from the postal-code-wide
// ゼロ in postalDigitPairs).
func digitByDigitWithMaru() *fst.Fst {
	pairs := make([][2]string, 0, 10)
	for d := 0; d <= 9; d++ {
		w := phoneDigitWords[d]
		if d == 0 {
			w = "マル"
		}
		pairs = append(pairs, [2]string{string(rune('0' + d)), w})
	}
	return fst.Closure(fst.StringMap(pairs), 1, -1)
}

func postalDigitPairs() [][2]string {
	pairs := make([][2]string, 0, 10)
	for d := 0; d <= 9; d++ {
		w := phoneDigitWords[d]
		if d == 0 {
			w = "ゼロ"
		}
		pairs = append(pairs, [2]string{string(rune('0' + d)), w})
	}
	return pairs
}

// AddressNumberTagger builds the ja address_number class tagger (spec
// §4.9): postal codes (〒NNN-NNNN, all digits read with 0 as ゼロ) and
// segmented strings like 1-2-21 or 1-2-809 (non-final segments kanji
// style, final segment digit-by-digit with マル for 0 only when it
// contains a 0). No segment may start with 0 (avoids telephone
// collision): kanjiOnlyZeroFree accepts no 0 at all, and
// containsZeroIdentity rejects a leading 0 in the final segment's
// digit-by-digit reading.
func AddressNumberTagger() (*fst.Fst, error) {
	postal := fst.Concat(
		fst.Delete("〒"), fst.Insert(`address_number { postal: "郵便番号`),
		fst.Closure(fst.StringMap(postalDigitPairs()), 3, 3),
		fst.Delete("-"), fst.Insert("の"),
		fst.Closure(fst.StringMap(postalDigitPairs()), 4, 4),
		fst.Insert(`" }`),
	)

	nonFinal, err := kanjiOnlyZeroFree()
	if err != nil {
		return nil, err
	}
	finalKanji, err := kanjiOnlyZeroFree()
	if err != nil {
		return nil, err
	}
	finalDigits, err := digitByDigitOnlyWithZero()
	if err != nil {
		return nil, err
	}
	final := fst.Union(finalKanji, finalDigits)

	twoSeg := fst.Concat(
		fst.Insert(`address_number { segments: "`),
		nonFinal, fst.Delete("-"), fst.Insert("の"), final,
		fst.Insert(`" }`),
	)

	nonFinal2, err := kanjiOnlyZeroFree()
	if err != nil {
		return nil, err
	}
	nonFinal3, err := kanjiOnlyZeroFree()
	if err != nil {
		return nil, err
	}
	finalKanji2, err := kanjiOnlyZeroFree()
	if err != nil {
		return nil, err
	}
	finalDigits2, err := digitByDigitOnlyWithZero()
	if err != nil {
		return nil, err
	}
	threeSeg := fst.Concat(
		fst.Insert(`address_number { segments: "`),
		nonFinal2, fst.Delete("-"), fst.Insert("の"),
		nonFinal3, fst.Delete("-"), fst.Insert("の"), fst.Union(finalKanji2, finalDigits2),
		fst.Insert(`" }`),
	)

	return fst.Union(postal, twoSeg, threeSeg), nil
}

// AddressNumberVerbalizer renders either tagged shape as its already
// spoken content.
func AddressNumberVerbalizer() *fst.Fst {
	postal := tnorm.BuildVerbalizer(tnorm.ClassAddressNumber, "postal", []string{"postal"})
	segments := tnorm.BuildVerbalizer(tnorm.ClassAddressNumber, "segments", []string{"segments"})
	return fst.Union(postal, segments)
}
