package tnorm

import "github.com/cjktextnorm/textnorm/internal/fst"

// WeightTable holds the per-class, per-language disambiguation weights
// that drive CLASSIFY's shortest-path arbitration (spec §4.10). Weight
// tuning is the disambiguation policy, not a magic-number afterthought,
// so it lives here as first-class config rather than scattered literals.
type WeightTable struct {
	Cardinal          fst.Weight
	Money             fst.Weight
	TelephoneContext  fst.Weight // keyword-triggered (prefix/suffix present)
	TelephoneBare     fst.Weight // standalone, no keyword — heavily penalized
	DateTime          fst.Weight
	Fraction          fst.Weight
	Decimal           fst.Weight
	Ordinal           fst.Weight
	Measure           fst.Weight
	AddressNumber     fst.Weight
	CreditCard        fst.Weight
	SerialNumber      fst.Weight
	Whitelist         fst.Weight
	Punctuation       fst.Weight
	Word              fst.Weight
}

// DefaultZhWeights is the zh weight assignment from spec §4.10.
func DefaultZhWeights() WeightTable {
	return WeightTable{
		Cardinal:         0.9,
		Money:            0.8,
		TelephoneContext: 0.05,
		TelephoneBare:    0.9,
		DateTime:         1.1,
		Fraction:         1.0,
		Decimal:          3.05,
		Ordinal:          1.0,
		Measure:          1.1,
		CreditCard:       0.95,
		SerialNumber:     1.2,
		Whitelist:        1.1,
		Punctuation:      0.1,
		Word:             100,
	}
}

// DefaultJaWeights mirrors the zh policy; spec §8 scenarios 13-17 give
// no reason to diverge from the zh relative ordering, and address_number
// takes the slot zh gives to date/time priority since ja address reading
// is the analogous "structured digits" grammar for ja inputs.
func DefaultJaWeights() WeightTable {
	w := DefaultZhWeights()
	w.AddressNumber = 1.0
	return w
}
